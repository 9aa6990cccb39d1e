package occupancy

import (
	"math"

	"github.com/travigo/busload/pkg/ctdf"
)

// Stats are the aggregates shown in the summary panel. The means are nil when
// there were no entries to average.
type Stats struct {
	Entries           int
	MeanAvgPassengers *int
	CriticalCount     int
	MeanOccupancy     *int
}

func (s Stats) Empty() bool {
	return s.Entries == 0
}

// Summary is Stats plus the time of the busiest run.
type Summary struct {
	Stats

	PeakTime *string
}

func Aggregate(entries []*ctdf.ScheduleEntry) Stats {
	stats := Stats{
		Entries: len(entries),
	}

	if len(entries) == 0 {
		return stats
	}

	avgPassengersTotal := 0
	occupancyTotal := 0

	for _, entry := range entries {
		avgPassengersTotal += entry.AvgPassengers
		occupancyTotal += entry.Occupancy

		if IsCritical(entry.Occupancy) {
			stats.CriticalCount += 1
		}
	}

	meanAvgPassengers := roundedMean(avgPassengersTotal, len(entries))
	meanOccupancy := roundedMean(occupancyTotal, len(entries))

	stats.MeanAvgPassengers = &meanAvgPassengers
	stats.MeanOccupancy = &meanOccupancy

	return stats
}

func Summarize(entries []*ctdf.ScheduleEntry) Summary {
	summary := Summary{
		Stats: Aggregate(entries),
	}

	peakHours := RankPeakHours(entries, PeakHoursCount)
	if len(peakHours) > 0 {
		peakTime := peakHours[0].Time
		summary.PeakTime = &peakTime
	}

	return summary
}

// roundedMean rounds halves up (towards positive infinity).
func roundedMean(total int, count int) int {
	return int(math.Floor(float64(total)/float64(count) + 0.5))
}
