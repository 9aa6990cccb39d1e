package occupancy

import (
	"github.com/travigo/busload/pkg/ctdf"
	"golang.org/x/exp/slices"
)

// PeakHoursCount is how many runs the dashboard surfaces as peak hours.
const PeakHoursCount = 5

// RankPeakHours returns up to n entries ordered by passengers, busiest first.
// Ties keep their input order. The result is a new slice holding the same
// entry pointers; entries itself is left untouched.
func RankPeakHours(entries []*ctdf.ScheduleEntry, n int) []*ctdf.ScheduleEntry {
	if n <= 0 {
		return []*ctdf.ScheduleEntry{}
	}

	ranked := slices.Clone(entries)
	if ranked == nil {
		ranked = []*ctdf.ScheduleEntry{}
	}

	slices.SortStableFunc(ranked, func(a, b *ctdf.ScheduleEntry) int {
		return b.Passengers - a.Passengers
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}

	return ranked
}
