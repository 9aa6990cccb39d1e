package catalog

import (
	"fmt"

	"github.com/gocarina/gocsv"
	"github.com/travigo/busload/pkg/ctdf"
)

type scheduleRow struct {
	Direction     string `csv:"direction"`
	Time          string `csv:"time"`
	Passengers    int    `csv:"passengers"`
	AvgPassengers int    `csv:"avg_passengers"`
	Occupancy     int    `csv:"occupancy"`
	Trend         string `csv:"trend"`
	BusType       string `csv:"bus_type"`
}

// parseSchedulesCSV reads a schedule file. Rows keep their file order within
// each direction.
func parseSchedulesCSV(data []byte) (map[ctdf.Direction][]*ctdf.ScheduleEntry, error) {
	var rows []*scheduleRow
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, err
	}

	schedules := map[ctdf.Direction][]*ctdf.ScheduleEntry{}

	for index, row := range rows {
		direction, err := ctdf.ParseDirection(row.Direction)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w %q", index+1, err, row.Direction)
		}

		schedules[direction] = append(schedules[direction], &ctdf.ScheduleEntry{
			Time:          row.Time,
			Passengers:    row.Passengers,
			AvgPassengers: row.AvgPassengers,
			Occupancy:     row.Occupancy,
			Trend:         ctdf.Trend(row.Trend),
			BusType:       row.BusType,
		})
	}

	return schedules, nil
}
