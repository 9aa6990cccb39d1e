package dashboard

import "github.com/travigo/busload/pkg/ctdf"

func sampleLine() *ctdf.Line {
	return &ctdf.Line{
		Identifier: "019",
		Number:     "019",
		Type:       "Micro-ônibus",
		Route:      "Biopark via CD",
		Capacity:   45,
		Schedules: map[ctdf.Direction][]*ctdf.ScheduleEntry{
			ctdf.DirectionIda: {
				{Time: "06:45", Passengers: 32, AvgPassengers: 28, Occupancy: 71, Trend: ctdf.TrendStable, BusType: "Micro-ônibus"},
				{Time: "06:55", Passengers: 38, AvgPassengers: 35, Occupancy: 84, Trend: ctdf.TrendUp, BusType: "Micro-ônibus"},
				{Time: "07:05", Passengers: 42, AvgPassengers: 40, Occupancy: 93, Trend: ctdf.TrendUp, BusType: "Micro-ônibus"},
				{Time: "07:08", Passengers: 45, AvgPassengers: 43, Occupancy: 100, Trend: ctdf.TrendCritical, BusType: "Micro-ônibus"},
				{Time: "07:12", Passengers: 41, AvgPassengers: 39, Occupancy: 91, Trend: ctdf.TrendStable, BusType: "Micro-ônibus"},
				{Time: "18:00", Passengers: 43, AvgPassengers: 41, Occupancy: 96, Trend: ctdf.TrendCritical, BusType: "Micro-ônibus"},
				{Time: "19:00", Passengers: 30, AvgPassengers: 28, Occupancy: 67, Trend: ctdf.TrendDown, BusType: "Micro-ônibus"},
			},
			ctdf.DirectionVolta: {
				{Time: "07:00", Passengers: 35, AvgPassengers: 33, Occupancy: 78, Trend: ctdf.TrendStable, BusType: "Micro-ônibus"},
				{Time: "18:15", Passengers: 42, AvgPassengers: 40, Occupancy: 93, Trend: ctdf.TrendCritical, BusType: "Micro-ônibus"},
				{Time: "19:20", Passengers: 32, AvgPassengers: 30, Occupancy: 71, Trend: ctdf.TrendDown, BusType: "Micro-ônibus"},
			},
		},
		DaysOfWeek: []string{"DOM", "SEG", "TER", "QUA", "QUI", "SEX", "SÁB"},
	}
}
