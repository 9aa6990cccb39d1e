package ctdf

import (
	"fmt"
	"regexp"
)

// Line is a single bus line configuration with its per-direction schedules.
// Lines are built once when the catalog loads and never mutated after that.
type Line struct {
	Identifier string `groups:"basic"`

	Number        string        `groups:"basic"`
	Type          string        `groups:"basic"`
	Route         string        `groups:"basic"`
	TransportType TransportType `groups:"basic"`

	Capacity int `groups:"basic,detailed"`

	// Schedules is left out of sheriff groups; routes attach it explicitly.
	Schedules  map[Direction][]*ScheduleEntry
	DaysOfWeek []string `groups:"detailed"`

	DataSource *DataSource `groups:"internal"`
}

// ScheduleEntry is one scheduled departure. Occupancy is stored data and is
// never recomputed from Passengers and the line capacity.
type ScheduleEntry struct {
	Time          string `groups:"basic"`
	Passengers    int    `groups:"basic"`
	AvgPassengers int    `groups:"basic"`
	Occupancy     int    `groups:"basic"`
	Trend         Trend  `groups:"basic"`
	BusType       string `groups:"basic"`
}

var scheduleTimeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// EntriesFor returns the schedule for a direction. An unknown direction
// returns ErrUnknownDirection rather than an empty schedule.
func (l *Line) EntriesFor(direction Direction) ([]*ScheduleEntry, error) {
	if !direction.IsValid() {
		return nil, ErrUnknownDirection
	}

	return l.Schedules[direction], nil
}

// FindEntry returns the entry with the given time label in a direction, or nil.
func (l *Line) FindEntry(direction Direction, time string) *ScheduleEntry {
	for _, entry := range l.Schedules[direction] {
		if entry.Time == time {
			return entry
		}
	}

	return nil
}

func (l *Line) Validate() error {
	if l.Identifier == "" {
		return fmt.Errorf("line %q: identifier is required", l.Number)
	}

	if l.Capacity <= 0 {
		return fmt.Errorf("line %s: capacity must be positive, got %d", l.Identifier, l.Capacity)
	}

	for direction := range l.Schedules {
		if !direction.IsValid() {
			return fmt.Errorf("line %s: %w %q", l.Identifier, ErrUnknownDirection, direction)
		}
	}

	for _, direction := range Directions {
		entries, exists := l.Schedules[direction]
		if !exists {
			return fmt.Errorf("line %s: missing schedule for direction %s", l.Identifier, direction)
		}

		seenTimes := map[string]bool{}
		for _, entry := range entries {
			if !scheduleTimeRegex.MatchString(entry.Time) {
				return fmt.Errorf("line %s %s: invalid time %q", l.Identifier, direction, entry.Time)
			}
			if seenTimes[entry.Time] {
				return fmt.Errorf("line %s %s: duplicate time %s", l.Identifier, direction, entry.Time)
			}
			seenTimes[entry.Time] = true

			if entry.Passengers < 0 || entry.AvgPassengers < 0 {
				return fmt.Errorf("line %s %s %s: passenger counts cannot be negative", l.Identifier, direction, entry.Time)
			}
		}
	}

	return nil
}
