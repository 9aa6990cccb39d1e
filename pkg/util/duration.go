package util

import (
	"time"

	iso8601 "github.com/senseyeio/duration"
)

// ParseISO8601Duration converts an ISO8601 duration such as PT90M into a
// time.Duration. Calendar units are measured from the Unix epoch.
func ParseISO8601Duration(value string) (time.Duration, error) {
	parsedDuration, err := iso8601.ParseISO8601(value)
	if err != nil {
		return 0, err
	}

	reference := time.Unix(0, 0).UTC()

	return parsedDuration.Shift(reference).Sub(reference), nil
}
