package ctdf

import (
	"errors"
	"strings"
)

type Direction string

const (
	DirectionIda   Direction = "ida"
	DirectionVolta Direction = "volta"
)

// Directions lists both directions in display order.
var Directions = []Direction{DirectionIda, DirectionVolta}

var ErrUnknownDirection = errors.New("unknown direction")

func (d Direction) IsValid() bool {
	return d == DirectionIda || d == DirectionVolta
}

// ParseDirection accepts the display forms too ("Ida", "VOLTA").
func ParseDirection(value string) (Direction, error) {
	direction := Direction(strings.ToLower(strings.TrimSpace(value)))

	if !direction.IsValid() {
		return "", ErrUnknownDirection
	}

	return direction, nil
}
