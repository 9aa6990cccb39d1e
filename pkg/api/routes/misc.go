package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/travigo/busload/pkg/ctdf"
	"github.com/travigo/busload/pkg/dataaggregator"
	"github.com/travigo/busload/pkg/dataaggregator/source"
)

// lookupLine fetches the line named by identifier and writes the error
// response itself when it can't. A nil line means the response is done.
func lookupLine(c *fiber.Ctx, repository dataaggregator.LineRepository, identifier string) (*ctdf.Line, error) {
	line, err := repository.GetLine(c.Context(), identifier)

	if errors.Is(err, source.ErrLineNotFound) || (err == nil && line == nil) {
		c.SendStatus(fiber.StatusNotFound)
		return nil, c.JSON(fiber.Map{
			"error": "Could not find Line matching Line Identifier",
		})
	} else if err != nil {
		log.Error().Err(err).Str("identifier", identifier).Msg("Line lookup failed")

		c.SendStatus(fiber.StatusInternalServerError)
		return nil, c.JSON(fiber.Map{
			"error": "Could not load Line",
		})
	}

	return line, nil
}

// lookupEntries returns the schedule for the direction path parameter. When
// ok is false the error response has already been written.
func lookupEntries(c *fiber.Ctx, line *ctdf.Line) (entries []*ctdf.ScheduleEntry, ok bool, err error) {
	direction, err := ctdf.ParseDirection(c.Params("direction"))
	if err == nil {
		entries, err = line.EntriesFor(direction)
	}

	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return nil, false, c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return entries, true, nil
}
