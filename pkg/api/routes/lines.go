package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/iter"
	"github.com/travigo/busload/pkg/ctdf"
	"github.com/travigo/busload/pkg/dashboard"
	"github.com/travigo/busload/pkg/dataaggregator"
	"github.com/travigo/busload/pkg/occupancy"
)

type directionOverview struct {
	Direction ctdf.Direction
	Summary   occupancy.Summary
}

func LinesRouter(router fiber.Router, repository dataaggregator.LineRepository) {
	router.Get("/", func(c *fiber.Ctx) error {
		return listLines(c, repository)
	})
	router.Get("/:identifier", func(c *fiber.Ctx) error {
		return getLine(c, repository)
	})
	router.Get("/:identifier/overview", func(c *fiber.Ctx) error {
		return getLineOverview(c, repository)
	})

	SchedulesRouter(router.Group("/:identifier/schedules"), repository)
}

func listLines(c *fiber.Ctx, repository dataaggregator.LineRepository) error {
	lines, err := repository.ListLines(c.Context(), c.Query("search"))
	if err != nil {
		log.Error().Err(err).Msg("Line listing failed")

		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not list Lines",
		})
	}

	reducedLines, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, lines)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce Lines",
		})
	}

	return c.JSON(reducedLines)
}

func getLine(c *fiber.Ctx, repository dataaggregator.LineRepository) error {
	line, err := lookupLine(c, repository, c.Params("identifier"))
	if line == nil {
		return err
	}

	reducedLine, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, line)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce Line",
		})
	}

	lineMap, ok := reducedLine.(map[string]interface{})
	if !ok {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce Line",
		})
	}

	schedules := map[string][]*ctdf.ScheduleEntry{}
	for direction, entries := range line.Schedules {
		schedules[string(direction)] = entries
	}
	lineMap["Schedules"] = schedules

	return c.JSON(lineMap)
}

func getLineOverview(c *fiber.Ctx, repository dataaggregator.LineRepository) error {
	line, err := lookupLine(c, repository, c.Params("identifier"))
	if line == nil {
		return err
	}

	overview := iter.Map(ctdf.Directions, func(direction *ctdf.Direction) directionOverview {
		entries, _ := line.EntriesFor(*direction)

		return directionOverview{
			Direction: *direction,
			Summary:   occupancy.Summarize(entries),
		}
	})

	return c.JSON(fiber.Map{
		"Line":       dashboard.NewLineHeader(line),
		"Directions": overview,
	})
}
