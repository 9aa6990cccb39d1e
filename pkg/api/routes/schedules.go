package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/busload/pkg/dashboard"
	"github.com/travigo/busload/pkg/dataaggregator"
	"github.com/travigo/busload/pkg/occupancy"
)

func SchedulesRouter(router fiber.Router, repository dataaggregator.LineRepository) {
	router.Get("/:direction", func(c *fiber.Ctx) error {
		return getSchedule(c, repository)
	})
	router.Get("/:direction/summary", func(c *fiber.Ctx) error {
		return getScheduleSummary(c, repository)
	})
	router.Get("/:direction/peak_hours", func(c *fiber.Ctx) error {
		return getSchedulePeakHours(c, repository)
	})
}

func getSchedule(c *fiber.Ctx, repository dataaggregator.LineRepository) error {
	line, err := lookupLine(c, repository, c.Params("identifier"))
	if line == nil {
		return err
	}

	entries, ok, err := lookupEntries(c, line)
	if !ok {
		return err
	}

	if filterExpression := c.Query("filter"); filterExpression != "" {
		filter, err := dashboard.CompileFilter(filterExpression)
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		entries, err = filter.Apply(entries)
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	return c.JSON(dashboard.ClassifyEntries(entries, line.Capacity))
}

func getScheduleSummary(c *fiber.Ctx, repository dataaggregator.LineRepository) error {
	line, err := lookupLine(c, repository, c.Params("identifier"))
	if line == nil {
		return err
	}

	entries, ok, err := lookupEntries(c, line)
	if !ok {
		return err
	}

	return c.JSON(occupancy.Summarize(entries))
}

func getSchedulePeakHours(c *fiber.Ctx, repository dataaggregator.LineRepository) error {
	line, err := lookupLine(c, repository, c.Params("identifier"))
	if line == nil {
		return err
	}

	entries, ok, err := lookupEntries(c, line)
	if !ok {
		return err
	}

	return c.JSON(dashboard.RankedEntries(entries))
}
