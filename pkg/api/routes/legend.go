package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/busload/pkg/occupancy"
)

func Legend(c *fiber.Ctx) error {
	legend := []fiber.Map{}

	for _, tier := range occupancy.Tiers {
		legend = append(legend, fiber.Map{
			"Tier":  tier,
			"Color": tier.Color(),
			"Style": tier.Style(),
			"Label": tier.Label(),
		})
	}

	return c.JSON(legend)
}
