package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/travigo/busload/pkg/ctdf"
	"github.com/travigo/busload/pkg/dashboard"
	"github.com/travigo/busload/pkg/dataaggregator"
)

type dashboardRequest struct {
	State dashboard.State `json:"state"`
	Event dashboard.Event `json:"event"`
}

type dashboardResponse struct {
	State dashboard.State `json:"state"`
	View  *dashboard.View `json:"view"`
}

func DashboardRouter(router fiber.Router, repository dataaggregator.LineRepository) {
	router.Get("/", func(c *fiber.Ctx) error {
		return getDashboard(c, repository)
	})
	router.Post("/", func(c *fiber.Ctx) error {
		return postDashboardEvent(c, repository)
	})
}

func getDashboard(c *fiber.Ctx, repository dataaggregator.LineRepository) error {
	state := dashboard.State{
		LineIdentifier: c.Query("line"),
		Direction:      ctdf.Direction(c.Query("direction")),
		ActiveTab:      dashboard.Tab(c.Query("tab")),
		SelectedTime:   c.Query("time"),
		SearchQuery:    c.Query("search"),
	}

	view, err := renderDashboard(c, repository, state)
	if view == nil {
		return err
	}

	return c.JSON(view)
}

func postDashboardEvent(c *fiber.Ctx, repository dataaggregator.LineRepository) error {
	var request dashboardRequest
	if err := c.BodyParser(&request); err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Could not parse dashboard request body",
		})
	}

	next, err := dashboard.Reduce(request.State, request.Event)
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	view, err := renderDashboard(c, repository, next)
	if view == nil {
		return err
	}

	return c.JSON(dashboardResponse{
		State: view.State,
		View:  view,
	})
}

// renderDashboard builds the view for a state. When it returns a nil view the
// error response has already been written.
func renderDashboard(c *fiber.Ctx, repository dataaggregator.LineRepository, state dashboard.State) (*dashboard.View, error) {
	if state.LineIdentifier == "" {
		lines, err := repository.ListLines(c.Context(), "")
		if err != nil || len(lines) == 0 {
			log.Error().Err(err).Msg("No default Line available for dashboard")

			c.SendStatus(fiber.StatusNotFound)
			return nil, c.JSON(fiber.Map{
				"error": "No Lines available",
			})
		}

		state.LineIdentifier = lines[0].Identifier
	}

	line, err := lookupLine(c, repository, state.LineIdentifier)
	if line == nil {
		return nil, err
	}

	view, err := dashboard.Build(line, state)
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return nil, c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if view.State.SearchQuery != "" {
		lines, err := repository.ListLines(c.Context(), view.State.SearchQuery)
		if err != nil {
			log.Error().Err(err).Str("search", view.State.SearchQuery).Msg("Line search failed")
		}

		view.SearchResults = dashboard.SearchLines(lines, view.State.SearchQuery)
	}

	return view, nil
}
