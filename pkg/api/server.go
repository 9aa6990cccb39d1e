package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/busload/pkg/api/routes"
	"github.com/travigo/busload/pkg/dataaggregator"
)

func NewApp(repository dataaggregator.LineRepository) *fiber.App {
	webApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)
	group.Get("legend", routes.Legend)

	routes.LinesRouter(group.Group("/lines"), repository)
	routes.DashboardRouter(group.Group("/dashboard"), repository)

	return webApp
}

func SetupServer(listen string, repository dataaggregator.LineRepository) error {
	return NewApp(repository).Listen(listen)
}
