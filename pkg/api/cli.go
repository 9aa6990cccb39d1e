package api

import (
	"github.com/rs/zerolog/log"
	"github.com/travigo/busload/pkg/dataaggregator/global"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the dashboard web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
					&cli.StringFlag{
						Name:  "catalog",
						Usage: "line catalog file or directory, defaults to the embedded catalog",
					},
				},
				Action: func(c *cli.Context) error {
					aggregator, err := global.Setup(c.String("catalog"))
					if err != nil {
						return err
					}

					log.Info().Str("listen", c.String("listen")).Int("sources", len(aggregator.Sources)).Msg("Starting web api")

					return SetupServer(c.String("listen"), aggregator)
				},
			},
		},
	}
}
