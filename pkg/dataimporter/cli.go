package dataimporter

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/travigo/busload/pkg/ctdf"
	"github.com/travigo/busload/pkg/dataaggregator/global"
	"github.com/travigo/busload/pkg/database"
	"github.com/urfave/cli/v2"
)

var catalogFlag = &cli.StringFlag{
	Name:  "catalog",
	Usage: "line catalog file or directory, defaults to the embedded catalog",
}

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "Manage the line catalog",
		Subcommands: []*cli.Command{
			{
				Name:  "validate",
				Usage: "Load the catalog and report any invalid lines",
				Flags: []cli.Flag{catalogFlag},
				Action: func(c *cli.Context) error {
					catalogSource, err := global.LoadCatalog(c.String("catalog"))
					if err != nil {
						return err
					}

					lines, err := catalogSource.Lines()
					if err != nil {
						return err
					}

					log.Info().Int("lines", len(lines)).Msg("Catalog is valid")

					return nil
				},
			},
			{
				Name:      "show",
				Usage:     "Print a line from the catalog",
				ArgsUsage: "<line identifier>",
				Flags:     []cli.Flag{catalogFlag},
				Action: func(c *cli.Context) error {
					identifier := c.Args().First()
					if identifier == "" {
						return cli.Exit("a line identifier is required", 1)
					}

					catalogSource, err := global.LoadCatalog(c.String("catalog"))
					if err != nil {
						return err
					}

					line, err := catalogSource.LineQuery(ctdf.QueryLine{Identifier: identifier})
					if err != nil {
						return err
					}

					_, err = pretty.Fprintf(os.Stdout, "%# v\n", line)
					return err
				},
			},
			{
				Name:  "import",
				Usage: "Upsert the catalog into MongoDB",
				Flags: []cli.Flag{
					catalogFlag,
					&cli.StringFlag{
						Name:     "repeat-every",
						Usage:    "Repeat this import every X (Go duration, eg. 30m)",
						Required: false,
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}
					defer database.Disconnect(context.Background())

					repeatEvery := c.String("repeat-every")
					repeat := repeatEvery != ""
					var repeatDuration time.Duration
					if repeat {
						var err error
						repeatDuration, err = time.ParseDuration(repeatEvery)

						if err != nil {
							return fmt.Errorf("repeat-every: %w", err)
						}
					}

					for {
						startTime := time.Now()

						if _, err := ImportCatalog(c.Context, c.String("catalog")); err != nil {
							return err
						}
						if !repeat {
							break
						}

						waitTime := repeatDuration - time.Since(startTime)

						select {
						case <-c.Context.Done():
							return nil
						case <-time.After(waitTime):
						}
					}

					return nil
				},
			},
		},
	}
}
