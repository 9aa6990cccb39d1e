package dashboard

import (
	"encoding/json"
	"os"

	"github.com/travigo/busload/pkg/ctdf"
	"github.com/travigo/busload/pkg/dataaggregator/global"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "dashboard",
		Usage: "Render dashboard views from the command line",
		Subcommands: []*cli.Command{
			{
				Name:  "render",
				Usage: "Print the view for a dashboard state as JSON",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "catalog",
						Usage: "line catalog file or directory, defaults to the embedded catalog",
					},
					&cli.StringFlag{
						Name:     "line",
						Usage:    "line identifier",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "direction",
						Value: string(ctdf.DirectionIda),
					},
					&cli.StringFlag{
						Name:  "tab",
						Value: string(TabSchedule),
					},
					&cli.StringFlag{
						Name:  "time",
						Usage: "selected schedule time (HH:MM)",
					},
				},
				Action: func(c *cli.Context) error {
					aggregator, err := global.Setup(c.String("catalog"))
					if err != nil {
						return err
					}

					line, err := aggregator.GetLine(c.Context, c.String("line"))
					if err != nil {
						return err
					}

					view, err := Build(line, State{
						LineIdentifier: line.Identifier,
						Direction:      ctdf.Direction(c.String("direction")),
						ActiveTab:      Tab(c.String("tab")),
						SelectedTime:   c.String("time"),
					})
					if err != nil {
						return err
					}

					encoder := json.NewEncoder(os.Stdout)
					encoder.SetIndent("", "  ")

					return encoder.Encode(view)
				},
			},
		},
	}
}
