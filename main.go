package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/leftovertalk/ai-digest/internal/check"
	"github.com/leftovertalk/ai-digest/internal/db"
	"github.com/leftovertalk/ai-digest/internal/extract"
	"github.com/leftovertalk/ai-digest/internal/images"
	"github.com/leftovertalk/ai-digest/models"
	"github.com/leftovertalk/ai-digest/pkg/help"
	"github.com/leftovertalk/ai-digest/pkg/imaging"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func configFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Value:   models.DefaultConfigName,
			Usage:   "YAML config file; flags override its values",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "Only log errors",
		},
	}
}

func historyFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "history-db",
		Usage: "Run history database (default: next to the binary)",
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "ai-digest",
		Usage: "Extract AI tool recommendations and experience notes from discussion records",
		Commands: []*cli.Command{
			{
				Name:   "extract",
				Usage:  "Parse the notes and write data.json",
				Action: extract.ExtractAction,
				Flags: append(configFlags(),
					&cli.StringFlag{
						Name:    "input-dir",
						Aliases: []string{"i"},
						Usage:   "Directory holding the notes",
					},
					&cli.StringFlag{
						Name:  "pattern",
						Usage: "Glob selecting note files",
					},
					&cli.StringSliceFlag{
						Name:  "exclude",
						Usage: "Glob of base names to skip (repeatable)",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Path of the JSON output",
					},
					&cli.StringFlag{
						Name:  "summary",
						Usage: "Also write a YAML run summary to this path",
					},
					&cli.IntFlag{
						Name:  "top",
						Usage: "Print the N most active contributors",
					},
					&cli.BoolFlag{
						Name:  "no-history",
						Usage: "Do not record this run in the history database",
					},
					historyFlag(),
				),
			},
			{
				Name:   "images",
				Usage:  "Generate favicons and the social preview image",
				Action: images.ImagesAction,
				Flags: append(configFlags(),
					&cli.StringFlag{
						Name:  "public-dir",
						Usage: "Directory receiving the images",
					},
					&cli.StringFlag{
						Name:  "logo",
						Usage: "PNG logo to derive the images from",
					},
					&cli.StringFlag{
						Name:  "data",
						Usage: "Published data.json used for the stats line (default: <public-dir>/data.json)",
					},
					&cli.StringFlag{
						Name:  "font",
						Usage: "TTF, OTF or TTC font for the preview text",
					},
				),
			},
			{
				Name:      "split",
				Usage:     "Cut a tall screenshot into part_NNN.png slices",
				ArgsUsage: "<image>",
				Action:    images.SplitAction,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "max-height",
						Value: imaging.DefaultMaxPartHeight,
						Usage: "Maximum height of each slice in pixels",
					},
					&cli.BoolFlag{
						Name:    "quiet",
						Aliases: []string{"q"},
						Usage:   "Only log errors",
					},
				},
			},
			{
				Name:      "check",
				Usage:     "Validate a published data.json",
				ArgsUsage: "[path]",
				Action:    check.CheckAction,
				Flags: append(configFlags(),
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Data file to check when no path is given",
					},
				),
			},
			{
				Name:   "runs",
				Usage:  "List recorded extraction runs",
				Action: db.RunsAction,
				Flags: append(configFlags(),
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "Maximum number of runs to show (0 for all)",
					},
					historyFlag(),
				),
			},
			{
				Name:      "run",
				Usage:     "Show one run and which notes changed since the previous one",
				ArgsUsage: "[run-id]",
				Action:    db.RunAction,
				Flags:     append(configFlags(), historyFlag()),
			},
			{
				Name:  "coldstart",
				Usage: "Print the quick start guide",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
		},
	}
}
