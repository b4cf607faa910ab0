package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"burnday/internal/report"
	"burnday/pkg/store"
)

func main() {
	app := &cli.App{
		Name:  "burnday",
		Usage: "Scrape and track burn day status from air quality district websites",
		Commands: []*cli.Command{
			{
				Name:   "fetch",
				Usage:  "Fetch burn day reports from one or all sources",
				Action: report.FetchAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "source",
						Usage: "Fetch a single source by key (default: all sources)",
					},
					&cli.StringFlag{
						Name:  "max-age",
						Value: "1h",
						Usage: "Reuse cached pages younger than this duration",
					},
					&cli.BoolFlag{
						Name:  "force-fetch",
						Usage: "Ignore cached pages and fetch fresh",
					},
					&cli.StringFlag{
						Name:  "cache-dir",
						Value: "burnday-cache",
						Usage: "Directory for cached page bodies",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "json",
						Usage: "Output format: json, yaml, or table",
					},
					&cli.BoolFlag{
						Name:  "db",
						Usage: "Record fetched entries into the history store",
					},
					&cli.StringFlag{
						Name:  "db-path",
						Value: store.DefaultDBName,
						Usage: "Path to the history database",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "Only log errors",
					},
				},
			},
			{
				Name:   "sources",
				Usage:  "List the configured air quality district sources",
				Action: report.SourcesAction,
			},
			{
				Name:   "history",
				Usage:  "Query entries recorded by earlier fetch runs",
				Action: report.HistoryAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "source",
						Usage: "Limit results to a single source key",
					},
					&cli.StringFlag{
						Name:  "area",
						Usage: "Limit results to areas matching this label",
					},
					&cli.IntFlag{
						Name:  "limit",
						Value: 50,
						Usage: "Maximum number of entries to return",
					},
					&cli.StringFlag{
						Name:  "db-path",
						Value: store.DefaultDBName,
						Usage: "Path to the history database",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
