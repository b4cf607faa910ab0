// Package report implements the CLI actions around the scrape pipeline:
// fetching reports, listing sources, and querying persisted history.
package report

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"burnday/internal/sources"
	"burnday/models"
	"burnday/pkg/caching"
	"burnday/pkg/fetcher"
	"burnday/pkg/pipeline"
	"burnday/pkg/stableid"
	"burnday/pkg/store"
	"burnday/pkg/textutil"
)

func newLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

func selectSources(c *cli.Context) ([]models.SourceDescriptor, error) {
	if !c.IsSet("source") {
		return sources.All(), nil
	}
	src, ok := sources.ByKey(c.String("source"))
	if !ok {
		keys := make([]string, 0, len(sources.All()))
		for _, s := range sources.All() {
			keys = append(keys, s.Key)
		}
		return nil, fmt.Errorf("unknown source %q (known: %s)", c.String("source"), strings.Join(keys, ", "))
	}
	return []models.SourceDescriptor{src}, nil
}

// FetchAction runs the pipeline for the selected sources, prints the
// reports, and optionally records entries into the history store.
func FetchAction(c *cli.Context) error {
	logger := newLogger(c)

	var window time.Duration
	if !c.Bool("force-fetch") {
		var err error
		window, err = time.ParseDuration(c.String("max-age"))
		if err != nil {
			return fmt.Errorf("invalid max-age duration: %w", err)
		}
	}

	cache, err := caching.New(c.String("cache-dir"), window)
	if err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	selected, err := selectSources(c)
	if err != nil {
		return err
	}

	var db *store.DB
	if c.Bool("db") {
		db, err = store.Open(c.String("db-path"))
		if err != nil {
			return fmt.Errorf("failed to open history store: %w", err)
		}
		defer db.Close()
	}

	f := fetcher.New(fetcher.DefaultUserAgent, cache)
	scraper := pipeline.NewDefault()

	var reports []*models.Report
	var failed int
	for _, src := range selected {
		logger.Info("fetching source", "source", src.Key, "url", src.FetchURL, "max_age", window.String())

		adapter := sources.NewAdapter(src, f, scraper)
		rep, err := adapter.GetBurnDayStatus()
		if err != nil {
			logger.Error("source failed", "source", src.Key, "error", err)
			failed++
			continue
		}
		logger.Info("source fetched", "source", src.Key, "days", len(rep.Days), "entries", len(rep.Data))
		reports = append(reports, rep)

		if db != nil {
			fetchID, err := db.RecordReport(rep)
			if err != nil {
				logger.Error("failed to record report", "source", src.Key, "error", err)
				continue
			}
			logger.Info("report recorded", "source", src.Key, "fetch_id", fetchID)
		}
	}

	if err := printReports(c, reports); err != nil {
		return err
	}

	if failed == len(selected) {
		return fmt.Errorf("all %d source(s) failed", failed)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d source(s) failed", failed, len(selected))
	}
	return nil
}

func printReports(c *cli.Context, reports []*models.Report) error {
	switch strings.ToLower(c.String("format")) {
	case "yaml":
		data, err := yaml.Marshal(reports)
		if err != nil {
			return fmt.Errorf("failed to marshal reports: %w", err)
		}
		fmt.Print(string(data))
	case "table":
		for _, rep := range reports {
			printReportTable(rep)
		}
	default:
		data, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal reports: %w", err)
		}
		fmt.Println(string(data))
	}
	return nil
}

func printReportTable(rep *models.Report) {
	fmt.Printf("Source: %s\n", rep.Source)
	if rep.UpdatedText != "" {
		fmt.Printf("%s\n", textutil.TitleCase(rep.UpdatedText))
	}

	header := []string{"Area"}
	for _, day := range rep.Days {
		header = append(header, day.Label)
	}
	fmt.Println(strings.Join(header, " | "))

	for _, row := range rep.Rows() {
		cells := []string{row.AreaLabel}
		for _, value := range row.Values {
			cells = append(cells, formatValue(value))
		}
		fmt.Println(strings.Join(cells, " | "))
	}
	fmt.Println()
}

func formatValue(value *bool) string {
	switch {
	case value == nil:
		return "-"
	case *value:
		return "Yes"
	default:
		return "No"
	}
}

// SourcesAction lists the configured source descriptors.
func SourcesAction(c *cli.Context) error {
	fmt.Printf("%-16s %-46s %-10s %s\n", "Key", "Label", "Dialect", "Source URL")
	fmt.Println(strings.Repeat("-", 110))
	for _, src := range sources.All() {
		fmt.Printf("%-16s %-46s %-10s %s\n", src.Key, src.Label, src.Dialect, src.SourceURL)
	}
	return nil
}

// HistoryAction queries entries persisted by earlier fetch runs.
func HistoryAction(c *cli.Context) error {
	db, err := store.Open(c.String("db-path"))
	if err != nil {
		return fmt.Errorf("failed to open history store: %w", err)
	}
	defer db.Close()

	filter := store.HistoryFilter{
		Area:  c.String("area"),
		Limit: c.Int("limit"),
	}
	if c.IsSet("source") {
		src, ok := sources.ByKey(c.String("source"))
		if !ok {
			return fmt.Errorf("unknown source %q", c.String("source"))
		}
		filter.WebID = stableid.Hash(textutil.Normalize(src.SourceURL))
	}

	entries, err := db.History(filter)
	if err != nil {
		return fmt.Errorf("failed to query history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("No entries found")
		return nil
	}

	fmt.Printf("%-12s %-30s %-6s %s\n", "Day", "Area", "Value", "Source")
	fmt.Println(strings.Repeat("-", 90))
	for _, entry := range entries {
		fmt.Printf("%-12s %-30s %-6s %s\n", entry.DayID, entry.AreaLabel, formatValue(entry.Value), entry.WebLabel)
	}
	return nil
}
