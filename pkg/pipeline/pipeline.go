// Package pipeline turns a parsed district page into a normalized burn-day
// report: locate the table, model its day columns, walk its data rows.
package pipeline

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonboulle/clockwork"

	"burnday/models"
	"burnday/pkg/arealabel"
	"burnday/pkg/dates"
	"burnday/pkg/htmltable"
	"burnday/pkg/stableid"
	"burnday/pkg/status"
	"burnday/pkg/textutil"
)

// Scraper composes the extraction stages. It holds no per-invocation state;
// every Scrape call builds fresh Day/Entry values, so one Scraper is safe to
// share across adapters and goroutines.
type Scraper struct {
	dates dates.Parser
	clock clockwork.Clock
	loc   *time.Location
}

// New builds a Scraper from explicit collaborators. Tests inject a stub date
// parser and a fake clock here.
func New(parser dates.Parser, clock clockwork.Clock, loc *time.Location) *Scraper {
	return &Scraper{dates: parser, clock: clock, loc: loc}
}

// NewDefault builds a production Scraper: heuristic date parsing against the
// real clock in the districts' publication zone.
func NewDefault() *Scraper {
	return New(dates.Heuristic{}, clockwork.NewRealClock(), dates.LocalZone())
}

// Scrape extracts the burn-day report for one source from its parsed page.
// It fails only when the expected table is missing; malformed rows are
// skipped and unparseable cells degrade to unknown values.
func (s *Scraper) Scrape(doc *goquery.Document, src models.SourceDescriptor) (*models.Report, error) {
	table, err := htmltable.Locate(doc, src.HeaderLabel)
	if err != nil {
		return nil, err
	}

	headers := htmltable.HeaderCells(table)
	cols := htmltable.BuildColumns(headers, src.OmitColumns, s.dates, s.clock.Now(), s.loc)

	webSource := textutil.Normalize(src.SourceURL)
	webID := stableid.Hash(webSource)

	data := []models.Entry{}
	table.Find("tr").Slice(1, goquery.ToEnd).Each(func(_ int, row *goquery.Selection) {
		var cells []string
		row.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, textutil.Normalize(cell.Text()))
		})

		// Structurally invalid rows (stray separators, spacer rows) are
		// expected noise in scraped markup, not errors.
		if len(cells) < 2 || cells[0] == "" {
			return
		}

		areaSource := cells[0]
		for _, re := range src.StripPatterns {
			areaSource = re.ReplaceAllString(areaSource, "")
		}
		areaSource = textutil.Normalize(areaSource)

		// Some districts repeat the header row mid-table.
		if areaSource == "" || strings.EqualFold(areaSource, src.HeaderLabel) {
			return
		}

		areaID := stableid.AreaID(webSource, areaSource)
		areaLabel := arealabel.Resolve(src.AreaLabels, areaSource)

		for i, day := range cols.Days {
			var raw string
			if col := cols.Retained[i]; col < len(cells) {
				raw = cells[col]
			}

			data = append(data, models.Entry{
				ID:         stableid.EntryID(webSource, areaSource, day.ID),
				WebID:      webID,
				WebSource:  webSource,
				WebLabel:   src.Label,
				AreaID:     areaID,
				AreaSource: areaSource,
				AreaLabel:  areaLabel,
				DayID:      day.ID,
				Value:      status.Parse(src.Dialect, raw),
			})
		}
	})

	report := &models.Report{
		Source: webSource,
		Days:   cols.Days,
		Data:   data,
	}
	if src.UpdatedPattern != nil {
		body := textutil.Normalize(doc.Find("body").Text())
		report.UpdatedText = src.UpdatedPattern.FindString(body)
	}
	return report, nil
}
