// Package htmltable locates the burn-day table inside arbitrary district
// markup and derives the day-column model from its header row.
package htmltable

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"burnday/models"
	"burnday/pkg/dates"
	"burnday/pkg/textutil"
)

// NotFoundError signals that no table matched the expected header. It is
// fatal: the upstream page structure changed and the adapter needs
// maintenance, so it is never retried.
type NotFoundError struct {
	Header string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("burn-day table not found (missing %q header cell)", e.Header)
}

// Locate scans all tables in document order and returns the first whose
// first header-or-data cell equals the expected header after normalization
// (compared case-insensitively).
func Locate(doc *goquery.Document, header string) (*goquery.Selection, error) {
	want := strings.ToUpper(textutil.Normalize(header))

	var found *goquery.Selection
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		first := textutil.Normalize(table.Find("th,td").First().Text())
		if strings.ToUpper(first) == want {
			found = table
			return false
		}
		return true
	})
	if found == nil {
		return nil, &NotFoundError{Header: header}
	}
	return found, nil
}

// HeaderCells returns the normalized cell texts of a table's first row.
func HeaderCells(table *goquery.Selection) []string {
	var cells []string
	table.Find("tr").First().Find("th,td").Each(func(_ int, cell *goquery.Selection) {
		cells = append(cells, textutil.Normalize(cell.Text()))
	})
	return cells
}

// ColumnModel maps the raw header row to the retained day columns. Data rows
// are indexed by original column position while the Day sequence is indexed
// by retained position, so the two views must come from one computation or
// values silently misalign with dates.
type ColumnModel struct {
	// Headers is the full ordered list of normalized header-cell texts.
	Headers []string
	// Retained holds the original column index of each day column, in
	// original left-to-right order. Index 0 (the area column) and omitted
	// columns are excluded.
	Retained []int
	// Days has one record per retained column, aligned with Retained.
	Days []models.Day
}

// BuildColumns classifies header cells into retained day columns and
// resolves each retained header to a calendar date relative to now. Headers
// containing an omit keyword (case-insensitive substring) and empty headers
// are excluded. A header that fails date parsing still yields a Day with a
// positional fallback id.
func BuildColumns(headers []string, omit []string, parser dates.Parser, now time.Time, loc *time.Location) ColumnModel {
	model := ColumnModel{Headers: headers}

	for idx := 1; idx < len(headers); idx++ {
		label := headers[idx]
		if label == "" || omitted(label, omit) {
			continue
		}

		day := models.Day{Label: label}
		if date, ok := parser.Parse(label, now, loc); ok {
			day.ID = date.Format("2006-01-02")
			day.Date = &date
		} else {
			day.ID = fmt.Sprintf("col-%d", len(model.Retained))
		}

		model.Retained = append(model.Retained, idx)
		model.Days = append(model.Days, day)
	}

	return model
}

func omitted(label string, omit []string) bool {
	lower := strings.ToLower(label)
	for _, keyword := range omit {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}
