package htmltable

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// stubParser is a deterministic stand-in for the natural-language date
// parser: it resolves only the labels it was seeded with.
type stubParser map[string]string

func (s stubParser) Parse(text string, _ time.Time, loc *time.Location) (time.Time, bool) {
	iso, ok := s[text]
	if !ok {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02", iso, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse fixture HTML: %v", err)
	}
	return doc
}

func TestLocate(t *testing.T) {
	html := `<html><body>
		<table><tr><td>Navigation</td></tr></table>
		<table><tr><th> area </th><th>Mon 8/24</th></tr></table>
	</body></html>`
	doc := mustDoc(t, html)

	table, err := Locate(doc, "Area")
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	first := table.Find("th").First().Text()
	if strings.TrimSpace(first) != "area" {
		t.Errorf("Locate() matched wrong table, first cell = %q", first)
	}
}

func TestLocateNotFound(t *testing.T) {
	doc := mustDoc(t, `<html><body><table><tr><td>Menu</td></tr></table></body></html>`)

	_, err := Locate(doc, "Area")
	if err == nil {
		t.Fatal("Locate() returned nil error for a document without the table")
	}
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Locate() error = %T, want *NotFoundError", err)
	}
	if notFound.Header != "Area" {
		t.Errorf("NotFoundError.Header = %q, want %q", notFound.Header, "Area")
	}
}

func TestHeaderCells(t *testing.T) {
	doc := mustDoc(t, `<table>
		<tr><th>Area</th><th> Mon   8/24 </th><td>Permit
		Fee</td></tr>
		<tr><td>Sierra County</td><td>Yes</td><td>$10</td></tr>
	</table>`)

	got := HeaderCells(doc.Find("table"))
	want := []string{"Area", "Mon 8/24", "Permit Fee"}
	if len(got) != len(want) {
		t.Fatalf("HeaderCells() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("HeaderCells()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBuildColumnsOmission(t *testing.T) {
	headers := []string{"Area", "Permit Fee", "Mon 8/24", "Tue 8/25"}
	parser := stubParser{"Mon 8/24": "2026-08-24", "Tue 8/25": "2026-08-25"}
	now := time.Date(2026, time.August, 24, 12, 0, 0, 0, time.UTC)

	model := BuildColumns(headers, []string{"permit"}, parser, now, time.UTC)

	if len(model.Retained) != 2 || model.Retained[0] != 2 || model.Retained[1] != 3 {
		t.Fatalf("Retained = %v, want [2 3]", model.Retained)
	}
	if len(model.Days) != 2 {
		t.Fatalf("got %d days, want 2", len(model.Days))
	}
	if model.Days[0].ID != "2026-08-24" || model.Days[1].ID != "2026-08-25" {
		t.Errorf("day ids = %q, %q, want ISO dates", model.Days[0].ID, model.Days[1].ID)
	}
	if model.Days[0].Label != "Mon 8/24" {
		t.Errorf("Days[0].Label = %q, want original header text", model.Days[0].Label)
	}
}

func TestBuildColumnsFallbackID(t *testing.T) {
	headers := []string{"Area", "Today", "Tomorrow"}
	now := time.Date(2026, time.August, 24, 12, 0, 0, 0, time.UTC)

	model := BuildColumns(headers, nil, stubParser{}, now, time.UTC)

	if len(model.Days) != 2 {
		t.Fatalf("got %d days, want 2", len(model.Days))
	}
	if model.Days[0].ID != "col-0" || model.Days[1].ID != "col-1" {
		t.Errorf("fallback ids = %q, %q, want col-0, col-1", model.Days[0].ID, model.Days[1].ID)
	}
	if model.Days[0].Date != nil {
		t.Error("unparseable header should have no resolved date")
	}
}

func TestBuildColumnsSkipsEmptyHeaders(t *testing.T) {
	headers := []string{"Area", "", "Mon 8/24"}
	parser := stubParser{"Mon 8/24": "2026-08-24"}
	now := time.Date(2026, time.August, 24, 12, 0, 0, 0, time.UTC)

	model := BuildColumns(headers, nil, parser, now, time.UTC)

	if len(model.Retained) != 1 || model.Retained[0] != 2 {
		t.Fatalf("Retained = %v, want [2]", model.Retained)
	}
}
