// Package dates resolves free-text table headers ("Wed 8/28", "Aug 28") to
// calendar dates relative to a reference instant.
package dates

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"burnday/pkg/textutil"
)

// Parser resolves header text to a calendar date. A false second return
// means the text is not a date; that is an expected outcome, not an error.
type Parser interface {
	Parse(text string, ref time.Time, loc *time.Location) (time.Time, bool)
}

// LocalZone is the fixed reference zone the upstream districts publish in.
func LocalZone() *time.Location {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		return time.UTC
	}
	return loc
}

// Heuristic backs Parser with araddon/dateparse plus light preprocessing:
// leading weekday names are dropped and a missing year is backfilled from
// the reference instant, rolling forward when the backfilled date would land
// far in the past (a December fetch reading a January header).
type Heuristic struct{}

var weekdayPrefixes = []string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
	"sun", "mon", "tue", "tues", "wed", "thu", "thur", "thurs", "fri", "sat",
}

func (Heuristic) Parse(text string, ref time.Time, loc *time.Location) (time.Time, bool) {
	cleaned := stripWeekday(textutil.Normalize(text))
	if cleaned == "" {
		return time.Time{}, false
	}

	// dateparse resolves yearless text ("Aug 29", "8/28") to year 0 rather
	// than failing, so a zero year means the header carried no year at all.
	if t, err := dateparse.ParseIn(cleaned, loc); err == nil && t.Year() > 0 {
		return midnight(t, loc), true
	}

	// No year in the header; try again with the reference year.
	year := ref.In(loc).Year()
	for _, candidate := range []string{
		fmt.Sprintf("%s, %d", cleaned, year),
		fmt.Sprintf("%s/%d", cleaned, year),
	} {
		t, err := dateparse.ParseIn(candidate, loc)
		if err != nil || t.Year() == 0 {
			continue
		}
		t = midnight(t, loc)
		// Year-end wrap: a header naming early January read in late December
		// refers to the coming year, not the one just backfilled.
		if ref.In(loc).Sub(t) > 183*24*time.Hour {
			t = t.AddDate(1, 0, 0)
		}
		return t, true
	}

	return time.Time{}, false
}

func stripWeekday(s string) string {
	lower := strings.ToLower(s)
	for _, day := range weekdayPrefixes {
		if !strings.HasPrefix(lower, day) {
			continue
		}
		rest := s[len(day):]
		// Only treat it as a weekday prefix when a separator follows;
		// "Monthly Fee" must not lose its "Mon".
		trimmed := strings.TrimLeft(rest, " ,.")
		if trimmed != rest && trimmed != "" {
			return trimmed
		}
	}
	return s
}

func midnight(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
