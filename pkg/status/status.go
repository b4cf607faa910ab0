// Package status parses free-text burn-day cells into a tri-state value.
package status

import (
	"strings"

	"burnday/models"
)

// Parse maps raw cell text to true (burning permitted), false (not
// permitted), or nil (unknown/unparseable) under the source's dialect.
// Empty or whitespace-only input is nil regardless of dialect.
func Parse(dialect models.Dialect, raw string) *bool {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return nil
	}

	switch dialect {
	case models.DialectBurnDayPhrase:
		// "no burn day" also contains "burn day", so it is checked first.
		if strings.Contains(s, "no burn day") {
			return boolPtr(false)
		}
		if strings.Contains(s, "burn day") {
			return boolPtr(true)
		}
	case models.DialectYesNo:
		if strings.Contains(s, "yes") {
			return boolPtr(true)
		}
		if strings.Contains(s, "no") {
			return boolPtr(false)
		}
	}
	return nil
}

func boolPtr(v bool) *bool {
	return &v
}
