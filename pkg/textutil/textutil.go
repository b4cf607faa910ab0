// Package textutil holds the text cleanup helpers shared by every stage of
// the scrape pipeline.
package textutil

import (
	"regexp"
	"strings"
)

var (
	spaceRe   = regexp.MustCompile(`\s+`)
	numericRe = regexp.MustCompile(`^\d+$`)
)

// smallWords stay lowercase in title case unless they start the string.
var smallWords = map[string]bool{
	"and": true, "or": true, "the": true, "of": true, "in": true,
	"on": true, "at": true, "for": true, "to": true, "with": true,
}

// Normalize collapses every run of whitespace (including newlines and tabs)
// to a single space and trims the ends. Applied to every string pulled from
// markup before any comparison or parsing.
func Normalize(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// TitleCase capitalizes significant words, keeps common short words
// lowercase (except at the start), normalizes am/pm tokens, and preserves
// pure numbers. Used when rendering labels for display.
func TitleCase(s string) string {
	words := strings.Fields(strings.TrimSpace(s))
	for i, word := range words {
		if numericRe.MatchString(word) {
			continue
		}
		if m := normalizeMeridiem(word); m != "" {
			words[i] = m
			continue
		}
		lower := strings.ToLower(word)
		if i != 0 && smallWords[lower] {
			words[i] = lower
			continue
		}
		words[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(words, " ")
}

// normalizeMeridiem maps am/pm variants ("AM", "p.m.", "pm") to a consistent
// dotted lowercase form, or returns "" for non-meridiem tokens.
func normalizeMeridiem(word string) string {
	switch strings.ReplaceAll(strings.ToLower(word), ".", "") {
	case "am":
		return "a.m."
	case "pm":
		return "p.m."
	}
	return ""
}
