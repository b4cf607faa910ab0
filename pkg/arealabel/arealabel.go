// Package arealabel resolves raw upstream area text to curated display
// labels. The dictionary produces stable, readable labels without mutating
// the canonical join key (areaSource).
package arealabel

import "strings"

// Resolve performs a case-insensitive exact lookup of area against the
// dictionary keys and returns the mapped label on a hit, or the input
// unchanged. Matching is never a substring match: upstream text that merely
// contains a dictionary key does not resolve.
func Resolve(labels map[string]string, area string) string {
	for key, label := range labels {
		if strings.EqualFold(key, area) {
			return label
		}
	}
	return area
}
