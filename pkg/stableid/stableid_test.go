package stableid

import (
	"strings"
	"testing"
)

func TestHashDeterministic(t *testing.T) {
	inputs := []string{
		"",
		"https://www.myairdistrict.com/burn-day-status",
		"Western Nevada County (West of Norden, Including Soda Springs)",
		"2026-08-28",
	}
	for _, input := range inputs {
		first := Hash(input)
		for i := 0; i < 3; i++ {
			if got := Hash(input); got != first {
				t.Errorf("Hash(%q) not deterministic: %q then %q", input, first, got)
			}
		}
	}
}

func TestHashDistinct(t *testing.T) {
	corpus := []string{
		"Downtown and East Quincy",
		"Plumas County (Outside Quincy Area)",
		"Sierra County",
		"Town of Truckee",
		"Western Nevada County (West of Norden, Including Soda Springs)",
		"Western Placer County (West of Cisco Grove)",
		"Granite Bay (Zip Codes 95746 & 95661) Residential",
		"City of Auburn",
		"Eastern Placer County (East of Cisco Grove)",
		"Eastern Placer County Truckee Fire District",
		"Lake Tahoe (North Shore Placer County)",
		"2026-08-28",
		"2026-08-29",
		"col-0",
		"col-1",
	}

	seen := map[string]string{}
	for _, input := range corpus {
		id := Hash(input)
		if prev, ok := seen[id]; ok {
			t.Errorf("Hash collision: %q and %q both map to %q", prev, input, id)
		}
		seen[id] = input
	}
}

func TestHashNonNegativeBase36(t *testing.T) {
	for _, input := range []string{"", "a", "Sierra County", strings.Repeat("x", 512)} {
		id := Hash(input)
		if id == "" {
			t.Fatalf("Hash(%q) returned empty id", input)
		}
		if strings.HasPrefix(id, "-") {
			t.Errorf("Hash(%q) = %q, want non-negative", input, id)
		}
		for _, r := range id {
			if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'z') {
				t.Errorf("Hash(%q) = %q contains non-base36 rune %q", input, id, r)
			}
		}
	}
}

func TestEntryIDDependsOnAllParts(t *testing.T) {
	base := EntryID("web", "area", "day")

	if got := EntryID("web2", "area", "day"); got == base {
		t.Error("EntryID unchanged when the web key changed")
	}
	if got := EntryID("web", "area2", "day"); got == base {
		t.Error("EntryID unchanged when the area changed")
	}
	if got := EntryID("web", "area", "day2"); got == base {
		t.Error("EntryID unchanged when the day changed")
	}
	if got := EntryID("web", "area", "day"); got != base {
		t.Errorf("EntryID not stable for identical inputs: %q vs %q", got, base)
	}
}

func TestCompositeDelimiterPreventsAmbiguity(t *testing.T) {
	// Shifting a boundary between parts must change the id.
	if AreaID("ab", "c") == AreaID("a", "bc") {
		t.Error("AreaID ambiguous across part boundaries")
	}
}
