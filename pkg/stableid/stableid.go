// Package stableid derives short deterministic identifiers from the
// composite keys of scraped facts. The ids survive process restarts and
// minor upstream churn, which is what makes downstream upserts idempotent.
package stableid

import "strconv"

// sep joins composite key parts before hashing. Source URLs and scraped
// table text never contain a bare "|", so "A|B"+"C" and "A"+"B|C" cannot
// collide.
const sep = "|"

// Hash returns a compact, non-negative, base-36 identifier for the input.
// Equal inputs always produce equal outputs; the hash is collision-resistant
// for this domain's key sizes but deliberately not cryptographic.
func Hash(input string) string {
	h := uint32(5381)
	for _, r := range input {
		h = h*33 ^ uint32(r)
	}
	return strconv.FormatUint(uint64(h), 36)
}

// EntryID derives the stable id of one (source, area, day) fact.
func EntryID(webKey, areaSource, dayID string) string {
	return Hash(webKey + sep + areaSource + sep + dayID)
}

// AreaID derives the stable id of one area within a source's namespace.
func AreaID(webKey, areaSource string) string {
	return Hash(webKey + sep + areaSource)
}
