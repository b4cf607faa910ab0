package models

import "regexp"

// Dialect names the vocabulary a source uses to encode burn-day status.
type Dialect string

const (
	// DialectYesNo matches "Yes"/"No" cell text.
	DialectYesNo Dialect = "yes-no"
	// DialectBurnDayPhrase matches "Burn Day"/"No Burn Day" cell text.
	DialectBurnDayPhrase Dialect = "burn-day"
)

// SourceDescriptor is the immutable per-source configuration driving one
// pipeline invocation. Descriptors are plain values; the pipeline never
// mutates them and tests supply synthetic ones with fixture markup.
type SourceDescriptor struct {
	// Key is a short stable identifier for the source (e.g. "ca-nc-air-dist").
	Key string
	// Label is the human-readable district name.
	Label string
	// SourceURL is the canonical public URL used for display and citation.
	SourceURL string
	// FetchURL is the endpoint actually fetched. It can differ from
	// SourceURL when the table lives in an embedded iframe.
	FetchURL string
	// HeaderLabel is the expected first header cell of the target table.
	HeaderLabel string
	// AreaLabels maps canonical upstream area phrasings to curated display
	// labels. Lookup is a case-insensitive exact match.
	AreaLabels map[string]string
	// OmitColumns lists keyword substrings identifying non-day columns to
	// exclude (e.g. a permit-fee column).
	OmitColumns []string
	// Dialect selects the status vocabulary for this source.
	Dialect Dialect
	// StripPatterns are non-semantic parentheticals removed from area text
	// before it becomes the canonical areaSource.
	StripPatterns []*regexp.Regexp
	// UpdatedPattern optionally matches a free-text "last updated"
	// announcement in the page body. Best-effort metadata only.
	UpdatedPattern *regexp.Regexp
}
