package models

import "time"

// Day represents one calendar column published by a source.
type Day struct {
	// ID is the ISO calendar date (YYYY-MM-DD) when the header text parsed
	// as a date, otherwise a positional fallback token (col-<index>).
	ID    string     `json:"id" yaml:"id"`
	Label string     `json:"label" yaml:"label"`
	Date  *time.Time `json:"date,omitempty" yaml:"date,omitempty"`
}

// Entry is one (source, area, day) burn-day fact.
type Entry struct {
	ID         string `json:"id" yaml:"id"`
	WebID      string `json:"webId" yaml:"webId"`
	WebSource  string `json:"webSource" yaml:"webSource"`
	WebLabel   string `json:"webLabel" yaml:"webLabel"`
	AreaID     string `json:"areaId" yaml:"areaId"`
	AreaSource string `json:"areaSource" yaml:"areaSource"`
	AreaLabel  string `json:"areaLabel" yaml:"areaLabel"`
	DayID      string `json:"dayId" yaml:"dayId"`
	// Value is true when burning is permitted, false when it is not, and
	// nil when the upstream cell was empty or unparseable.
	Value *bool `json:"value" yaml:"value"`
}

// Report is the result of one adapter invocation. Days and Data are built
// fresh on every fetch and are never mutated after being returned.
type Report struct {
	Source      string  `json:"source" yaml:"source"`
	UpdatedText string  `json:"updatedText,omitempty" yaml:"updatedText,omitempty"`
	Days        []Day   `json:"days" yaml:"days"`
	Data        []Entry `json:"data" yaml:"data"`
}

// Row groups one area's entries in day-column order for display.
type Row struct {
	AreaID     string
	AreaSource string
	AreaLabel  string
	Values     []*bool
}

// Rows regroups the flat entry list per area, preserving upstream row order.
// Entries are emitted row-major by the pipeline, so consecutive runs of
// len(Days) entries share one area.
func (r *Report) Rows() []Row {
	var rows []Row
	for _, e := range r.Data {
		if len(rows) == 0 || rows[len(rows)-1].AreaID != e.AreaID {
			rows = append(rows, Row{
				AreaID:     e.AreaID,
				AreaSource: e.AreaSource,
				AreaLabel:  e.AreaLabel,
			})
		}
		rows[len(rows)-1].Values = append(rows[len(rows)-1].Values, e.Value)
	}
	return rows
}
