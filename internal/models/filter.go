package models

// Filter is the provider-agnostic query driving the feed. Sources and
// Categories are non-empty; the current selection model keeps each to a
// single active value (see state.Store), but adapters only ever read the
// first category and the aggregator honors the full source list.
type Filter struct {
	Search     string   `json:"search"`
	Sources    []string `json:"sources"`
	Categories []string `json:"categories"`
	DateFrom   string   `json:"dateFrom,omitempty"`
	DateTo     string   `json:"dateTo,omitempty"`
}

// DefaultFilter returns the initial filter: empty search, all providers,
// the "general" category, and no date bounds.
func DefaultFilter() Filter {
	return Filter{
		Search:     "",
		Sources:    AllSources(),
		Categories: []string{CategoryGeneral},
	}
}

// Category returns the active category, or "general" when none is set.
func (f Filter) Category() string {
	if len(f.Categories) == 0 {
		return CategoryGeneral
	}
	return f.Categories[0]
}

// Clone returns a deep copy so callers can hold a Filter without sharing
// the underlying slices with the state store.
func (f Filter) Clone() Filter {
	c := f
	c.Sources = append([]string(nil), f.Sources...)
	c.Categories = append([]string(nil), f.Categories...)
	return c
}
