package country

import "strings"

// Filter selects countries for a paged listing. A zero Filter matches
// everything. Each repository translates it to its own query form: the
// postgres store builds a WHERE clause, the memory store calls Matches.
type Filter struct {
	// Search is the already-lowercased search term; empty means no filter.
	Search string
}

// NewFilter builds a Filter from a raw search query parameter.
func NewFilter(search string) Filter {
	return Filter{Search: strings.ToLower(strings.TrimSpace(search))}
}

// IsEmpty reports whether the filter matches all countries.
func (f Filter) IsEmpty() bool {
	return f.Search == ""
}

// Matches implements the filter as an in-memory predicate: case-insensitive
// substring match on the name, or on the code when one is present.
func (f Filter) Matches(c *Country) bool {
	if f.IsEmpty() {
		return true
	}
	if strings.Contains(strings.ToLower(c.Name()), f.Search) {
		return true
	}
	return c.Code() != "" && strings.Contains(strings.ToLower(c.Code()), f.Search)
}
