package city

import (
	"strings"

	"github.com/google/uuid"
)

// Filter selects cities for a paged listing; either part may be unset. The
// four combinations (none, country only, search only, both) mirror the list
// endpoint's query parameters.
type Filter struct {
	// Search is the already-lowercased search term; empty means no filter.
	Search string
	// CountryID limits the listing to one country; uuid.Nil means no filter.
	CountryID uuid.UUID
}

// NewFilter builds a Filter from raw query parameters.
func NewFilter(search string, countryID uuid.UUID) Filter {
	return Filter{
		Search:    strings.ToLower(strings.TrimSpace(search)),
		CountryID: countryID,
	}
}

func (f Filter) HasSearch() bool  { return f.Search != "" }
func (f Filter) HasCountry() bool { return f.CountryID != uuid.Nil }

// Matches implements the filter as an in-memory predicate.
func (f Filter) Matches(c *City) bool {
	if f.HasCountry() && c.CountryID() != f.CountryID {
		return false
	}
	if f.HasSearch() && !strings.Contains(strings.ToLower(c.Name()), f.Search) {
		return false
	}
	return true
}
