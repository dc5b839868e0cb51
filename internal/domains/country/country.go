package country

import (
	"strings"

	"github.com/google/uuid"

	"countries-backend/internal/shared/result"
)

const (
	maxNameLength = 100
	maxCodeLength = 10
)

// CityRef is the slice of city state a country carries: enough to render the
// nested cities of a country response without importing the city domain.
type CityRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Country is a self-validating entity. Fields are unexported so the only
// paths to an instance are New (validated) and Rehydrate (persistence layer
// restoring already-validated state).
type Country struct {
	id     uuid.UUID
	name   string
	code   string // upper-cased; empty when absent
	cities []CityRef
}

// New validates and constructs a Country. Name is required and at most 100
// characters; code is optional, at most 10 characters, stored trimmed and
// upper-cased.
func New(name, code string) result.Result[*Country] {
	if err := validate(name, code); err != nil {
		return result.Fail[*Country](err)
	}
	return result.Ok(&Country{
		id:   uuid.New(),
		name: strings.TrimSpace(name),
		code: normalizeCode(code),
	})
}

// Update applies the same validation rules as New and mutates name/code in
// place. The identity and the cities collection are never touched.
func (c *Country) Update(name, code string) result.Result[result.Void] {
	if err := validate(name, code); err != nil {
		return result.Fail[result.Void](err)
	}
	c.name = strings.TrimSpace(name)
	c.code = normalizeCode(code)
	return result.Done()
}

// Rehydrate restores a Country from storage. It performs no validation; the
// row was validated when it was written. Not for use outside repositories.
func Rehydrate(id uuid.UUID, name, code string, cities []CityRef) *Country {
	return &Country{id: id, name: name, code: code, cities: cities}
}

func (c *Country) ID() uuid.UUID     { return c.id }
func (c *Country) Name() string      { return c.name }
func (c *Country) Code() string      { return c.code }
func (c *Country) Cities() []CityRef { return c.cities }

func validate(name, code string) *result.Error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return result.Validation("Country name is required.")
	}
	if len([]rune(trimmed)) > maxNameLength {
		return result.Validation("Country name must not exceed 100 characters.")
	}
	if code := strings.TrimSpace(code); code != "" && len([]rune(code)) > maxCodeLength {
		return result.Validation("Country code must not exceed 10 characters.")
	}
	return nil
}

func normalizeCode(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	return strings.ToUpper(code)
}
