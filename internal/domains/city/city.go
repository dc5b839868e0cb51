package city

import (
	"strings"

	"github.com/google/uuid"

	"countries-backend/internal/shared/result"
)

const maxNameLength = 100

// City is a self-validating entity. It checks that its country id is
// non-nil; whether that country actually exists is the service's concern.
// Fields are unexported: New and Rehydrate are the only construction paths.
type City struct {
	id        uuid.UUID
	name      string
	countryID uuid.UUID
}

// New validates and constructs a City. Name is required and at most 100
// characters; countryID must not be the nil uuid.
func New(name string, countryID uuid.UUID) result.Result[*City] {
	if err := validate(name, countryID); err != nil {
		return result.Fail[*City](err)
	}
	return result.Ok(&City{
		id:        uuid.New(),
		name:      strings.TrimSpace(name),
		countryID: countryID,
	})
}

// Update applies the same rules as New and mutates name/countryID in place.
// The identity never changes.
func (c *City) Update(name string, countryID uuid.UUID) result.Result[result.Void] {
	if err := validate(name, countryID); err != nil {
		return result.Fail[result.Void](err)
	}
	c.name = strings.TrimSpace(name)
	c.countryID = countryID
	return result.Done()
}

// Rehydrate restores a City from storage without validation. Not for use
// outside repositories.
func Rehydrate(id uuid.UUID, name string, countryID uuid.UUID) *City {
	return &City{id: id, name: name, countryID: countryID}
}

func (c *City) ID() uuid.UUID        { return c.id }
func (c *City) Name() string         { return c.name }
func (c *City) CountryID() uuid.UUID { return c.countryID }

func validate(name string, countryID uuid.UUID) *result.Error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return result.Validation("City name is required.")
	}
	if len([]rune(trimmed)) > maxNameLength {
		return result.Validation("City name must not exceed 100 characters.")
	}
	if countryID == uuid.Nil {
		return result.Validation("CountryId is required.")
	}
	return nil
}
