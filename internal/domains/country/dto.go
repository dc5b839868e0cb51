package country

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CountryCreateRequest is the POST /countries payload.
type CountryCreateRequest struct {
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

// Validate checks request shape at the transport edge. The entity factory
// remains the authority on domain rules; this only rejects payloads that
// could never pass it, so handlers can 400 before touching the service.
func (r CountryCreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.RuneLength(1, maxNameLength),
		),
		validation.Field(&r.Code,
			validation.RuneLength(0, maxCodeLength),
		),
	)
}

// CountryUpdateRequest is the PUT /countries/:id payload.
type CountryUpdateRequest struct {
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

func (r CountryUpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.RuneLength(1, maxNameLength),
		),
		validation.Field(&r.Code,
			validation.RuneLength(0, maxCodeLength),
		),
	)
}

// CityRefResponse is the nested city shape inside a country response.
type CityRefResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CountryID uuid.UUID `json:"countryId"`
}

// CountryResponse is the API representation of a country.
type CountryResponse struct {
	ID     uuid.UUID         `json:"id"`
	Name   string            `json:"name"`
	Code   string            `json:"code,omitempty"`
	Cities []CityRefResponse `json:"cities"`
}

// ToResponse maps the entity to its transfer shape.
func ToResponse(c *Country) CountryResponse {
	cities := make([]CityRefResponse, len(c.Cities()))
	for i, ref := range c.Cities() {
		cities[i] = CityRefResponse{ID: ref.ID, Name: ref.Name, CountryID: c.ID()}
	}
	return CountryResponse{
		ID:     c.ID(),
		Name:   c.Name(),
		Code:   c.Code(),
		Cities: cities,
	}
}
