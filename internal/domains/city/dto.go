package city

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CityCreateRequest is the POST /cities payload. A malformed countryId fails
// JSON binding in the handler; an absent one arrives as uuid.Nil and is
// rejected by the entity factory.
type CityCreateRequest struct {
	Name      string    `json:"name"`
	CountryID uuid.UUID `json:"countryId"`
}

// Validate checks request shape at the transport edge; domain rules stay in
// the entity factory.
func (r CityCreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.RuneLength(1, maxNameLength),
		),
	)
}

// CityUpdateRequest is the PUT /cities/:id payload.
type CityUpdateRequest struct {
	Name      string    `json:"name"`
	CountryID uuid.UUID `json:"countryId"`
}

func (r CityUpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.RuneLength(1, maxNameLength),
		),
	)
}

// CityResponse is the API representation of a city.
type CityResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CountryID uuid.UUID `json:"countryId"`
}

// ToResponse maps the entity to its transfer shape.
func ToResponse(c *City) CityResponse {
	return CityResponse{
		ID:        c.ID(),
		Name:      c.Name(),
		CountryID: c.CountryID(),
	}
}
