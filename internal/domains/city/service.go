package city

import (
	"context"

	"github.com/google/uuid"

	"countries-backend/internal/shared/pagination"
	"countries-backend/internal/shared/result"
)

// Service defines business logic for the city domain. Beyond the CRUD shape
// shared with countries, create and update verify that the referenced
// country exists before touching the city.
type Service interface {
	// GetCities lists cities matching an optional search term and/or an
	// optional country id.
	GetCities(ctx context.Context, search string, countryID uuid.UUID, page, pageSize int) result.Result[*pagination.Page[CityResponse]]

	// GetCityByID fails with NotFound when the city does not exist.
	GetCityByID(ctx context.Context, id uuid.UUID) result.Result[CityResponse]

	// CreateCity checks country existence, validates via the entity factory,
	// persists. Fails with NotFound("Invalid country id") for an unknown
	// country; nothing is persisted in that case.
	CreateCity(ctx context.Context, req CityCreateRequest) result.Result[CityResponse]

	// UpdateCity fetches the city (NotFound when absent), checks country
	// existence, applies validated mutation, persists.
	UpdateCity(ctx context.Context, id uuid.UUID, req CityUpdateRequest) result.Result[CityResponse]

	// DeleteCity removes the city.
	DeleteCity(ctx context.Context, id uuid.UUID) result.Result[result.Void]
}
