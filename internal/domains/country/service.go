package country

import (
	"context"

	"github.com/google/uuid"

	"countries-backend/internal/shared/pagination"
	"countries-backend/internal/shared/result"
)

// Service defines business logic for the country domain. Every operation
// returns a Result; the handler layer translates error kinds to HTTP status.
type Service interface {
	// GetCountries lists countries matching an optional search term,
	// case-insensitive against name and code.
	GetCountries(ctx context.Context, search string, page, pageSize int) result.Result[*pagination.Page[CountryResponse]]

	// GetCountryByID fails with NotFound when the country does not exist.
	GetCountryByID(ctx context.Context, id uuid.UUID) result.Result[CountryResponse]

	// CreateCountry validates via the entity factory and persists.
	CreateCountry(ctx context.Context, req CountryCreateRequest) result.Result[CountryResponse]

	// UpdateCountry fetches, applies validated mutation, persists.
	UpdateCountry(ctx context.Context, id uuid.UUID, req CountryUpdateRequest) result.Result[CountryResponse]

	// DeleteCountry removes the country and cascades to its cities.
	DeleteCountry(ctx context.Context, id uuid.UUID) result.Result[result.Void]
}
