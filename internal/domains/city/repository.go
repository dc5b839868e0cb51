package city

import (
	"context"

	"github.com/google/uuid"

	"countries-backend/internal/shared/pagination"
	"countries-backend/internal/shared/result"
)

// Repository defines data access for the city domain. Same contract shape as
// the country repository: GetPaged reports storage faults as a raw error for
// the service to wrap, everything else returns a Result.
type Repository interface {
	// GetPaged returns the page of cities matching the filter plus the total
	// match count, ordered by creation time then id.
	GetPaged(ctx context.Context, f Filter, p pagination.Params) (*pagination.Page[*City], error)

	// GetByID fails with NotFound when no such city exists.
	GetByID(ctx context.Context, id uuid.UUID) result.Result[*City]

	// Add persists a new city. Fails with Unexpected on storage faults.
	Add(ctx context.Context, c *City) result.Result[*City]

	// Update persists changes to an existing city.
	Update(ctx context.Context, c *City) result.Result[*City]

	// Delete fails with NotFound when absent, Unexpected on storage faults.
	Delete(ctx context.Context, id uuid.UUID) result.Result[result.Void]
}
