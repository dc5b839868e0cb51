package country

import (
	"context"

	"github.com/google/uuid"

	"countries-backend/internal/shared/pagination"
	"countries-backend/internal/shared/result"
)

// Repository defines data access for the country domain.
//
// GetPaged returns a raw error on storage faults instead of a typed Failure;
// the service layer converts it to an Unexpected result. Every other
// operation reports its outcome as a Result.
type Repository interface {
	// GetPaged returns the page of countries matching the filter plus the
	// total match count. Rows are ordered by creation time, then id, so
	// consecutive pages partition the filtered set deterministically.
	GetPaged(ctx context.Context, f Filter, p pagination.Params) (*pagination.Page[*Country], error)

	// GetByID fails with NotFound when no such country exists.
	GetByID(ctx context.Context, id uuid.UUID) result.Result[*Country]

	// Add persists a new country. Fails with Unexpected on storage faults.
	Add(ctx context.Context, c *Country) result.Result[*Country]

	// Update persists changes to an existing country. The caller has already
	// fetched it, so absence at this point is a storage fault.
	Update(ctx context.Context, c *Country) result.Result[*Country]

	// Delete removes a country and, by cascade, all of its cities. Fails
	// with NotFound when absent, Unexpected on storage faults.
	Delete(ctx context.Context, id uuid.UUID) result.Result[result.Void]
}
