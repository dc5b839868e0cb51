package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"countries-backend/internal/domains/country"
	"countries-backend/internal/domains/country/repository"
	"countries-backend/internal/shared/result"
)

func newService(t *testing.T) (country.Service, *repository.MemoryRepository) {
	t.Helper()
	repo := repository.NewMemoryRepository()
	return NewCountryService(repo), repo
}

func mustCreate(t *testing.T, svc country.Service, name, code string) country.CountryResponse {
	t.Helper()
	r := svc.CreateCountry(context.Background(), country.CountryCreateRequest{Name: name, Code: code})
	require.True(t, r.IsOk(), "create %q failed: %v", name, r.Err())
	return r.Value()
}

func TestCreateAndGetCountry(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	created := mustCreate(t, svc, "  Argentina ", "ar")
	assert.Equal(t, "Argentina", created.Name)
	assert.Equal(t, "AR", created.Code)

	got := svc.GetCountryByID(ctx, created.ID)
	require.True(t, got.IsOk())
	assert.Equal(t, created.ID, got.Value().ID)
	assert.Equal(t, "Argentina", got.Value().Name)
}

func TestCreateCountryValidationDoesNotPersist(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	r := svc.CreateCountry(ctx, country.CountryCreateRequest{Name: "   "})

	assert.False(t, r.IsOk())
	assert.Equal(t, result.KindValidation, r.Err().Kind)
	assert.Equal(t, "Country name is required.", r.Err().Message)

	list := svc.GetCountries(ctx, "", 1, 10)
	require.True(t, list.IsOk())
	assert.Equal(t, 0, list.Value().TotalCount)
}

func TestGetCountryByIDNotFound(t *testing.T) {
	svc, _ := newService(t)
	id := uuid.New()

	r := svc.GetCountryByID(context.Background(), id)

	assert.False(t, r.IsOk())
	assert.Equal(t, result.KindNotFound, r.Err().Kind)
	assert.Equal(t, "Country with ID "+id.String()+" not found.", r.Err().Message)
}

func TestGetCountriesSearchMatchesNameAndCode(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	mustCreate(t, svc, "Argentina", "AR")
	mustCreate(t, svc, "Australia", "AU")
	mustCreate(t, svc, "Austria", "AT")
	mustCreate(t, svc, "Belgium", "BE")

	r := svc.GetCountries(ctx, "Au", 1, 10)
	require.True(t, r.IsOk())
	names := responseNames(r.Value().Items)
	assert.Equal(t, []string{"Australia", "Austria"}, names)

	// "a" hits three names; Belgium stays out (no "a" in name or code).
	r = svc.GetCountries(ctx, "a", 1, 10)
	require.True(t, r.IsOk())
	assert.Equal(t, []string{"Argentina", "Australia", "Austria"}, responseNames(r.Value().Items))

	// Code matches count too.
	r = svc.GetCountries(ctx, "be", 1, 10)
	require.True(t, r.IsOk())
	assert.Equal(t, []string{"Belgium"}, responseNames(r.Value().Items))
}

func TestGetCountriesPagination(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	names := []string{"Argentina", "Belgium", "Chile", "Denmark", "Estonia"}
	for _, n := range names {
		mustCreate(t, svc, n, "")
	}

	// Walk the collection two at a time; pages are stable and disjoint.
	var seen []string
	for page := 1; page <= 3; page++ {
		r := svc.GetCountries(ctx, "", page, 2)
		require.True(t, r.IsOk())
		assert.Equal(t, 5, r.Value().TotalCount)
		assert.Equal(t, page, r.Value().Page)
		seen = append(seen, responseNames(r.Value().Items)...)
	}
	assert.Equal(t, names, seen)

	// Past the end means an empty page, not an error.
	r := svc.GetCountries(ctx, "", 4, 2)
	require.True(t, r.IsOk())
	assert.Empty(t, r.Value().Items)
}

func TestGetCountriesNormalizesPagingInput(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	mustCreate(t, svc, "Argentina", "")

	r := svc.GetCountries(ctx, "", -3, 0)

	require.True(t, r.IsOk())
	assert.Equal(t, 1, r.Value().Page)
	assert.Equal(t, 1, r.Value().PageSize)
}

func TestUpdateCountry(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	created := mustCreate(t, svc, "Argentna", "")

	r := svc.UpdateCountry(ctx, created.ID, country.CountryUpdateRequest{Name: "Argentina", Code: "ar"})

	require.True(t, r.IsOk())
	assert.Equal(t, created.ID, r.Value().ID)
	assert.Equal(t, "Argentina", r.Value().Name)
	assert.Equal(t, "AR", r.Value().Code)
}

func TestUpdateCountryNotFound(t *testing.T) {
	svc, _ := newService(t)

	r := svc.UpdateCountry(context.Background(), uuid.New(), country.CountryUpdateRequest{Name: "Argentina"})

	assert.False(t, r.IsOk())
	assert.Equal(t, result.KindNotFound, r.Err().Kind)
}

func TestUpdateCountryValidationLeavesStoredStateUntouched(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	created := mustCreate(t, svc, "Argentina", "AR")

	r := svc.UpdateCountry(ctx, created.ID, country.CountryUpdateRequest{Name: ""})
	assert.False(t, r.IsOk())
	assert.Equal(t, result.KindValidation, r.Err().Kind)

	got := svc.GetCountryByID(ctx, created.ID)
	require.True(t, got.IsOk())
	assert.Equal(t, "Argentina", got.Value().Name)
}

func TestDeleteCountry(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	created := mustCreate(t, svc, "Argentina", "AR")

	require.True(t, svc.DeleteCountry(ctx, created.ID).IsOk())

	got := svc.GetCountryByID(ctx, created.ID)
	assert.False(t, got.IsOk())
	assert.Equal(t, result.KindNotFound, got.Err().Kind)
}

func TestDeleteCountryNotFound(t *testing.T) {
	svc, _ := newService(t)

	r := svc.DeleteCountry(context.Background(), uuid.New())

	assert.False(t, r.IsOk())
	assert.Equal(t, result.KindNotFound, r.Err().Kind)
}

func responseNames(items []country.CountryResponse) []string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	return names
}
