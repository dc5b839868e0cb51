package service

import (
	"context"

	"github.com/google/uuid"

	"countries-backend/internal/domains/city"
	"countries-backend/internal/domains/country"
	"countries-backend/internal/shared/pagination"
	"countries-backend/internal/shared/result"
)

type cityService struct {
	repo        city.Repository
	countryRepo country.Repository
}

// NewCityService creates the city service. It holds the country repository
// as well, for the referential check on create/update.
func NewCityService(repo city.Repository, countryRepo country.Repository) city.Service {
	return &cityService{repo: repo, countryRepo: countryRepo}
}

func (s *cityService) GetCities(ctx context.Context, search string, countryID uuid.UUID, page, pageSize int) result.Result[*pagination.Page[city.CityResponse]] {
	filter := city.NewFilter(search, countryID)
	params := pagination.Normalize(page, pageSize)

	paged, err := s.repo.GetPaged(ctx, filter, params)
	if err != nil {
		return result.Fail[*pagination.Page[city.CityResponse]](result.Unexpected(err.Error()))
	}

	return result.Ok(pagination.MapPage(paged, city.ToResponse))
}

func (s *cityService) GetCityByID(ctx context.Context, id uuid.UUID) result.Result[city.CityResponse] {
	got := s.repo.GetByID(ctx, id)
	if !got.IsOk() {
		return result.Propagate[*city.City, city.CityResponse](got)
	}
	return result.Ok(city.ToResponse(got.Value()))
}

func (s *cityService) CreateCity(ctx context.Context, req city.CityCreateRequest) result.Result[city.CityResponse] {
	if err := s.validateCountryExists(ctx, req.CountryID); err != nil {
		return result.Fail[city.CityResponse](err)
	}

	created := city.New(req.Name, req.CountryID)
	if !created.IsOk() {
		return result.Propagate[*city.City, city.CityResponse](created)
	}

	added := s.repo.Add(ctx, created.Value())
	if !added.IsOk() {
		return result.Propagate[*city.City, city.CityResponse](added)
	}

	return result.Ok(city.ToResponse(added.Value()))
}

func (s *cityService) UpdateCity(ctx context.Context, id uuid.UUID, req city.CityUpdateRequest) result.Result[city.CityResponse] {
	got := s.repo.GetByID(ctx, id)
	if !got.IsOk() {
		return result.Propagate[*city.City, city.CityResponse](got)
	}

	if err := s.validateCountryExists(ctx, req.CountryID); err != nil {
		return result.Fail[city.CityResponse](err)
	}

	existing := got.Value()
	if updated := existing.Update(req.Name, req.CountryID); !updated.IsOk() {
		return result.Propagate[result.Void, city.CityResponse](updated)
	}

	saved := s.repo.Update(ctx, existing)
	if !saved.IsOk() {
		return result.Propagate[*city.City, city.CityResponse](saved)
	}

	return result.Ok(city.ToResponse(saved.Value()))
}

func (s *cityService) DeleteCity(ctx context.Context, id uuid.UUID) result.Result[result.Void] {
	return s.repo.Delete(ctx, id)
}

// validateCountryExists maps any failed lookup of the referenced country to
// NotFound("Invalid country id"), hiding the repository's own message.
func (s *cityService) validateCountryExists(ctx context.Context, countryID uuid.UUID) *result.Error {
	if got := s.countryRepo.GetByID(ctx, countryID); !got.IsOk() {
		return result.NotFound("Invalid country id")
	}
	return nil
}
