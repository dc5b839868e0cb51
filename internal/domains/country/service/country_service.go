package service

import (
	"context"

	"github.com/google/uuid"

	"countries-backend/internal/domains/country"
	"countries-backend/internal/shared/pagination"
	"countries-backend/internal/shared/result"
)

type countryService struct {
	repo country.Repository
}

// NewCountryService creates the country service. The repository is the only
// dependency and is injected by the container.
func NewCountryService(repo country.Repository) country.Service {
	return &countryService{repo: repo}
}

func (s *countryService) GetCountries(ctx context.Context, search string, page, pageSize int) result.Result[*pagination.Page[country.CountryResponse]] {
	filter := country.NewFilter(search)
	params := pagination.Normalize(page, pageSize)

	paged, err := s.repo.GetPaged(ctx, filter, params)
	if err != nil {
		return result.Fail[*pagination.Page[country.CountryResponse]](result.Unexpected(err.Error()))
	}

	return result.Ok(pagination.MapPage(paged, country.ToResponse))
}

func (s *countryService) GetCountryByID(ctx context.Context, id uuid.UUID) result.Result[country.CountryResponse] {
	got := s.repo.GetByID(ctx, id)
	if !got.IsOk() {
		return result.Propagate[*country.Country, country.CountryResponse](got)
	}
	return result.Ok(country.ToResponse(got.Value()))
}

func (s *countryService) CreateCountry(ctx context.Context, req country.CountryCreateRequest) result.Result[country.CountryResponse] {
	created := country.New(req.Name, req.Code)
	if !created.IsOk() {
		return result.Propagate[*country.Country, country.CountryResponse](created)
	}

	added := s.repo.Add(ctx, created.Value())
	if !added.IsOk() {
		return result.Propagate[*country.Country, country.CountryResponse](added)
	}

	return result.Ok(country.ToResponse(added.Value()))
}

func (s *countryService) UpdateCountry(ctx context.Context, id uuid.UUID, req country.CountryUpdateRequest) result.Result[country.CountryResponse] {
	got := s.repo.GetByID(ctx, id)
	if !got.IsOk() {
		return result.Propagate[*country.Country, country.CountryResponse](got)
	}

	existing := got.Value()
	if updated := existing.Update(req.Name, req.Code); !updated.IsOk() {
		return result.Propagate[result.Void, country.CountryResponse](updated)
	}

	saved := s.repo.Update(ctx, existing)
	if !saved.IsOk() {
		return result.Propagate[*country.Country, country.CountryResponse](saved)
	}

	return result.Ok(country.ToResponse(saved.Value()))
}

func (s *countryService) DeleteCountry(ctx context.Context, id uuid.UUID) result.Result[result.Void] {
	return s.repo.Delete(ctx, id)
}
