package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"countries-backend/internal/domains/city"
	"countries-backend/internal/domains/country"
	"countries-backend/internal/shared/pagination"
	"countries-backend/internal/shared/result"
)

// MemoryRepository is an insertion-ordered in-memory city store used by the
// service tests. It also satisfies the country memory store's city-store
// hook, so cross-domain behavior (embedded city refs, cascade on country
// delete) can be tested without postgres.
type MemoryRepository struct {
	mu    sync.Mutex
	order []uuid.UUID
	rows  map[uuid.UUID]*city.City
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{rows: make(map[uuid.UUID]*city.City)}
}

func (m *MemoryRepository) GetPaged(_ context.Context, f city.Filter, p pagination.Params) (*pagination.Page[*city.City], error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []*city.City
	for _, id := range m.order {
		if c := m.rows[id]; f.Matches(c) {
			matched = append(matched, c)
		}
	}

	total := len(matched)
	start := p.Offset()
	if start > total {
		start = total
	}
	end := start + p.PageSize
	if end > total {
		end = total
	}

	return &pagination.Page[*city.City]{
		Items:      matched[start:end],
		TotalCount: total,
		Page:       p.Page,
		PageSize:   p.PageSize,
	}, nil
}

func (m *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) result.Result[*city.City] {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.rows[id]
	if !ok {
		return result.Fail[*city.City](result.NotFound(fmt.Sprintf("City with ID %s not found.", id)))
	}
	return result.Ok(c)
}

func (m *MemoryRepository) Add(_ context.Context, c *city.City) result.Result[*city.City] {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rows[c.ID()] = c
	m.order = append(m.order, c.ID())
	return result.Ok(c)
}

func (m *MemoryRepository) Update(_ context.Context, c *city.City) result.Result[*city.City] {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rows[c.ID()]; !ok {
		return result.Fail[*city.City](result.Unexpected("update of a city that was never added"))
	}
	m.rows[c.ID()] = c
	return result.Ok(c)
}

func (m *MemoryRepository) Delete(_ context.Context, id uuid.UUID) result.Result[result.Void] {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rows[id]; !ok {
		return result.Fail[result.Void](result.NotFound(fmt.Sprintf("City with ID %s not found.", id)))
	}
	m.remove(id)
	return result.Done()
}

// RefsForCountry lists a country's cities as embedded refs, in insertion
// order.
func (m *MemoryRepository) RefsForCountry(countryID uuid.UUID) []country.CityRef {
	m.mu.Lock()
	defer m.mu.Unlock()

	var refs []country.CityRef
	for _, id := range m.order {
		if c := m.rows[id]; c.CountryID() == countryID {
			refs = append(refs, country.CityRef{ID: c.ID(), Name: c.Name()})
		}
	}
	return refs
}

// DeleteByCountry removes every city of a country, mirroring the FK's
// ON DELETE CASCADE.
func (m *MemoryRepository) DeleteByCountry(countryID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var doomed []uuid.UUID
	for id, c := range m.rows {
		if c.CountryID() == countryID {
			doomed = append(doomed, id)
		}
	}
	for _, id := range doomed {
		m.remove(id)
	}
}

// remove expects m.mu to be held.
func (m *MemoryRepository) remove(id uuid.UUID) {
	delete(m.rows, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}
