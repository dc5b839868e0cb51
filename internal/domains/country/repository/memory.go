package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"countries-backend/internal/domains/country"
	"countries-backend/internal/shared/pagination"
	"countries-backend/internal/shared/result"
)

// cityStore is the slice of the city store the country store needs: listing
// a country's cities for reads and cascading deletes. The city memory
// repository implements it.
type cityStore interface {
	RefsForCountry(countryID uuid.UUID) []country.CityRef
	DeleteByCountry(countryID uuid.UUID)
}

// MemoryRepository is an insertion-ordered in-memory country store. It backs
// service and pagination tests and mirrors the postgres repository's
// contract, including the FK cascade on delete.
type MemoryRepository struct {
	mu     sync.Mutex
	order  []uuid.UUID
	rows   map[uuid.UUID]*country.Country
	cities cityStore
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{rows: make(map[uuid.UUID]*country.Country)}
}

// SetCityStore links the city store so reads include city refs and deletes
// cascade, the way the postgres FK does.
func (m *MemoryRepository) SetCityStore(s cityStore) {
	m.cities = s
}

func (m *MemoryRepository) GetPaged(_ context.Context, f country.Filter, p pagination.Params) (*pagination.Page[*country.Country], error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []*country.Country
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

	return &pagination.Page[*country.Country]{
		Items:      matched[start:end],
		TotalCount: total,
		Page:       p.Page,
		PageSize:   p.PageSize,
	}, nil
}

func (m *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) result.Result[*country.Country] {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.rows[id]
	if !ok {
		return result.Fail[*country.Country](result.NotFound(fmt.Sprintf("Country with ID %s not found.", id)))
	}

	var refs []country.CityRef
	if m.cities != nil {
		refs = m.cities.RefsForCountry(id)
	}
	return result.Ok(country.Rehydrate(c.ID(), c.Name(), c.Code(), refs))
}

func (m *MemoryRepository) Add(_ context.Context, c *country.Country) result.Result[*country.Country] {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rows[c.ID()] = c
	m.order = append(m.order, c.ID())
	return result.Ok(c)
}

func (m *MemoryRepository) Update(_ context.Context, c *country.Country) result.Result[*country.Country] {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rows[c.ID()]; !ok {
		return result.Fail[*country.Country](result.Unexpected("update of a country that was never added"))
	}
	m.rows[c.ID()] = c
	return result.Ok(c)
}

func (m *MemoryRepository) Delete(_ context.Context, id uuid.UUID) result.Result[result.Void] {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rows[id]; !ok {
		return result.Fail[result.Void](result.NotFound(fmt.Sprintf("Country with ID %s not found.", id)))
	}
	delete(m.rows, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	if m.cities != nil {
		m.cities.DeleteByCountry(id)
	}
	return result.Done()
}
