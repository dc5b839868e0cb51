package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"countries-backend/internal/domains/country"
	"countries-backend/internal/shared/pagination"
	"countries-backend/internal/shared/result"
	"countries-backend/pkg/cache"
)

const (
	cacheKeyFormat = "country:%s"
	cacheTTL       = 24 * time.Hour
)

// countryRow is the cacheable flat form of a country.
type countryRow struct {
	ID     uuid.UUID         `json:"id"`
	Name   string            `json:"name"`
	Code   *string           `json:"code"`
	Cities []country.CityRef `json:"cities"`
}

func (r countryRow) toEntity() *country.Country {
	code := ""
	if r.Code != nil {
		code = *r.Code
	}
	return country.Rehydrate(r.ID, r.Name, code, r.Cities)
}

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcard characters in a search term match
// literally; the queries bind it under ESCAPE '\'.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// NewPostgresRepository creates the pgx-backed country repository with a
// cache-aside layer over GetByID.
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) country.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

// GetPaged lists countries matching the filter, ordered by creation time
// then id. The filter's search term is matched case-insensitively against
// name, and against code when one is present.
func (r *postgresRepository) GetPaged(ctx context.Context, f country.Filter, p pagination.Params) (*pagination.Page[*country.Country], error) {
	where := ""
	args := []interface{}{}
	if !f.IsEmpty() {
		where = `WHERE name ILIKE '%' || $1 || '%' ESCAPE '\' OR (code IS NOT NULL AND code ILIKE '%' || $1 || '%' ESCAPE '\')`
		args = append(args, escapeLike(f.Search))
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM countries ` + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count countries: %w", err)
	}

	query := fmt.Sprintf(`
    SELECT id, name, code
    FROM countries
    %s
    ORDER BY created_at, id
    LIMIT $%d OFFSET $%d
  `, where, len(args)+1, len(args)+2)
	args = append(args, p.PageSize, p.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	defer rows.Close()

	var items []*country.Country
	for rows.Next() {
		var row countryRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Code); err != nil {
			return nil, fmt.Errorf("failed to scan country row: %w", err)
		}
		items = append(items, row.toEntity())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating country rows: %w", err)
	}

	return &pagination.Page[*country.Country]{
		Items:      items,
		TotalCount: total,
		Page:       p.Page,
		PageSize:   p.PageSize,
	}, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) result.Result[*country.Country] {
	key := fmt.Sprintf(cacheKeyFormat, id)

	var cached countryRow
	if found, err := r.cache.Get(ctx, key, &cached); err == nil && found {
		return result.Ok(cached.toEntity())
	}

	row := countryRow{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, code FROM countries WHERE id = $1`, id,
	).Scan(&row.ID, &row.Name, &row.Code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return result.Fail[*country.Country](result.NotFound(fmt.Sprintf("Country with ID %s not found.", id)))
		}
		return result.Fail[*country.Country](result.Unexpected(err.Error()))
	}

	cities, err := r.citiesOf(ctx, id)
	if err != nil {
		return result.Fail[*country.Country](result.Unexpected(err.Error()))
	}
	row.Cities = cities

	// Best effort: a cache write failure never fails the read.
	_ = r.cache.Set(ctx, key, row, cacheTTL)

	return result.Ok(row.toEntity())
}

func (r *postgresRepository) Add(ctx context.Context, c *country.Country) result.Result[*country.Country] {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO countries (id, name, code, created_at) VALUES ($1, $2, $3, NOW())`,
		c.ID(), c.Name(), nullable(c.Code()),
	)
	if err != nil {
		return result.Fail[*country.Country](result.Unexpected(err.Error()))
	}
	return result.Ok(c)
}

func (r *postgresRepository) Update(ctx context.Context, c *country.Country) result.Result[*country.Country] {
	_, err := r.pool.Exec(ctx,
		`UPDATE countries SET name = $1, code = $2 WHERE id = $3`,
		c.Name(), nullable(c.Code()), c.ID(),
	)
	if err != nil {
		return result.Fail[*country.Country](result.Unexpected(err.Error()))
	}

	_ = r.cache.Delete(ctx, fmt.Sprintf(cacheKeyFormat, c.ID()))

	return result.Ok(c)
}

// Delete removes the country; the cities FK is declared ON DELETE CASCADE so
// dependent cities go with it.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) result.Result[result.Void] {
	tag, err := r.pool.Exec(ctx, `DELETE FROM countries WHERE id = $1`, id)
	if err != nil {
		return result.Fail[result.Void](result.Unexpected(err.Error()))
	}
	if tag.RowsAffected() == 0 {
		return result.Fail[result.Void](result.NotFound(fmt.Sprintf("Country with ID %s not found.", id)))
	}

	_ = r.cache.Delete(ctx, fmt.Sprintf(cacheKeyFormat, id))
	// Cascaded city rows are gone; drop any of their cached reads too.
	_ = r.cache.DeletePattern(ctx, "city:*")

	return result.Done()
}

func (r *postgresRepository) citiesOf(ctx context.Context, countryID uuid.UUID) ([]country.CityRef, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name FROM cities WHERE country_id = $1 ORDER BY created_at, id`, countryID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list cities of country: %w", err)
	}
	defer rows.Close()

	var refs []country.CityRef
	for rows.Next() {
		var ref country.CityRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, fmt.Errorf("failed to scan city row: %w", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating city rows: %w", err)
	}
	return refs, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
