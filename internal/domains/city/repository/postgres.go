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

	"countries-backend/internal/domains/city"
	"countries-backend/internal/shared/pagination"
	"countries-backend/internal/shared/result"
	"countries-backend/pkg/cache"
)

const (
	cacheKeyFormat = "city:%s"
	cacheTTL       = 24 * time.Hour
)

// cityRow is the cacheable flat form of a city.
type cityRow struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CountryID uuid.UUID `json:"countryId"`
}

func (r cityRow) toEntity() *city.City {
	return city.Rehydrate(r.ID, r.Name, r.CountryID)
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

// NewPostgresRepository creates the pgx-backed city repository with a
// cache-aside layer over GetByID.
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) city.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

func (r *postgresRepository) GetPaged(ctx context.Context, f city.Filter, p pagination.Params) (*pagination.Page[*city.City], error) {
	var clauses []string
	var args []interface{}
	if f.HasSearch() {
		args = append(args, escapeLike(f.Search))
		clauses = append(clauses, fmt.Sprintf(`name ILIKE '%%' || $%d || '%%' ESCAPE '\'`, len(args)))
	}
	if f.HasCountry() {
		args = append(args, f.CountryID)
		clauses = append(clauses, fmt.Sprintf(`country_id = $%d`, len(args)))
	}
	where := ""
	if len(clauses) > 0 {
		where = "WHERE " + strings.Join(clauses, " AND ")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM cities ` + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count cities: %w", err)
	}

	query := fmt.Sprintf(`
    SELECT id, name, country_id
    FROM cities
    %s
    ORDER BY created_at, id
    LIMIT $%d OFFSET $%d
  `, where, len(args)+1, len(args)+2)
	args = append(args, p.PageSize, p.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	defer rows.Close()

	var items []*city.City
	for rows.Next() {
		var row cityRow
		if err := rows.Scan(&row.ID, &row.Name, &row.CountryID); err != nil {
			return nil, fmt.Errorf("failed to scan city row: %w", err)
		}
		items = append(items, row.toEntity())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating city rows: %w", err)
	}

	return &pagination.Page[*city.City]{
		Items:      items,
		TotalCount: total,
		Page:       p.Page,
		PageSize:   p.PageSize,
	}, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) result.Result[*city.City] {
	key := fmt.Sprintf(cacheKeyFormat, id)

	var cached cityRow
	if found, err := r.cache.Get(ctx, key, &cached); err == nil && found {
		return result.Ok(cached.toEntity())
	}

	var row cityRow
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, country_id FROM cities WHERE id = $1`, id,
	).Scan(&row.ID, &row.Name, &row.CountryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return result.Fail[*city.City](result.NotFound(fmt.Sprintf("City with ID %s not found.", id)))
		}
		return result.Fail[*city.City](result.Unexpected(err.Error()))
	}

	_ = r.cache.Set(ctx, key, row, cacheTTL)

	return result.Ok(row.toEntity())
}

func (r *postgresRepository) Add(ctx context.Context, c *city.City) result.Result[*city.City] {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO cities (id, name, country_id, created_at) VALUES ($1, $2, $3, NOW())`,
		c.ID(), c.Name(), c.CountryID(),
	)
	if err != nil {
		return result.Fail[*city.City](result.Unexpected(err.Error()))
	}

	// The parent country's cached read embeds its city list.
	_ = r.cache.Delete(ctx, fmt.Sprintf("country:%s", c.CountryID()))

	return result.Ok(c)
}

func (r *postgresRepository) Update(ctx context.Context, c *city.City) result.Result[*city.City] {
	// The CTE reads the pre-update row, so prev carries the country the city
	// belonged to before a move.
	var prevCountryID uuid.UUID
	err := r.pool.QueryRow(ctx, `
    WITH prev AS (SELECT country_id FROM cities WHERE id = $3)
    UPDATE cities SET name = $1, country_id = $2 WHERE id = $3
    RETURNING (SELECT country_id FROM prev)
  `, c.Name(), c.CountryID(), c.ID()).Scan(&prevCountryID)
	if err != nil {
		return result.Fail[*city.City](result.Unexpected(err.Error()))
	}

	r.invalidate(ctx, c.ID(), c.CountryID(), prevCountryID)

	return result.Ok(c)
}

// invalidate drops a city's cached read plus the cached reads of every
// country whose embedded city list the mutation touched. On a move that is
// both the old and the new parent.
func (r *postgresRepository) invalidate(ctx context.Context, id, countryID, prevCountryID uuid.UUID) {
	_ = r.cache.Delete(ctx, fmt.Sprintf(cacheKeyFormat, id))
	_ = r.cache.Delete(ctx, fmt.Sprintf("country:%s", countryID))
	if prevCountryID != countryID {
		_ = r.cache.Delete(ctx, fmt.Sprintf("country:%s", prevCountryID))
	}
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) result.Result[result.Void] {
	var countryID uuid.UUID
	err := r.pool.QueryRow(ctx, `DELETE FROM cities WHERE id = $1 RETURNING country_id`, id).Scan(&countryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return result.Fail[result.Void](result.NotFound(fmt.Sprintf("City with ID %s not found.", id)))
		}
		return result.Fail[result.Void](result.Unexpected(err.Error()))
	}

	r.invalidate(ctx, id, countryID, countryID)

	return result.Done()
}
