package pagination

import "encoding/json"

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Params is a normalized page request. Build one with Normalize; a
// zero-valued Params is not safe to use directly.
type Params struct {
	Page     int
	PageSize int
}

// Normalize clamps raw query values into the supported range:
// page >= 1, 1 <= pageSize <= 100. Out-of-range inputs are clamped to the
// nearest bound; defaulting of absent query parameters happens at the
// handler layer.
func Normalize(page, pageSize int) Params {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return Params{Page: page, PageSize: pageSize}
}

// Offset returns the number of rows to skip for this page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Page is one page of a filtered listing plus the total match count across
// all pages. len(Items) is at most PageSize and TotalCount >= len(Items).
type Page[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
}

// TotalPages derives the page count; 0 when there are no matches.
func (p Page[T]) TotalPages() int {
	if p.PageSize < 1 {
		return 0
	}
	return (p.TotalCount + p.PageSize - 1) / p.PageSize
}

// MarshalJSON includes the derived totalPages and renders an empty page as
// an empty array rather than null.
func (p Page[T]) MarshalJSON() ([]byte, error) {
	items := p.Items
	if items == nil {
		items = []T{}
	}
	return json.Marshal(struct {
		Items      []T `json:"items"`
		TotalCount int `json:"totalCount"`
		Page       int `json:"page"`
		PageSize   int `json:"pageSize"`
		TotalPages int `json:"totalPages"`
	}{items, p.TotalCount, p.Page, p.PageSize, p.TotalPages()})
}

// MapPage converts a page of entities into a page of responses, keeping the
// paging metadata intact.
func MapPage[T, U any](p *Page[T], fn func(T) U) *Page[U] {
	items := make([]U, len(p.Items))
	for i, it := range p.Items {
		items[i] = fn(it)
	}
	return &Page[U]{
		Items:      items,
		TotalCount: p.TotalCount,
		Page:       p.Page,
		PageSize:   p.PageSize,
	}
}
