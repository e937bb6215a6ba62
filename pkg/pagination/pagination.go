package pagination

import "strings"

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 200
)

// Params holds resolved 1-based page parameters.
type Params struct {
	Page     int
	PageSize int
}

// New applies the defaults: a nil or non-positive page becomes DefaultPage
// and a nil or non-positive pageSize becomes DefaultPageSize. The two
// defaults are independent of each other.
func New(page, pageSize *int) Params {
	p := Params{Page: DefaultPage, PageSize: DefaultPageSize}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if pageSize != nil && *pageSize >= 1 {
		p.PageSize = *pageSize
	}
	return p
}

// Offset returns the number of rows skipped before this page. Callers check
// PastEnd first; a page past the end may overflow the product.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageCount returns how many pages of this size hold total rows.
func (p Params) PageCount(total int64) int64 {
	if total <= 0 || p.PageSize <= 0 {
		return 0
	}
	return (total-1)/int64(p.PageSize) + 1
}

// PastEnd reports whether this page starts at or beyond the last of total
// rows. It compares page numbers, never offsets.
func (p Params) PastEnd(total int64) bool {
	return int64(p.Page) > p.PageCount(total)
}

// Limit returns the maximum number of rows on this page.
func (p Params) Limit() int {
	return p.PageSize
}

// SortOrder is the direction of a single-key sort.
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

// ParseSortOrder returns Descending for "desc" in any case and Ascending for
// everything else.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(s), "desc") {
		return Descending
	}
	return Ascending
}

// IsSortOrder reports whether s is empty, "asc" or "desc", ignoring case.
func IsSortOrder(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "desc":
		return true
	}
	return false
}

func (o SortOrder) String() string {
	if o == Descending {
		return "desc"
	}
	return "asc"
}

// PagedList is one page of an ordered collection plus the size of the whole
// collection.
type PagedList[T any] struct {
	Items           []T   `json:"items"`
	Page            int   `json:"page"`
	PageSize        int   `json:"pageSize"`
	TotalCount      int64 `json:"totalCount"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

func NewPagedList[T any](items []T, params Params, totalCount int64) *PagedList[T] {
	if items == nil {
		items = []T{}
	}
	return &PagedList[T]{
		Items:           items,
		Page:            params.Page,
		PageSize:        params.PageSize,
		TotalCount:      totalCount,
		HasNextPage:     int64(params.Page) < params.PageCount(totalCount),
		HasPreviousPage: params.Page > 1,
	}
}

// Empty reports whether the underlying collection has no rows at all.
func (l *PagedList[T]) Empty() bool {
	return l.TotalCount == 0
}
