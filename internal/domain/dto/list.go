package dto

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ListQuery is the uniform search and pagination request of every listing endpoint.
// Filters hold raw exact-match values keyed by query parameter; stores ignore
// keys their resource does not filter on.
type ListQuery struct {
	Search    string
	Tags      []string
	CreatedBy string
	Filters   map[string]string
	Page      int
	Limit     int
	SortBy    string
	SortOrder SortOrder
}

// Normalize applies pagination defaults and bounds.
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	if q.SortOrder != SortAsc {
		q.SortOrder = SortDesc
	}
}

// Skip is the number of documents before the requested page.
func (q ListQuery) Skip() int64 {
	return int64(q.Page-1) * int64(q.Limit)
}

type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
	TotalCount int64 `json:"totalCount"`
}

func NewPage[T any](items []T, q ListQuery, total int64) *Page[T] {
	if items == nil {
		items = []T{}
	}

	return &Page[T]{
		Items:      items,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: TotalPages(total, q.Limit),
		TotalCount: total,
	}
}

// TotalPages returns ceil(total / limit).
func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}

	return int(math.Ceil(float64(total) / float64(limit)))
}
