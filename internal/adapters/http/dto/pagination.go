package dto

import "github.com/memorias-pessoais/memorias-api/internal/ports"

// DefaultLimit is the default number of items per page.
const DefaultLimit = 10

// MaxLimit is the maximum allowed items per page.
const MaxLimit = 100

// PaginationRequest represents limit/skip pagination parameters from the
// query string.
type PaginationRequest struct {
	// Limit is the maximum number of items to return (1-100, default 10).
	Limit int64 `form:"limit" validate:"omitempty,gte=1,lte=100"`

	// Skip is the number of items to skip from the start of the result.
	Skip int64 `form:"skip" validate:"omitempty,gte=0"`
}

// GetLimit returns the limit with defaults applied.
func (p *PaginationRequest) GetLimit() int64 {
	if p.Limit <= 0 {
		return DefaultLimit
	}

	if p.Limit > MaxLimit {
		return MaxLimit
	}

	return p.Limit
}

// ToPage converts the request into a repository page bound.
func (p *PaginationRequest) ToPage() ports.Page {
	skip := p.Skip
	if skip < 0 {
		skip = 0
	}

	return ports.Page{Limit: p.GetLimit(), Skip: skip}
}

// ListResponse wraps a listing with its item count.
type ListResponse[T any] struct {
	// Items is the array of items for this page.
	Items []T `json:"items"`

	// Count is the number of items in this page.
	Count int `json:"count"`
}

// NewListResponse creates a list response. A nil slice serializes as an
// empty array, never null.
func NewListResponse[T any](items []T) *ListResponse[T] {
	if items == nil {
		items = []T{}
	}

	return &ListResponse[T]{Items: items, Count: len(items)}
}
