package pagination

import (
	"math"
	"strconv"
)

// Pagination carries the list metadata returned alongside every paged
// response.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
	Limit       int   `json:"-"`
	Offset      int   `json:"-"`
}

// Request represents page/limit parameters parsed from a client request.
type Request struct {
	Page  int `json:"page" form:"page"`
	Limit int `json:"limit" form:"limit"`
}

// New creates pagination metadata for a page of a collection of total items.
func New(page, limit int, total int64) *Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	pages := int(math.Ceil(float64(total) / float64(limit)))
	if pages < 1 {
		pages = 1
	}

	return &Pagination{
		CurrentPage: page,
		TotalPages:  pages,
		TotalItems:  total,
		HasNextPage: page < pages,
		HasPrevPage: page > 1,
		Limit:       limit,
		Offset:      (page - 1) * limit,
	}
}

// FromRequest parses page and limit query values, clamping them to sane
// bounds.
func FromRequest(pageStr, limitStr string) *Request {
	page, _ := strconv.Atoi(pageStr)
	limit, _ := strconv.Atoi(limitStr)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	return &Request{
		Page:  page,
		Limit: limit,
	}
}

// GetOffset returns the offset for database queries
func (p *Pagination) GetOffset() int {
	return p.Offset
}

// GetLimit returns the limit for database queries
func (p *Pagination) GetLimit() int {
	return p.Limit
}
