// Package pagination implements the page arithmetic and link building for
// paginated result sets.
package pagination

import (
	"errors"
	"net/url"
	"strconv"
)

// ErrInvalidPerPage is returned when a page size below 1 is requested.
// Callers are expected to validate page size at startup, so hitting this at
// request time indicates a wiring bug.
var ErrInvalidPerPage = errors.New("per-page size must be at least 1")

// State describes one page within a result set. It is derived per request,
// never stored.
type State struct {
	Page    int
	Pages   int
	PerPage int
	HasPrev bool
	HasNext bool
	Prev    int
	Next    int
}

// Compute clamps page into [1, max(1, totalPages)] and derives the
// prev/next navigation state. A negative total counts as zero.
func Compute(page, total, perPage int) (State, error) {
	if perPage < 1 {
		return State{}, ErrInvalidPerPage
	}
	if total < 0 {
		total = 0
	}

	pages := (total + perPage - 1) / perPage

	if page < 1 {
		page = 1
	}
	if maxPage := max(1, pages); page > maxPage {
		page = maxPage
	}

	return State{
		Page:    page,
		Pages:   pages,
		PerPage: perPage,
		HasPrev: page > 1,
		HasNext: page < pages,
		Prev:    max(1, page-1),
		Next:    min(pages, page+1),
	}, nil
}

// Offset returns the row offset of the clamped page.
func (s State) Offset() int {
	return (s.Page - 1) * s.PerPage
}

// BuildQueryString merges overrides into base (override wins on key
// collision) and URL-encodes the result with stable key ordering.
func BuildQueryString(base, overrides map[string]string) string {
	values := url.Values{}
	for k, v := range base {
		values.Set(k, v)
	}
	for k, v := range overrides {
		values.Set(k, v)
	}
	return values.Encode()
}

// PageQuery builds a query string for a pager link, overriding current_page.
func PageQuery(base map[string]string, page int) string {
	return BuildQueryString(base, map[string]string{
		"current_page": strconv.Itoa(page),
	})
}
