// Package views computes the filtered and paginated projections the console
// renders. Every function is pure and leaves its input untouched.
package views

import (
	"strings"

	appErrors "github.com/clothingmenvy-dot/menvy-client/internal/errors"
)

const DefaultPageSize = 10

// Field extracts one searchable text value from an item.
type Field[T any] func(T) string

// Matcher is an exact-match filter; an empty Want disables it.
type Matcher[T any] struct {
	Field Field[T]
	Want  string
}

// Filter keeps items where any field contains term, case-insensitively, and
// every active matcher equals its value exactly. With an empty term and no
// active matchers the input is returned as a copy.
func Filter[T any](items []T, term string, fields []Field[T], matchers ...Matcher[T]) []T {
	needle := strings.ToLower(strings.TrimSpace(term))

	out := make([]T, 0, len(items))
	for _, item := range items {
		if !matchesAll(item, matchers) {
			continue
		}
		if needle != "" && !containsAny(item, needle, fields) {
			continue
		}
		out = append(out, item)
	}

	return out
}

func containsAny[T any](item T, needle string, fields []Field[T]) bool {
	if len(fields) == 0 {
		return true
	}

	for _, field := range fields {
		if strings.Contains(strings.ToLower(field(item)), needle) {
			return true
		}
	}

	return false
}

func matchesAll[T any](item T, matchers []Matcher[T]) bool {
	for _, m := range matchers {
		if m.Want != "" && m.Field(item) != m.Want {
			return false
		}
	}

	return true
}

type Page[T any] struct {
	Items     []T `json:"items"`
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
	Filtered  int `json:"filtered"`
}

// PageCount is ceil(n / size), computed without overflowing for huge sizes.
func PageCount(n, size int) int {
	if size < 1 || n <= 0 {
		return 0
	}

	return (n-1)/size + 1
}

// Paginate returns items[(page-1)*size : page*size]. A page past the last one
// yields an empty page; page or size below 1 is rejected.
func Paginate[T any](items []T, size, page int) (Page[T], error) {
	if size < 1 {
		return Page[T]{}, appErrors.AddValidationError("pageSize", "must be at least 1")
	}
	if page < 1 {
		return Page[T]{}, appErrors.AddValidationError("page", "must be at least 1")
	}

	result := Page[T]{
		Items:     []T{},
		Page:      page,
		PageSize:  size,
		PageCount: PageCount(len(items), size),
		Total:     len(items),
		Filtered:  len(items),
	}

	// page and size come from the query string; compare before multiplying
	// so neither can wrap around.
	if len(items) == 0 || page-1 > (len(items)-1)/size {
		return result, nil
	}

	start := (page - 1) * size
	end := start + min(size, len(items)-start)
	result.Items = append(result.Items, items[start:end]...)

	return result, nil
}

// ClampPage moves page into [1, pageCount], or 1 when there are no pages.
func ClampPage(page, n, size int) int {
	last := PageCount(n, size)
	if page > last {
		page = last
	}

	return max(page, 1)
}

// Query filters items and returns the requested page of the result. Total
// counts the unfiltered collection.
func Query[T any](items []T, term string, fields []Field[T], size, page int, matchers ...Matcher[T]) (Page[T], error) {
	result, err := Paginate(Filter(items, term, fields, matchers...), size, page)
	if err != nil {
		return result, err
	}

	result.Total = len(items)

	return result, nil
}
