package pagination

import "errors"

// DefaultPageSize is the number of items per page of the expense list.
const DefaultPageSize = 10

// ErrInvalidPage is returned for page numbers below 1.
var ErrInvalidPage = errors.New("page must be at least 1")

// Page is one slice of an already filtered list.
type Page[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	TotalCount int
	TotalPages int
}

// TotalPages returns ceil(count / size).
func TotalPages(count, size int) int {
	if count <= 0 || size <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// Paginate returns the 1-based page of items. A page past the end is empty
// but still reports the real totals. A non-positive size uses DefaultPageSize.
func Paginate[T any](items []T, page, size int) (Page[T], error) {
	if page < 1 {
		return Page[T]{}, ErrInvalidPage
	}
	if size <= 0 {
		size = DefaultPageSize
	}

	p := Page[T]{
		Items:      []T{},
		Page:       page,
		PageSize:   size,
		TotalCount: len(items),
		TotalPages: TotalPages(len(items), size),
	}

	start := (page - 1) * size
	if start >= len(items) {
		return p, nil
	}
	end := min(start+size, len(items))
	p.Items = items[start:end]
	return p, nil
}
