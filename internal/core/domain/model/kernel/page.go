package kernel

import "foodcourt/internal/pkg/errs"

const (
	// DefaultPageSize is used by adapters when the caller does not ask for a size.
	DefaultPageSize = 10
	// MaxPageSize bounds a single page.
	MaxPageSize = 100
)

// Page selects a zero-based page of a listing.
type Page struct {
	number int
	size   int
}

// NewPage validates a page request: number >= 0 and 1 <= size <= MaxPageSize.
func NewPage(number, size int) (Page, error) {
	if number < 0 {
		return Page{}, errs.NewValueIsOutOfRangeError("page", number, 0, "unbounded")
	}
	if size < 1 || size > MaxPageSize {
		return Page{}, errs.NewValueIsOutOfRangeError("size", size, 1, MaxPageSize)
	}
	return Page{number: number, size: size}, nil
}

func (p Page) Number() int {
	return p.number
}

func (p Page) Size() int {
	return p.size
}

// Offset is the number of rows to skip.
func (p Page) Offset() int {
	return p.number * p.size
}

// PageResult is one page of a listing plus the total number of matching rows.
type PageResult[T any] struct {
	Items      []T
	Page       int
	Size       int
	TotalItems int64
}

// NewPageResult builds a result for the given page.
func NewPageResult[T any](items []T, page Page, total int64) PageResult[T] {
	if items == nil {
		items = make([]T, 0)
	}
	return PageResult[T]{Items: items, Page: page.number, Size: page.size, TotalItems: total}
}

// TotalPages rounds TotalItems up to whole pages.
func (r PageResult[T]) TotalPages() int {
	if r.Size == 0 {
		return 0
	}
	return int((r.TotalItems + int64(r.Size) - 1) / int64(r.Size))
}

// MapPageResult converts the items of a page, keeping its paging metadata.
func MapPageResult[T, R any](in PageResult[T], fn func(T) R) PageResult[R] {
	out := make([]R, 0, len(in.Items))
	for _, item := range in.Items {
		out = append(out, fn(item))
	}
	return PageResult[R]{Items: out, Page: in.Page, Size: in.Size, TotalItems: in.TotalItems}
}
