// internal/core/listview/paginate.go
package listview

import (
	"fmt"
	"slices"

	"github.com/ammerola/meta4-erp/internal/core/domain"
)

// DefaultPageSize is used when a schema does not set one
const DefaultPageSize = 25

// PageSizes are the selectable page sizes
var PageSizes = []int{10, 25, 50, 100}

// ValidPageSize reports whether size is selectable
func ValidPageSize(size int) bool {
	return slices.Contains(PageSizes, size)
}

// TotalPages is ceil(n/size). An empty collection has zero pages.
func TotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Page is one window of a collection
type Page[R domain.Record] struct {
	Records    []R
	Number     int
	Size       int
	TotalPages int
	// StartIndex and EndIndex bound the half-open window [start, end)
	StartIndex int
	EndIndex   int
}

// HasPrevious reports whether previous and first navigation is enabled
func (p Page[R]) HasPrevious() bool {
	return p.Number > 1
}

// HasNext reports whether next and last navigation is enabled
func (p Page[R]) HasNext() bool {
	return p.Number < p.TotalPages
}

// Paginate windows records. Page 1 of an empty collection is an empty
// window; any other page outside [1, TotalPages] is an error.
func Paginate[R domain.Record](records []R, size, page int) (Page[R], error) {
	if !ValidPageSize(size) {
		return Page[R]{}, fmt.Errorf("%w: %d", domain.ErrInvalidPageSize, size)
	}

	total := TotalPages(len(records), size)
	if page < 1 || page > max(total, 1) {
		return Page[R]{}, fmt.Errorf("%w: page %d of %d", domain.ErrPageOutOfRange, page, total)
	}

	start := (page - 1) * size
	end := min(start+size, len(records))

	return Page[R]{
		Records:    records[start:end],
		Number:     page,
		Size:       size,
		TotalPages: total,
		StartIndex: start,
		EndIndex:   end,
	}, nil
}
