package models

// PaginatedResult is one page of a listing. TotalItems counts every item across
// all pages as reported by the store at query time; it is best-effort under
// concurrent writes.
type PaginatedResult[T any] struct {
	Items      []T
	TotalItems int64
	Page       int
	PageSize   int
}

// TotalPages returns the number of pages needed for TotalItems.
func (r *PaginatedResult[T]) TotalPages() int {
	if r.PageSize <= 0 {
		return 0
	}
	return int((r.TotalItems + int64(r.PageSize) - 1) / int64(r.PageSize))
}

// HasNext reports whether a page follows the current one.
func (r *PaginatedResult[T]) HasNext() bool {
	return r.Page+1 < r.TotalPages()
}
