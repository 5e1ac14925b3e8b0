package models

import (
	"fmt"
	"strings"
)

// DefaultSortField is used when a query does not name a sort field.
const DefaultSortField = "dateTime"

// SortDirection orders a listing ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// ParseSortDirection accepts "asc"/"desc" in any case. An empty string yields SortAsc.
func ParseSortDirection(s string) (SortDirection, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(SortAsc):
		return SortAsc, nil
	case string(SortDesc):
		return SortDesc, nil
	default:
		return "", fmt.Errorf("unknown sort direction %q", s)
	}
}

// RunningEventQuery is a filter plus pagination request for listing events.
// FromDate and ToDate are inclusive epoch-millisecond bounds; the range filter
// applies only when both are set. Page is zero-based. An empty SortBy means
// "sort by DefaultSortField".
type RunningEventQuery struct {
	FromDate      *int64
	ToDate        *int64
	Page          int
	PageSize      int
	SortBy        string
	SortDirection SortDirection
}

// HasDateRange reports whether both date bounds are present.
func (q *RunningEventQuery) HasDateRange() bool {
	return q.FromDate != nil && q.ToDate != nil
}

// ResolvedSortBy returns SortBy, falling back to DefaultSortField.
func (q *RunningEventQuery) ResolvedSortBy() string {
	if q.SortBy == "" {
		return DefaultSortField
	}
	return q.SortBy
}
