// Package services contains stateless domain services for the running event bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/ghuser/runningevents/services/runningevent/domain/models"
)

// MaxPageSize caps the number of events a single listing page may return.
const MaxPageSize = 100

// ValidateName enforces business rules for free-text fields beyond the length
// limits checked by models.NewRunningEvent.
//
// Business rules:
//   - No leading or trailing whitespace
//   - No control characters (Unicode category Cc)
//   - No consecutive spaces
//   - Must not be only whitespace characters
func ValidateName(field, s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%s must not be only whitespace", field)
	}

	if s != strings.TrimSpace(s) {
		return fmt.Errorf("%s must not have leading or trailing whitespace", field)
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("%s must not contain control characters", field)
		}
	}

	if strings.Contains(s, "  ") {
		return fmt.Errorf("%s must not contain consecutive spaces", field)
	}

	return nil
}

// ValidateRunningEventForCreation checks a constructed but unsaved event before
// it is persisted. Events must be scheduled after now.
func ValidateRunningEventForCreation(event *models.RunningEvent, now time.Time) error {
	if event == nil {
		return fmt.Errorf("running event cannot be nil")
	}

	if event.IsPersisted() {
		return fmt.Errorf("id must not be set on a new running event")
	}

	if err := ValidateName("name", event.Name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	if err := ValidateName("location", event.Location); err != nil {
		return fmt.Errorf("invalid location: %w", err)
	}

	if !event.Time().After(now) {
		return fmt.Errorf("date time must be in the future")
	}

	return nil
}

// ValidateQuery checks paging bounds and the ordering of the date range.
func ValidateQuery(q *models.RunningEventQuery) error {
	if q == nil {
		return fmt.Errorf("query cannot be nil")
	}
	if q.Page < 0 {
		return fmt.Errorf("page must not be negative")
	}
	if q.PageSize < 1 || q.PageSize > MaxPageSize {
		return fmt.Errorf("page size must be between 1 and %d", MaxPageSize)
	}
	if q.Page > math.MaxInt32/q.PageSize {
		return fmt.Errorf("page %d is out of range for page size %d", q.Page, q.PageSize)
	}
	if q.HasDateRange() && *q.FromDate > *q.ToDate {
		return fmt.Errorf("fromDate must not be after toDate")
	}
	switch q.SortDirection {
	case models.SortAsc, models.SortDesc:
	default:
		return fmt.Errorf("unknown sort direction %q", q.SortDirection)
	}
	return nil
}
