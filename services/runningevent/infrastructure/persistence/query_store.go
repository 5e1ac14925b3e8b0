package persistence

import (
	"context"

	"github.com/ghuser/runningevents/services/runningevent/domain/models"
)

// Sort names the field and direction a page is ordered by.
// Field uses the domain field name ("dateTime", "name", ...); stores translate it.
type Sort struct {
	Field     string
	Direction models.SortDirection
}

// PageRequest is a zero-based page index, a page size and an ordering.
type PageRequest struct {
	Page int
	Size int
	Sort Sort
}

// Offset returns the number of rows preceding the requested page.
func (p PageRequest) Offset() int {
	if p.Page <= 0 {
		return 0
	}
	return p.Page * p.Size
}

// Page is one slice of stored records plus the total count across all pages.
type Page[T any] struct {
	Items []T
	Total int64
}

// QueryStore is the data-access collaborator behind RunningEventRepository.
// DeleteByID may assume the caller has checked existence first.
type QueryStore interface {
	FindByID(ctx context.Context, id int64) (*RunningEventEntity, bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
	Save(ctx context.Context, entity *RunningEventEntity) (*RunningEventEntity, error)
	FindAll(ctx context.Context, page PageRequest) (Page[*RunningEventEntity], error)
	FindByDateTimeBetween(ctx context.Context, from, to int64, page PageRequest) (Page[*RunningEventEntity], error)
}
