package repositories

import (
	"context"

	"github.com/ghuser/runningevents/services/runningevent/domain/models"
)

// RunningEventRepository is the persistence interface for the RunningEvent aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// Every method returns domain.ErrInvalidArgument, without touching storage,
// when its required argument is absent (nil event or query, zero id).
type RunningEventRepository interface {
	// Save persists the event and returns it with its store-assigned ID.
	Save(ctx context.Context, event *models.RunningEvent) (*models.RunningEvent, error)

	// FindByID looks up an event. A miss is not an error: it returns (nil, false, nil).
	FindByID(ctx context.Context, id int64) (*models.RunningEvent, bool, error)

	// FindAll returns one page of events, filtered by date range when both
	// bounds of the query are set.
	FindAll(ctx context.Context, query *models.RunningEventQuery) (*models.PaginatedResult[*models.RunningEvent], error)

	// DeleteByID removes the event and reports whether it existed.
	DeleteByID(ctx context.Context, id int64) (bool, error)

	// ExistsByID reports whether an event with the given ID exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
