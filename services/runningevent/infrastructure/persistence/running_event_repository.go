package persistence

import (
	"context"
	"fmt"

	"github.com/ghuser/runningevents/pkg/logger"
	rdomain "github.com/ghuser/runningevents/services/runningevent/domain"
	"github.com/ghuser/runningevents/services/runningevent/domain/models"
)

// RunningEventRepository implements repositories.RunningEventRepository by
// validating arguments and delegating to a QueryStore through a Mapper.
type RunningEventRepository struct {
	store  QueryStore
	mapper Mapper
	log    logger.Logger
}

// NewRunningEventRepository returns a repository backed by the given store and mapper.
func NewRunningEventRepository(store QueryStore, mapper Mapper, log logger.Logger) *RunningEventRepository {
	return &RunningEventRepository{store: store, mapper: mapper, log: log}
}

// Save persists the event and returns the stored copy with its assigned ID.
func (r *RunningEventRepository) Save(ctx context.Context, event *models.RunningEvent) (*models.RunningEvent, error) {
	if event == nil {
		return nil, fmt.Errorf("%w: running event must not be nil", rdomain.ErrInvalidArgument)
	}

	saved, err := r.store.Save(ctx, r.mapper.ToEntity(event))
	if err != nil {
		return nil, fmt.Errorf("save running event: %w", err)
	}

	r.log.DebugContext(ctx, "running event saved", "running_event_id", saved.ID)
	return r.mapper.ToDomain(saved), nil
}

// FindByID returns (event, true, nil) when found and (nil, false, nil) on a miss.
func (r *RunningEventRepository) FindByID(ctx context.Context, id int64) (*models.RunningEvent, bool, error) {
	if id == 0 {
		return nil, false, fmt.Errorf("%w: id must not be empty", rdomain.ErrInvalidArgument)
	}

	entity, found, err := r.store.FindByID(ctx, id)
	if err != nil {
		return nil, false, fmt.Errorf("find running event: %w", err)
	}
	if !found {
		return nil, false, nil
	}
	return r.mapper.ToDomain(entity), true, nil
}

// FindAll lists one page of events. The date-range listing is used only when
// both FromDate and ToDate are set.
func (r *RunningEventRepository) FindAll(ctx context.Context, query *models.RunningEventQuery) (*models.PaginatedResult[*models.RunningEvent], error) {
	if query == nil {
		return nil, fmt.Errorf("%w: query must not be nil", rdomain.ErrInvalidArgument)
	}

	pageReq := PageRequest{
		Page: query.Page,
		Size: query.PageSize,
		Sort: Sort{
			Field:     query.ResolvedSortBy(),
			Direction: query.SortDirection,
		},
	}

	var (
		page Page[*RunningEventEntity]
		err  error
	)
	if query.HasDateRange() {
		page, err = r.store.FindByDateTimeBetween(ctx, *query.FromDate, *query.ToDate, pageReq)
	} else {
		page, err = r.store.FindAll(ctx, pageReq)
	}
	if err != nil {
		return nil, fmt.Errorf("list running events: %w", err)
	}

	items := make([]*models.RunningEvent, len(page.Items))
	for i, entity := range page.Items {
		items[i] = r.mapper.ToDomain(entity)
	}

	return &models.PaginatedResult[*models.RunningEvent]{
		Items:      items,
		TotalItems: page.Total,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}, nil
}

// DeleteByID deletes the event if it exists. It returns false, without issuing
// a delete, when there is nothing to remove.
func (r *RunningEventRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	if id == 0 {
		return false, fmt.Errorf("%w: id must not be empty", rdomain.ErrInvalidArgument)
	}

	exists, err := r.store.ExistsByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("check running event: %w", err)
	}
	if !exists {
		return false, nil
	}

	if err := r.store.DeleteByID(ctx, id); err != nil {
		return false, fmt.Errorf("delete running event: %w", err)
	}

	r.log.DebugContext(ctx, "running event deleted", "running_event_id", id)
	return true, nil
}

// ExistsByID reports whether an event with the given ID exists.
func (r *RunningEventRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	if id == 0 {
		return false, fmt.Errorf("%w: id must not be empty", rdomain.ErrInvalidArgument)
	}

	exists, err := r.store.ExistsByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("check running event: %w", err)
	}
	return exists, nil
}
