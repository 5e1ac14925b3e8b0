package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/runningevents/pkg/cache"
	"github.com/ghuser/runningevents/pkg/logger"
	"github.com/ghuser/runningevents/pkg/telemetry"
	rdomain "github.com/ghuser/runningevents/services/runningevent/domain"
	"github.com/ghuser/runningevents/services/runningevent/domain/models"
	"github.com/ghuser/runningevents/services/runningevent/domain/repositories"
	domainsvcs "github.com/ghuser/runningevents/services/runningevent/domain/services"
)

// EventCache is the read-model cache consulted by Get. *pkgcache.RunningEventCache
// satisfies it.
type EventCache interface {
	Get(ctx context.Context, id int64) (*pkgcache.CachedRunningEvent, error)
	Set(ctx context.Context, event *pkgcache.CachedRunningEvent) error
	Delete(ctx context.Context, id int64) error
}

// RunningEventService orchestrates creation, retrieval, listing and removal of
// running events. Event publishing is handled by the store (outbox pattern).
// Reads by ID are served from the cache when one is configured.
type RunningEventService struct {
	repo    repositories.RunningEventRepository
	cache   EventCache
	metrics *telemetry.Metrics
	log     logger.Logger
	now     func() time.Time
}

// NewRunningEventService returns a service over repo. cache and metrics may be nil.
func NewRunningEventService(repo repositories.RunningEventRepository, cache EventCache, metrics *telemetry.Metrics, log logger.Logger) *RunningEventService {
	return &RunningEventService{
		repo:    repo,
		cache:   cache,
		metrics: metrics,
		log:     log,
		now:     time.Now,
	}
}

// Create validates and persists a new event scheduled at dateTime (epoch ms).
func (s *RunningEventService) Create(ctx context.Context, name string, dateTime int64, location string) (*models.RunningEvent, error) {
	event, err := models.NewRunningEvent(name, dateTime, location)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", rdomain.ErrInvalidRunningEvent, err)
	}

	if err := domainsvcs.ValidateRunningEventForCreation(event, s.now()); err != nil {
		return nil, fmt.Errorf("%w: %w", rdomain.ErrInvalidRunningEvent, err)
	}

	saved, err := s.repo.Save(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("create running event: %w", err)
	}

	s.metrics.RecordCreated(ctx)
	s.log.InfoContext(ctx, "running event created", "running_event_id", saved.ID)
	return saved, nil
}

// Get retrieves an event using a read-through cache:
//  1. Check Redis first.
//  2. On a miss (or cache error), ask the repository.
//  3. Warm the cache with the repository result.
//
// Returns ErrRunningEventNotFound when the repository reports no such event.
func (s *RunningEventService) Get(ctx context.Context, id int64) (*models.RunningEvent, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		switch {
		case err == nil:
			s.metrics.RecordCacheLookup(ctx, "hit")
			return fromCached(cached), nil
		case errors.Is(err, redis.Nil):
			s.metrics.RecordCacheLookup(ctx, "miss")
		default:
			s.metrics.RecordCacheLookup(ctx, "error")
			s.log.WarnContext(ctx, "cache read failed, falling back to store", "running_event_id", id, "error", err)
		}
	}

	event, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get running event: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("get running event %d: %w", id, rdomain.ErrRunningEventNotFound)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, toCached(event)); err != nil {
			s.log.WarnContext(ctx, "cache warm failed", "running_event_id", id, "error", err)
		}
	}
	return event, nil
}

// List returns one page of events matching query.
func (s *RunningEventService) List(ctx context.Context, query *models.RunningEventQuery) (*models.PaginatedResult[*models.RunningEvent], error) {
	if err := domainsvcs.ValidateQuery(query); err != nil {
		return nil, fmt.Errorf("%w: %w", rdomain.ErrInvalidQuery, err)
	}

	result, err := s.repo.FindAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list running events: %w", err)
	}
	return result, nil
}

// Delete removes the event with id and evicts it from the cache.
// Returns ErrRunningEventNotFound if no matching event exists.
func (s *RunningEventService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete running event: %w", err)
	}
	if !deleted {
		return fmt.Errorf("delete running event %d: %w", id, rdomain.ErrRunningEventNotFound)
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, id); err != nil {
			s.log.WarnContext(ctx, "cache evict failed", "running_event_id", id, "error", err)
		}
	}

	s.metrics.RecordDeleted(ctx, "api")
	s.log.InfoContext(ctx, "running event deleted", "running_event_id", id)
	return nil
}

func toCached(e *models.RunningEvent) *pkgcache.CachedRunningEvent {
	return &pkgcache.CachedRunningEvent{
		ID:       e.ID,
		Name:     e.Name,
		DateTime: e.DateTime,
		Location: e.Location,
	}
}

func fromCached(c *pkgcache.CachedRunningEvent) *models.RunningEvent {
	return &models.RunningEvent{
		ID:       c.ID,
		Name:     c.Name,
		DateTime: c.DateTime,
		Location: c.Location,
	}
}
