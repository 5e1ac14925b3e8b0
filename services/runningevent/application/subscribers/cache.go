// Package subscribers holds the Watermill handlers the worker runs for
// running event domain events.
package subscribers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	pkgcache "github.com/ghuser/runningevents/pkg/cache"
	"github.com/ghuser/runningevents/pkg/logger"
	appsvcs "github.com/ghuser/runningevents/services/runningevent/application/services"
	domainevents "github.com/ghuser/runningevents/services/runningevent/domain/events"
)

// Handler processes one message. Handlers must be idempotent; the EventBus
// retries up to 3x on failure.
type Handler func(context.Context, *message.Message) error

// ExistenceChecker confirms a running event row is still present.
type ExistenceChecker interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// CacheSync keeps the Redis read model in step with created and deleted events.
// Created and deleted topics are consumed independently, so a delete may be
// handled before the create it follows.
type CacheSync struct {
	cache  appsvcs.EventCache
	events ExistenceChecker
	log    logger.Logger
}

func NewCacheSync(cache appsvcs.EventCache, events ExistenceChecker, log logger.Logger) *CacheSync {
	return &CacheSync{cache: cache, events: events, log: log}
}

// Topics maps each subscribed topic to its handler.
func (s *CacheSync) Topics() map[string]Handler {
	return map[string]Handler{
		domainevents.TopicRunningEventCreated: s.HandleCreated,
		domainevents.TopicRunningEventDeleted: s.HandleDeleted,
	}
}

// HandleCreated warms the cache so the first GET is served from Redis. Events
// whose row is already gone are skipped. A cache write failure is logged, not
// retried; a failed existence check is retried.
func (s *CacheSync) HandleCreated(ctx context.Context, msg *message.Message) error {
	var evt domainevents.RunningEventCreatedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return fmt.Errorf("decode %s: %w", domainevents.TopicRunningEventCreated, err)
	}

	exists, err := s.events.ExistsByID(ctx, evt.RunningEventID)
	if err != nil {
		return fmt.Errorf("check running event %d: %w", evt.RunningEventID, err)
	}
	if !exists {
		s.log.InfoContext(ctx, "cache warm skipped, running event deleted", "running_event_id", evt.RunningEventID)
		return nil
	}

	if err := s.cache.Set(ctx, &pkgcache.CachedRunningEvent{
		ID:       evt.RunningEventID,
		Name:     evt.Name,
		DateTime: evt.DateTime,
		Location: evt.Location,
	}); err != nil {
		s.log.WarnContext(ctx, "cache warm failed for running_event.created",
			"running_event_id", evt.RunningEventID, "error", err)
		return nil
	}

	// the delete may have been handled between the check and Set
	if exists, err := s.events.ExistsByID(ctx, evt.RunningEventID); err == nil && !exists {
		if err := s.cache.Delete(ctx, evt.RunningEventID); err != nil {
			return fmt.Errorf("evict running event %d: %w", evt.RunningEventID, err)
		}
		return nil
	}

	s.log.InfoContext(ctx, "cache warmed", "running_event_id", evt.RunningEventID)
	return nil
}

// HandleDeleted evicts the event. Eviction failures are returned so the
// message is retried; a stale entry would otherwise outlive the row.
func (s *CacheSync) HandleDeleted(ctx context.Context, msg *message.Message) error {
	var evt domainevents.RunningEventDeletedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return fmt.Errorf("decode %s: %w", domainevents.TopicRunningEventDeleted, err)
	}

	if err := s.cache.Delete(ctx, evt.RunningEventID); err != nil {
		return fmt.Errorf("evict running event %d: %w", evt.RunningEventID, err)
	}

	s.log.InfoContext(ctx, "cache evicted", "running_event_id", evt.RunningEventID)
	return nil
}
