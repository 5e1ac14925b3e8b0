package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	// TopicRunningEventCreated is the Watermill topic published when a running event is created.
	TopicRunningEventCreated = "running_event.created"

	// TopicRunningEventDeleted is the Watermill topic published when a running event is deleted.
	TopicRunningEventDeleted = "running_event.deleted"
)

// RunningEventCreatedEvent is published after a new running event is persisted.
type RunningEventCreatedEvent struct {
	EventID        uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version        int       `json:"version"`  // Schema version; increment on breaking changes
	RunningEventID int64     `json:"running_event_id"`
	Name           string    `json:"name"`
	DateTime       int64     `json:"date_time"`
	Location       string    `json:"location"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// RunningEventDeletedEvent is published after a running event is removed.
type RunningEventDeletedEvent struct {
	EventID        uuid.UUID `json:"event_id"`
	Version        int       `json:"version"`
	RunningEventID int64     `json:"running_event_id"`
	OccurredAt     time.Time `json:"occurred_at"`
}
