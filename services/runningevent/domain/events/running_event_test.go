package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/runningevents/services/runningevent/domain/events"
)

func TestRunningEventCreatedEvent_JSONFieldNames(t *testing.T) {
	evt := events.RunningEventCreatedEvent{
		EventID:        uuid.New(),
		Version:        1,
		RunningEventID: 42,
		Name:           "Harbour 10K",
		DateTime:       1_900_000_000_000,
		Location:       "Hamburg",
		OccurredAt:     time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "running_event_id", "name", "date_time", "location", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
}

func TestRunningEventDeletedEvent_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(events.RunningEventDeletedEvent{EventID: uuid.New(), Version: 1, RunningEventID: 3})
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}
	for _, field := range []string{"event_id", "version", "running_event_id", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
}

func TestTopics_Values(t *testing.T) {
	if events.TopicRunningEventCreated != "running_event.created" {
		t.Errorf("unexpected created topic %q", events.TopicRunningEventCreated)
	}
	if events.TopicRunningEventDeleted != "running_event.deleted" {
		t.Errorf("unexpected deleted topic %q", events.TopicRunningEventDeleted)
	}
}
