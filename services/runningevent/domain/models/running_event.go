package models

import (
	"fmt"
	"time"
)

const (
	minTextLength = 1
	maxTextLength = 255
)

// RunningEvent is the core aggregate for this bounded context.
// ID is zero until the event has been persisted; the store assigns it on first save.
type RunningEvent struct {
	ID       int64
	Name     string
	DateTime int64 // epoch milliseconds
	Location string
}

// NewRunningEvent constructs an unsaved RunningEvent, enforcing the structural
// constraints on its fields.
func NewRunningEvent(name string, dateTime int64, location string) (*RunningEvent, error) {
	if err := checkLength("name", name); err != nil {
		return nil, err
	}
	if err := checkLength("location", location); err != nil {
		return nil, err
	}
	if dateTime <= 0 {
		return nil, fmt.Errorf("date time must be a positive epoch millisecond value")
	}
	return &RunningEvent{
		Name:     name,
		DateTime: dateTime,
		Location: location,
	}, nil
}

// IsPersisted reports whether the store has assigned an ID.
func (e *RunningEvent) IsPersisted() bool {
	return e.ID != 0
}

// Time returns DateTime as a UTC time.Time.
func (e *RunningEvent) Time() time.Time {
	return time.UnixMilli(e.DateTime).UTC()
}

func checkLength(field, s string) error {
	if len(s) < minTextLength {
		return fmt.Errorf("%s must be at least %d character", field, minTextLength)
	}
	if len(s) > maxTextLength {
		return fmt.Errorf("%s must not exceed %d characters", field, maxTextLength)
	}
	return nil
}
