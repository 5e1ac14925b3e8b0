package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/ghuser/runningevents"

// Metrics holds the domain counters recorded by the running-event service.
type Metrics struct {
	created     metric.Int64Counter
	deleted     metric.Int64Counter
	cacheLookup metric.Int64Counter
}

// NewMetrics registers the running-event instruments on mp. Pass
// otel.GetMeterProvider() after Setup so they are exported through /metrics.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(meterName)

	created, err := meter.Int64Counter("running_events_created_total",
		metric.WithDescription("Running events persisted through the API"))
	if err != nil {
		return nil, fmt.Errorf("created counter: %w", err)
	}
	deleted, err := meter.Int64Counter("running_events_deleted_total",
		metric.WithDescription("Running events removed by the API or the purge workflow"))
	if err != nil {
		return nil, fmt.Errorf("deleted counter: %w", err)
	}
	lookups, err := meter.Int64Counter("running_event_cache_lookups_total",
		metric.WithDescription("Cache lookups by result (hit, miss, error)"))
	if err != nil {
		return nil, fmt.Errorf("cache counter: %w", err)
	}
	return &Metrics{created: created, deleted: deleted, cacheLookup: lookups}, nil
}

// A nil *Metrics is valid and records nothing.

func (m *Metrics) RecordCreated(ctx context.Context) {
	if m == nil {
		return
	}
	m.created.Add(ctx, 1)
}

func (m *Metrics) RecordDeleted(ctx context.Context, source string) {
	if m == nil {
		return
	}
	m.deleted.Add(ctx, 1, metric.WithAttributes(attribute.String("source", source)))
}

func (m *Metrics) RecordCacheLookup(ctx context.Context, result string) {
	if m == nil {
		return
	}
	m.cacheLookup.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}
