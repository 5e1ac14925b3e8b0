package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/ghuser/runningevents/pkg/config"
)

// SetupSentry initializes crash reporting for one process. It is a no-op
// when no DSN is configured.
func SetupSentry(cfg *config.Config, process string) error {
	if cfg.SentryDSN == "" {
		return nil
	}

	sampleRate := 1.0
	if cfg.Environment == config.EnvProduction {
		sampleRate = 0.2
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		Release:          cfg.ServiceName + "@" + cfg.ServiceVersion,
		ServerName:       process,
		TracesSampleRate: sampleRate,
		BeforeSend:       dropCanceled,
	}); err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	return nil
}

// dropCanceled discards events caused by clients going away mid-request.
func dropCanceled(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
	if hint != nil && hint.OriginalException != nil && errors.Is(hint.OriginalException, context.Canceled) {
		return nil
	}
	return event
}

// SentryFlush waits briefly for buffered events before the process exits.
func SentryFlush() {
	sentry.Flush(2 * time.Second)
}

// SentryMiddleware reports panics and re-panics so the outer recovery
// middleware still writes the 500.
func SentryMiddleware() func(http.Handler) http.Handler {
	return sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle
}
