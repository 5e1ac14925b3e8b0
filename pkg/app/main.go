package app

import (
	"github.com/gorilla/sessions"

	"github.com/ghuser/runningevents/pkg/cache"
	"github.com/ghuser/runningevents/pkg/config"
	"github.com/ghuser/runningevents/pkg/database"
	"github.com/ghuser/runningevents/pkg/events"
	"github.com/ghuser/runningevents/pkg/logger"
	"github.com/ghuser/runningevents/pkg/telemetry"
	"github.com/ghuser/runningevents/pkg/workflows"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to every service's route and worker registration during startup.
//
// Logging: app.Logger is backed by a trace-aware handler. Use the context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "running event saved", "running_event_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config         *config.Config
	Db             *database.Database
	Logger         logger.Logger
	EventBus       *events.EventBus
	Redis          *cache.RedisClient        // nil disables the read-through cache
	TemporalClient *workflows.TemporalClient // nil when TEMPORAL_ENABLED=false
	SessionStore   sessions.Store            // nil in worker process
	Metrics        *telemetry.Metrics
}
