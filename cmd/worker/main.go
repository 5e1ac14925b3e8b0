package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ghuser/runningevents/pkg/app"
	"github.com/ghuser/runningevents/pkg/cache"
	"github.com/ghuser/runningevents/pkg/config"
	"github.com/ghuser/runningevents/pkg/database"
	"github.com/ghuser/runningevents/pkg/events"
	"github.com/ghuser/runningevents/pkg/logger"
	"github.com/ghuser/runningevents/pkg/telemetry"
	"github.com/ghuser/runningevents/pkg/workflows"
	appsvcs "github.com/ghuser/runningevents/services/runningevent/application/services"
	"github.com/ghuser/runningevents/services/runningevent/application/subscribers"
	purge "github.com/ghuser/runningevents/services/runningevent/application/workflows"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg).With("process", "worker")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tel, err := telemetry.Setup(ctx, cfg, "worker")
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer tel.Shutdown(context.Background()) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg, "worker"); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	a := &app.Application{
		Config:   cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
		Metrics:  tel.Metrics,
	}

	if cfg.TemporalEnabled {
		tc, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, cfg.TemporalTaskQueue, log)
		if err != nil {
			log.Error("failed to initialize temporal client", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer tc.Close()
		a.TemporalClient = tc

		stopPurge, err := startPurgeWorker(ctx, a)
		if err != nil {
			log.Error("failed to start purge worker", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer stopPurge()
	}

	if err := registerSubscribers(ctx, a); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	<-ctx.Done()
	log.Info("shutting down worker...")

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	cacheSync := subscribers.NewCacheSync(cache.NewRunningEventCache(a.Redis), appsvcs.NewRepository(a), a.Logger)

	topics := make([]string, 0, 2)
	for topic, handler := range cacheSync.Topics() {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func() {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}()
		topics = append(topics, topic)
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// startPurgeWorker registers the purge workflow, ensures its schedule exists
// and starts polling. The returned func stops the worker.
func startPurgeWorker(ctx context.Context, a *app.Application) (func(), error) {
	w := a.TemporalClient.NewWorker()
	purge.Register(w, purge.NewPurgeActivities(appsvcs.NewRepository(a), a.Metrics, a.Logger))

	if err := a.TemporalClient.EnsureSchedule(ctx, purge.PurgeSchedule(a.Config.PurgeInterval, a.Config.PurgeRetention)); err != nil {
		return nil, err
	}
	if err := w.Start(); err != nil {
		return nil, err
	}

	a.Logger.Info("purge worker started", "task_queue", a.TemporalClient.TaskQueue, "every", a.Config.PurgeInterval.String())
	return w.Stop, nil
}
