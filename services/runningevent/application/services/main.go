package services

import (
	"github.com/ghuser/runningevents/pkg/app"
	"github.com/ghuser/runningevents/pkg/cache"
	"github.com/ghuser/runningevents/services/runningevent/domain/repositories"
	"github.com/ghuser/runningevents/services/runningevent/infrastructure/persistence"
	"github.com/ghuser/runningevents/services/runningevent/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Repository   repositories.RunningEventRepository
	RunningEvent *RunningEventService
}

// New wires all running event application services with infrastructure from
// the Application container.
func New(a *app.Application) *Services {
	repo := NewRepository(a)

	var eventCache EventCache
	if a.Redis != nil {
		eventCache = cache.NewRunningEventCache(a.Redis)
	}

	return &Services{
		Repository:   repo,
		RunningEvent: NewRunningEventService(repo, eventCache, a.Metrics, a.Logger),
	}
}

// NewRepository builds the persistence facade over the PostgreSQL query store.
func NewRepository(a *app.Application) repositories.RunningEventRepository {
	store := postgres.NewStore(a.Db, a.EventBus)
	return persistence.NewRunningEventRepository(store, persistence.NewRunningEventMapper(), a.Logger)
}
