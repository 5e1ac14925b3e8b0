package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/runningevents/pkg/app"
	"github.com/ghuser/runningevents/pkg/auth"
	"github.com/ghuser/runningevents/services/runningevent/application/handlers"
	appsvcs "github.com/ghuser/runningevents/services/runningevent/application/services"
)

// RunningEventRoutes registers running event endpoints on the provided chi router.
// Mutating routes require a session when AUTH_REQUIRED is set.
func RunningEventRoutes(r chi.Router, a *app.Application) {
	var guards []func(http.Handler) http.Handler
	if a.Config != nil && a.Config.AuthRequired && a.SessionStore != nil {
		guards = append(guards, auth.RequireAuth(a.SessionStore, a.Logger))
	}
	Routes(r, appsvcs.New(a), guards...)
}

// Routes mounts the handlers over svcs. guards wrap POST and DELETE only.
func Routes(r chi.Router, svcs *appsvcs.Services, guards ...func(http.Handler) http.Handler) {
	r.Route("/running-events", func(r chi.Router) {
		r.Get("/", handlers.NewListRunningEventsHandler(svcs).Execute)
		r.Get("/{id}", handlers.NewGetRunningEventHandler(svcs).Execute)

		r.Group(func(r chi.Router) {
			r.Use(guards...)
			r.Post("/", handlers.NewPostRunningEventHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteRunningEventHandler(svcs).Execute)
		})
	})
}
