package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/ghuser/runningevents/pkg/auth"
	"github.com/ghuser/runningevents/pkg/logger"
	appsvcs "github.com/ghuser/runningevents/services/runningevent/application/services"
	"github.com/ghuser/runningevents/services/runningevent/domain/models"
)

// emptyRepo reports no events for every lookup.
type emptyRepo struct{}

func (emptyRepo) Save(_ context.Context, e *models.RunningEvent) (*models.RunningEvent, error) {
	saved := *e
	saved.ID = 1
	return &saved, nil
}

func (emptyRepo) FindByID(context.Context, int64) (*models.RunningEvent, bool, error) {
	return nil, false, nil
}

func (emptyRepo) FindAll(_ context.Context, q *models.RunningEventQuery) (*models.PaginatedResult[*models.RunningEvent], error) {
	return &models.PaginatedResult[*models.RunningEvent]{Page: q.Page, PageSize: q.PageSize}, nil
}

func (emptyRepo) DeleteByID(context.Context, int64) (bool, error) { return false, nil }

func (emptyRepo) ExistsByID(context.Context, int64) (bool, error) { return false, nil }

func newTestServices() *appsvcs.Services {
	repo := emptyRepo{}
	return &appsvcs.Services{
		Repository:   repo,
		RunningEvent: appsvcs.NewRunningEventService(repo, nil, nil, logger.Discard()),
	}
}

func TestRoutes_Unguarded(t *testing.T) {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) { Routes(r, newTestServices()) })

	tests := []struct {
		method, target string
		wantStatus     int
	}{
		{http.MethodGet, "/api/running-events", http.StatusOK},
		{http.MethodGet, "/api/running-events/5", http.StatusNotFound},
		{http.MethodDelete, "/api/running-events/5", http.StatusNotFound},
		{http.MethodPut, "/api/running-events/5", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.target, http.NoBody))
			if rr.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rr.Code)
			}
		})
	}
}

func TestRoutes_GuardsOnlyMutatingRoutes(t *testing.T) {
	store := sessions.NewCookieStore(
		[]byte("test-auth-key-must-be-32-bytes!!"),
		[]byte("test-enc-key-must-be-32-bytes!!!"),
	)
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		Routes(r, newTestServices(), auth.RequireAuth(store, logger.Discard()))
	})

	tests := []struct {
		method, target, body string
		wantStatus           int
	}{
		{http.MethodGet, "/api/running-events", "", http.StatusOK},
		{http.MethodGet, "/api/running-events/5", "", http.StatusNotFound},
		{http.MethodPost, "/api/running-events", `{"name":"x","dateTime":1,"location":"y"}`, http.StatusUnauthorized},
		{http.MethodDelete, "/api/running-events/5", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body)))
			if rr.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rr.Code)
			}
		})
	}
}
