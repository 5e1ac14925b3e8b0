package handlers

import (
	"net/http"

	"github.com/ghuser/runningevents/pkg/errhttp"
	"github.com/ghuser/runningevents/pkg/httpx"
	appsvcs "github.com/ghuser/runningevents/services/runningevent/application/services"
)

// GetRunningEventHandler handles GET /running-events/{id} requests.
type GetRunningEventHandler struct {
	svc *appsvcs.Services
}

func NewGetRunningEventHandler(svc *appsvcs.Services) *GetRunningEventHandler {
	return &GetRunningEventHandler{svc: svc}
}

// Execute returns a single running event.
//
//	@Summary		Get running event
//	@Tags			running-events
//	@Produce		json
//	@Param			id	path		int	true	"Running event ID"
//	@Success		200	{object}	RunningEventResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/running-events/{id} [get]
func (h *GetRunningEventHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	event, err := h.svc.RunningEvent.Get(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toResponse(event))
}
