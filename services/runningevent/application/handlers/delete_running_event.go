package handlers

import (
	"net/http"

	"github.com/ghuser/runningevents/pkg/errhttp"
	"github.com/ghuser/runningevents/pkg/httpx"
	appsvcs "github.com/ghuser/runningevents/services/runningevent/application/services"
)

// DeleteRunningEventHandler handles DELETE /running-events/{id} requests.
type DeleteRunningEventHandler struct {
	svc *appsvcs.Services
}

func NewDeleteRunningEventHandler(svc *appsvcs.Services) *DeleteRunningEventHandler {
	return &DeleteRunningEventHandler{svc: svc}
}

// Execute removes a running event.
//
//	@Summary		Delete running event
//	@Tags			running-events
//	@Param			id	path	int	true	"Running event ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/running-events/{id} [delete]
func (h *DeleteRunningEventHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.RunningEvent.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.NoContent(w)
}
