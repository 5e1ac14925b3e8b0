package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/runningevents/pkg/errhttp"
	"github.com/ghuser/runningevents/pkg/httpx"
	pkgvalidator "github.com/ghuser/runningevents/pkg/validator"
	appsvcs "github.com/ghuser/runningevents/services/runningevent/application/services"
)

// PostRunningEventHandler handles POST /running-events requests.
type PostRunningEventHandler struct {
	svc *appsvcs.Services
}

// NewPostRunningEventHandler returns a PostRunningEventHandler backed by the given services.
func NewPostRunningEventHandler(svc *appsvcs.Services) *PostRunningEventHandler {
	return &PostRunningEventHandler{svc: svc}
}

// Execute creates a new running event.
//
//	@Summary		Create running event
//	@Description	Schedules a new running event. dateTime is epoch milliseconds and must lie in the future.
//	@Tags			running-events
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateRunningEventRequest	true	"Running event creation request"
//	@Success		201		{object}	RunningEventResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/running-events [post]
func (h *PostRunningEventHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateRunningEventRequest](w, r)
	if !ok {
		return
	}

	event, err := h.svc.RunningEvent.Create(r.Context(), req.Name, req.DateTime, req.Location)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.Created(w, "/api/running-events/"+formatID(event.ID), toResponse(event))
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
