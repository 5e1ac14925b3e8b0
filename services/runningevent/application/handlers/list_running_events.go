package handlers

import (
	"net/http"

	"github.com/ghuser/runningevents/pkg/errhttp"
	"github.com/ghuser/runningevents/pkg/httpx"
	pkgvalidator "github.com/ghuser/runningevents/pkg/validator"
	appsvcs "github.com/ghuser/runningevents/services/runningevent/application/services"
	"github.com/ghuser/runningevents/services/runningevent/domain/models"
)

const defaultPageSize = 10

// listParams mirrors the accepted query string before it becomes a domain query.
type listParams struct {
	FromDate      *int64 `json:"fromDate"`
	ToDate        *int64 `json:"toDate"`
	Page          int    `json:"page"          validate:"gte=0"`
	PageSize      int    `json:"pageSize"      validate:"gte=1,lte=100"`
	SortBy        string `json:"sortBy"        validate:"omitempty,oneof=id name dateTime location"`
	SortDirection string `json:"sortDirection" validate:"sortdir"`
}

// ListRunningEventsHandler handles GET /running-events requests.
type ListRunningEventsHandler struct {
	svc *appsvcs.Services
}

func NewListRunningEventsHandler(svc *appsvcs.Services) *ListRunningEventsHandler {
	return &ListRunningEventsHandler{svc: svc}
}

// Execute lists running events one page at a time. The date filter applies
// only when both fromDate and toDate are given.
//
//	@Summary		List running events
//	@Tags			running-events
//	@Produce		json
//	@Param			fromDate		query		int		false	"Inclusive lower bound, epoch milliseconds"
//	@Param			toDate			query		int		false	"Inclusive upper bound, epoch milliseconds"
//	@Param			page			query		int		false	"Zero-based page index"	default(0)
//	@Param			pageSize		query		int		false	"Page size (1-100)"		default(10)
//	@Param			sortBy			query		string	false	"Sort field"			Enums(id, name, dateTime, location)	default(dateTime)
//	@Param			sortDirection	query		string	false	"Sort direction"		Enums(ASC, DESC)	default(ASC)
//	@Success		200				{object}	RunningEventPageResponse
//	@Failure		400				{object}	ErrorResponse
//	@Failure		422				{object}	ErrorResponse
//	@Router			/running-events [get]
func (h *ListRunningEventsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !pkgvalidator.ValidateParams(w, params) {
		return
	}

	direction, err := models.ParseSortDirection(params.SortDirection)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.svc.RunningEvent.List(r.Context(), &models.RunningEventQuery{
		FromDate:      params.FromDate,
		ToDate:        params.ToDate,
		Page:          params.Page,
		PageSize:      params.PageSize,
		SortBy:        params.SortBy,
		SortDirection: direction,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toPageResponse(result))
}

func parseListParams(r *http.Request) (*listParams, error) {
	var (
		p   listParams
		err error
	)
	if p.FromDate, err = httpx.QueryInt64(r, "fromDate"); err != nil {
		return nil, err
	}
	if p.ToDate, err = httpx.QueryInt64(r, "toDate"); err != nil {
		return nil, err
	}
	if p.Page, err = httpx.QueryInt(r, "page", 0); err != nil {
		return nil, err
	}
	if p.PageSize, err = httpx.QueryInt(r, "pageSize", defaultPageSize); err != nil {
		return nil, err
	}
	q := r.URL.Query()
	p.SortBy = q.Get("sortBy")
	p.SortDirection = q.Get("sortDirection")
	return &p, nil
}
