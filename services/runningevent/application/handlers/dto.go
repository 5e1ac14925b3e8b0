package handlers

import "github.com/ghuser/runningevents/services/runningevent/domain/models"

// CreateRunningEventRequest is the request body for POST /running-events.
type CreateRunningEventRequest struct {
	Name     string `json:"name"     validate:"required,max=255,trimmed" example:"City Marathon"`
	DateTime int64  `json:"dateTime" validate:"required,gt=0"            example:"1893456000000"`
	Location string `json:"location" validate:"required,max=255,trimmed" example:"Berlin"`
} // @name CreateRunningEventRequest

// RunningEventResponse is the JSON shape of a single running event.
type RunningEventResponse struct {
	ID       int64  `json:"id"       example:"42"`
	Name     string `json:"name"     example:"City Marathon"`
	DateTime int64  `json:"dateTime" example:"1893456000000"`
	Location string `json:"location" example:"Berlin"`
} // @name RunningEventResponse

// RunningEventPageResponse is one page of a running event listing.
type RunningEventPageResponse struct {
	Items      []RunningEventResponse `json:"items"`
	TotalItems int64                  `json:"totalItems" example:"57"`
	Page       int                    `json:"page"       example:"0"`
	PageSize   int                    `json:"pageSize"   example:"10"`
	TotalPages int                    `json:"totalPages" example:"6"`
} // @name RunningEventPageResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"running event not found"`
} // @name ErrorResponse

func toResponse(e *models.RunningEvent) RunningEventResponse {
	return RunningEventResponse{
		ID:       e.ID,
		Name:     e.Name,
		DateTime: e.DateTime,
		Location: e.Location,
	}
}

func toPageResponse(p *models.PaginatedResult[*models.RunningEvent]) RunningEventPageResponse {
	items := make([]RunningEventResponse, len(p.Items))
	for i, e := range p.Items {
		items[i] = toResponse(e)
	}
	return RunningEventPageResponse{
		Items:      items,
		TotalItems: p.TotalItems,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages(),
	}
}
