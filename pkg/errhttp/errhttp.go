// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/runningevents/pkg/httpx"
	rdomain "github.com/ghuser/runningevents/services/runningevent/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors, whose
// message is replaced with the status text.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status))
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, rdomain.ErrRunningEventNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, rdomain.ErrRunningEventAlreadyExists):
		return http.StatusConflict // 409
	case errors.Is(err, rdomain.ErrInvalidArgument):
		return http.StatusBadRequest // 400
	case errors.Is(err, rdomain.ErrInvalidRunningEvent),
		errors.Is(err, rdomain.ErrInvalidQuery):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}
