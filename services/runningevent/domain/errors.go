package domain

import "errors"

// Sentinel errors for the running event domain. Use errors.Is() to check these.
var (
	// ErrInvalidArgument indicates a required argument (event, id or query) was absent.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrRunningEventNotFound indicates the requested running event does not exist.
	ErrRunningEventNotFound = errors.New("running event not found")

	// ErrRunningEventAlreadyExists indicates a unique constraint was violated on save.
	ErrRunningEventAlreadyExists = errors.New("running event already exists")

	// ErrInvalidRunningEvent indicates the event violates domain constraints.
	ErrInvalidRunningEvent = errors.New("invalid running event")

	// ErrInvalidQuery indicates a malformed listing query.
	ErrInvalidQuery = errors.New("invalid running event query")
)
