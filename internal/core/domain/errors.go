// internal/core/domain/errors.go
package domain

import "errors"

var (
	// ErrRetrieval is returned when an upstream collection could not be loaded
	ErrRetrieval = errors.New("unable to load records")

	// ErrUnauthorized is returned when the upstream rejects the bearer token
	ErrUnauthorized = errors.New("unauthorized")

	ErrNotFound          = errors.New("not found")
	ErrUnknownView       = errors.New("unknown view")
	ErrUnknownCollection = errors.New("unknown collection")
	ErrUnknownSortKey    = errors.New("unknown sort key")
	ErrUnknownCategory   = errors.New("unknown status category")
	ErrInvalidDirection  = errors.New("invalid sort direction")
	ErrInvalidPageSize   = errors.New("invalid page size")
	ErrPageOutOfRange    = errors.New("page out of range")
	ErrInvalidEvent      = errors.New("invalid event")
	ErrSessionClosed     = errors.New("view session closed")
	ErrTooManySessions   = errors.New("too many view sessions")
	ErrInvalidRequest    = errors.New("invalid request")
)
