package access

import (
	"errors"
	"net/http"
)

// Resolver outcomes. Absence of a resource and denial of a present one
// are distinct errors so handlers can keep 404 and 403 apart.
var (
	ErrUnauthenticated  = errors.New("authentication required")
	ErrNotFound         = errors.New("resource not found")
	ErrAccessDenied     = errors.New("access denied")
	ErrInsufficientRole = errors.New("insufficient role for this operation")
	ErrConflict         = errors.New("operation conflicts with existing state")
	ErrExpired          = errors.New("invitation has expired")
	ErrInvalidState     = errors.New("invitation is no longer pending")
)

// StatusCode maps a resolver error to its HTTP status. Unknown errors
// report 500 so callers never leak internals as a client fault.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAccessDenied), errors.Is(err, ErrInsufficientRole):
		return http.StatusForbidden
	case errors.Is(err, ErrConflict), errors.Is(err, ErrExpired), errors.Is(err, ErrInvalidState):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// IsAccessError reports whether err belongs to the resolver taxonomy.
func IsAccessError(err error) bool {
	return StatusCode(err) != http.StatusInternalServerError
}
