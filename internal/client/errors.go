// ABOUTME: Error taxonomy for the library API client
// ABOUTME: Sentinel errors plus APIError mapping HTTP status codes onto them

package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotAuthenticated means a token was required but none is stored
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrAccessDenied means the session is valid but lacks the required role
	ErrAccessDenied = errors.New("access denied")
	// ErrUnauthorized is a 401 from the backend
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is a 403 from the backend
	ErrForbidden = errors.New("forbidden")
	// ErrValidation is a form-level error caught locally or a 400/422 from the backend
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is a 404 from the backend or a missing item
	ErrNotFound = errors.New("not found")
	// ErrServer is a 5xx from the backend
	ErrServer = errors.New("server error")
	// ErrNetwork is a transport failure: refused, canceled, or timed out
	ErrNetwork = errors.New("network error")
	// ErrInvalidResponse means the backend answered with a body we cannot use
	ErrInvalidResponse = errors.New("invalid response from backend")
)

// APIError is a non-2xx response from the backend
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend error: %s", e.Message)
}

// Is lets errors.Is match an APIError against the sentinel for its status
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case ErrValidation:
		return e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusUnprocessableEntity
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrServer:
		return e.StatusCode >= 500
	}
	return false
}

// IsAuthFailure reports whether err is a 401 or 403 from the backend
func IsAuthFailure(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrForbidden)
}

// Validationf returns an ErrValidation carrying a user-facing message
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
