package github

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for API failures. HTTP status errors unwrap to one of
// these where a classification exists, so callers can use errors.Is without
// inspecting status codes.
var (
	// ErrNetwork is returned for transport-level failures (DNS, refused
	// connections, timeouts).
	ErrNetwork = errors.New("network error")

	// ErrNotFound is returned for 404 and 409 responses. GitHub answers 409
	// for repositories that exist but have no commit history yet.
	ErrNotFound = errors.New("not found")

	// ErrRateLimited is returned for 403 responses from unauthenticated
	// rate limiting.
	ErrRateLimited = errors.New("rate limited")
)

// HTTPError is a non-2xx API response.
type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Status)
}

// Unwrap maps well-known statuses to their sentinel class.
func (e *HTTPError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound, http.StatusConflict:
		return ErrNotFound
	case http.StatusForbidden:
		return ErrRateLimited
	}
	return nil
}
