package ticktick

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a non-2xx response from the TickTick API.
type APIError struct {
	// Op is the operation that failed (e.g., "listProjects", "getTask")
	Op string

	// StatusCode is the HTTP status code returned by the API
	StatusCode int

	// Body is the response body, truncated for logging
	Body string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("ticktick %s: status %d: %s", e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("ticktick %s: status %d", e.Op, e.StatusCode)
}

// IsNotFound reports whether err is an APIError with a 404 status.
// Callers use this to translate upstream misses into their own
// not-found conditions instead of surfacing a raw transport error.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
