// Package errors provides error classification for the client SDK.
// The session guard and callers use it to tell an invalid session apart
// from every other failure.
package errors

import (
	"errors"
	"fmt"
)

// Kind determines how a failed response is treated by the session guard.
type Kind int

const (
	// Other failures are passed through to the caller untouched.
	// Examples: 400 Bad Request, 404 Not Found, 500 Internal Server Error.
	Other Kind = iota

	// SessionInvalid failures terminate the local session before they are
	// handed back to the caller. The backend answers 401 for a missing or
	// expired token and 422 for a malformed one.
	SessionInvalid
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case Other:
		return "Other"
	case SessionInvalid:
		return "SessionInvalid"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// HTTPError is returned for every response with a status code of 400 or above.
type HTTPError struct {
	Kind       Kind
	Method     string
	URL        string
	StatusCode int
	Message    string // value of the backend's {"error": "..."} field, if any
	Body       string // raw response body for debugging
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: HTTP %d", e.Method, e.URL, e.StatusCode)
}

// IsSessionInvalid reports whether err carries a session-invalid HTTP status.
func IsSessionInvalid(err error) bool {
	var herr *HTTPError
	if errors.As(err, &herr) {
		return herr.Kind == SessionInvalid
	}
	return false
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not an
// HTTP failure (network errors, validation errors, nil).
func StatusCode(err error) int {
	var herr *HTTPError
	if errors.As(err, &herr) {
		return herr.StatusCode
	}
	return 0
}
