package session

import (
	"net/http"
	"time"
)

// Transport defines how the opaque session identifier travels between
// client and server. The identifier is a bearer credential: whoever
// presents it claims the session, which is exactly why the guard
// re-validates the fingerprint on every privileged request.
type Transport interface {
	// GetSessionID extracts the session identifier from the request.
	// Returns ErrNoSessionID when the request carries none.
	GetSessionID(r *http.Request) (string, error)

	// SetSessionID sends the session identifier in the response.
	SetSessionID(w http.ResponseWriter, id string, ttl time.Duration) error

	// ClearSessionID removes the session identifier from the response.
	ClearSessionID(w http.ResponseWriter) error
}
