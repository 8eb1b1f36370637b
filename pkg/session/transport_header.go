package session

import (
	"net/http"
	"time"
)

// HeaderTransport carries the session identifier in an HTTP header.
// Useful for non-browser clients and tests where cookies are awkward.
type HeaderTransport struct {
	headerName string
}

// NewHeaderTransport creates a header-based transport.
func NewHeaderTransport(headerName string) *HeaderTransport {
	return &HeaderTransport{headerName: headerName}
}

// GetSessionID extracts the session identifier from the header.
func (t *HeaderTransport) GetSessionID(r *http.Request) (string, error) {
	value := r.Header.Get(t.headerName)
	if value == "" {
		return "", ErrNoSessionID
	}
	return value, nil
}

// SetSessionID sends the session identifier in the response header.
func (t *HeaderTransport) SetSessionID(w http.ResponseWriter, id string, ttl time.Duration) error {
	w.Header().Set(t.headerName, id)
	if ttl > 0 {
		w.Header().Set(t.headerName+"-Expires", time.Now().Add(ttl).Format(time.RFC3339))
	}
	return nil
}

// ClearSessionID removes the session header from the response.
func (t *HeaderTransport) ClearSessionID(w http.ResponseWriter) error {
	w.Header().Del(t.headerName)
	w.Header().Del(t.headerName + "-Expires")
	return nil
}
