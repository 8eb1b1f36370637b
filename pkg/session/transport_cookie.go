package session

import (
	"net/http"
	"time"

	"github.com/sessionguard/sessionguard/pkg/cookie"
)

// CookieTransport carries the session identifier in an encrypted cookie.
type CookieTransport struct {
	cookieMgr     *cookie.Manager
	cookieName    string
	options       []cookie.Option
	secureCookies bool
}

// NewCookieTransport creates a cookie-based transport.
func NewCookieTransport(cookieMgr *cookie.Manager, cookieName string, secureCookies bool, opts ...cookie.Option) *CookieTransport {
	return &CookieTransport{
		cookieMgr:     cookieMgr,
		cookieName:    cookieName,
		options:       opts,
		secureCookies: secureCookies,
	}
}

// GetSessionID extracts the session identifier from the cookie.
func (t *CookieTransport) GetSessionID(r *http.Request) (string, error) {
	id, err := t.cookieMgr.GetEncrypted(r, t.cookieName)
	if err != nil {
		return "", ErrNoSessionID
	}
	return id, nil
}

// SetSessionID stores the session identifier in an encrypted cookie.
func (t *CookieTransport) SetSessionID(w http.ResponseWriter, id string, ttl time.Duration) error {
	opts := []cookie.Option{
		cookie.WithMaxAge(int(ttl.Seconds())),
		cookie.WithPath("/"),
		cookie.WithHTTPOnly(true),
		cookie.WithSameSite(http.SameSiteStrictMode),
	}

	if t.secureCookies {
		opts = append(opts, cookie.WithSecure(true))
	}

	opts = append(opts, t.options...)

	return t.cookieMgr.SetEncrypted(w, t.cookieName, id, opts...)
}

// ClearSessionID removes the session cookie.
func (t *CookieTransport) ClearSessionID(w http.ResponseWriter) error {
	t.cookieMgr.Delete(w, t.cookieName)
	return nil
}
