package session

import "time"

// Config holds session configuration.
type Config struct {
	// CookieName is the name of the session cookie (default: "session_id").
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"session_id"`

	// IdleTimeout terminates sessions after this much inactivity.
	IdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT" envDefault:"1h"`

	// CleanupInterval for expired sessions (0 to disable).
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"5m"`

	// SecureCookies enables the Secure flag on session cookies
	// (recommended for production).
	SecureCookies bool `env:"SESSION_SECURE_COOKIES" envDefault:"false"`
}

// DefaultConfig returns default session configuration.
func DefaultConfig() Config {
	return Config{
		CookieName:      "session_id",
		IdleTimeout:     time.Hour,
		CleanupInterval: 5 * time.Minute,
		SecureCookies:   false,
	}
}
