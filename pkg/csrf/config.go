package csrf

import "time"

// Config holds anti-forgery token configuration.
type Config struct {
	// TokenTTL bounds how long an anonymous pre-login token stays valid.
	TokenTTL time.Duration `env:"CSRF_TOKEN_TTL" envDefault:"24h"`

	// CleanupInterval for expired anonymous tokens (0 to disable).
	CleanupInterval time.Duration `env:"CSRF_CLEANUP_INTERVAL" envDefault:"10m"`
}

// DefaultConfig returns default anti-forgery configuration.
func DefaultConfig() Config {
	return Config{
		TokenTTL:        24 * time.Hour,
		CleanupInterval: 10 * time.Minute,
	}
}

// NewFromConfig creates an Issuer from the provided Config.
func NewFromConfig(cfg Config) *Issuer {
	return NewIssuer(cfg.TokenTTL, cfg.CleanupInterval)
}
