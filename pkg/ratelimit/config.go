package ratelimit

import "time"

// Config defines the token bucket shape. Defaults are tuned for a login
// endpoint: a small burst with slow recovery.
type Config struct {
	// Capacity is the burst limit: the most requests a single key can make
	// before refills matter.
	Capacity int `env:"RATELIMIT_CAPACITY" envDefault:"10"`

	// RefillRate tokens are added back every RefillInterval.
	RefillRate     int           `env:"RATELIMIT_REFILL_RATE" envDefault:"5"`
	RefillInterval time.Duration `env:"RATELIMIT_REFILL_INTERVAL" envDefault:"1m"`
}
