package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (*Result, error)
}

// Result is the outcome of a rate limit check.
type Result struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Allowed reports whether the request may proceed.
func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter returns how long the caller should wait before retrying.
// Zero when the request was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return time.Until(r.ResetAt)
}

// Bucket is a token bucket limiter over a pluggable store.
type Bucket struct {
	store Store
	cfg   Config
}

// NewBucket creates a token bucket limiter.
func NewBucket(store Store, cfg Config) (*Bucket, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Bucket{store: store, cfg: cfg}, nil
}

// Allow consumes one token for key.
func (b *Bucket) Allow(ctx context.Context, key string) (*Result, error) {
	remaining, resetAt, err := b.store.Consume(ctx, key, 1, b.cfg)
	if err != nil {
		return nil, err
	}

	return &Result{
		Limit:     b.cfg.Capacity,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}

// Reset clears the bucket state for key.
func (b *Bucket) Reset(ctx context.Context, key string) error {
	return b.store.Reset(ctx, key)
}

// Store is the persistence backend for bucket state.
type Store interface {
	// Consume refills the bucket for key per cfg, then removes tokens.
	// A negative remaining count means the request must be denied.
	Consume(ctx context.Context, key string, tokens int, cfg Config) (remaining int, resetAt time.Time, err error)

	// Reset clears the state for key.
	Reset(ctx context.Context, key string) error
}

func (c Config) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.RefillRate <= 0 {
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	}
	if c.RefillInterval <= 0 {
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}
