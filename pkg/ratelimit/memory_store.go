package ratelimit

import (
	"context"
	"sync"
	"time"
)

// staleThreshold is how long an untouched bucket survives before the
// cleanup loop reclaims it.
const staleThreshold = time.Hour

type bucketState struct {
	tokens     int
	lastRefill time.Time
	lastAccess time.Time
}

// MemoryStore keeps bucket state in process memory. Stale buckets are
// reclaimed by a background loop so the map does not grow with the
// client population.
type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]*bucketState
	done    chan struct{}
}

// NewMemoryStore creates an in-memory store. A background goroutine
// reclaims stale buckets every cleanupInterval (0 disables it).
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	s := &MemoryStore{
		buckets: make(map[string]*bucketState),
		done:    make(chan struct{}),
	}

	if cleanupInterval > 0 {
		go s.cleanupLoop(cleanupInterval)
	}

	return s
}

// Consume implements Store.
func (s *MemoryStore) Consume(_ context.Context, key string, tokens int, cfg Config) (int, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	b, exists := s.buckets[key]
	if !exists {
		b = &bucketState{tokens: cfg.Capacity, lastRefill: now}
		s.buckets[key] = b
	}

	// Refill whole intervals only; cap the interval count so a long-idle
	// bucket cannot overflow the token arithmetic.
	elapsed := now.Sub(b.lastRefill)
	maxIntervals := int64(cfg.Capacity/cfg.RefillRate + 1)
	intervals := int(min(int64(elapsed/cfg.RefillInterval), maxIntervals))

	if intervals > 0 {
		b.tokens = min(b.tokens+intervals*cfg.RefillRate, cfg.Capacity)
		b.lastRefill = now
	}

	b.lastAccess = now

	// Deny without draining below zero: denied requests must not dig a
	// deficit that outlasts the refill the client is waiting for.
	if b.tokens < tokens {
		return -1, b.lastRefill.Add(cfg.RefillInterval), nil
	}

	b.tokens -= tokens
	return b.tokens, b.lastRefill.Add(cfg.RefillInterval), nil
}

// Reset implements Store.
func (s *MemoryStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.buckets, key)
	s.mu.Unlock()
	return nil
}

// Close stops the cleanup goroutine. Safe to call more than once.
func (s *MemoryStore) Close() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
}

func (s *MemoryStore) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.removeStale()
		case <-s.done:
			return
		}
	}
}

func (s *MemoryStore) removeStale() {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, b := range s.buckets {
		if now.Sub(b.lastAccess) > staleThreshold {
			delete(s.buckets, key)
		}
	}
}
