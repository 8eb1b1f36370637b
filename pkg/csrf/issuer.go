package csrf

import (
	"sync"
	"time"
)

// Issuer tracks anonymous anti-forgery tokens handed out before a session
// exists (the GET /csrf-token → POST /login flow). Session-scoped tokens
// live on the session record instead and are rotated by the session guard;
// this issuer only covers the pre-login window.
type Issuer struct {
	mu     sync.RWMutex
	tokens map[string]time.Time
	ttl    time.Duration
	ticker *time.Ticker
	done   chan struct{}
}

// NewIssuer creates an issuer whose tokens expire after ttl.
// A background goroutine evicts expired tokens every cleanupInterval
// (0 disables the loop).
func NewIssuer(ttl, cleanupInterval time.Duration) *Issuer {
	i := &Issuer{
		tokens: make(map[string]time.Time),
		ttl:    ttl,
		done:   make(chan struct{}),
	}

	if cleanupInterval > 0 {
		i.ticker = time.NewTicker(cleanupInterval)
		go i.cleanupLoop()
	}

	return i
}

// Issue generates and registers a new anonymous token.
func (i *Issuer) Issue() (string, error) {
	token, err := GenerateToken()
	if err != nil {
		return "", err
	}

	i.mu.Lock()
	i.tokens[token] = time.Now().Add(i.ttl)
	i.mu.Unlock()

	return token, nil
}

// Validate reports whether the presented token was issued here and has not
// expired. Absence or expiry simply returns false, never an error.
func (i *Issuer) Validate(token string) bool {
	if token == "" {
		return false
	}

	i.mu.RLock()
	expiresAt, exists := i.tokens[token]
	i.mu.RUnlock()

	if !exists {
		return false
	}

	if time.Now().After(expiresAt) {
		i.mu.Lock()
		delete(i.tokens, token)
		i.mu.Unlock()
		return false
	}

	return true
}

// Revoke removes a token so it cannot be replayed. Revoking an unknown
// token is a no-op.
func (i *Issuer) Revoke(token string) {
	i.mu.Lock()
	delete(i.tokens, token)
	i.mu.Unlock()
}

// Close stops the cleanup goroutine. Safe to call more than once.
func (i *Issuer) Close() error {
	if i.ticker != nil {
		i.ticker.Stop()
		select {
		case <-i.done:
		default:
			close(i.done)
		}
	}
	return nil
}

func (i *Issuer) cleanupLoop() {
	for {
		select {
		case <-i.ticker.C:
			i.deleteExpired()
		case <-i.done:
			return
		}
	}
}

func (i *Issuer) deleteExpired() {
	now := time.Now()

	i.mu.Lock()
	defer i.mu.Unlock()

	for token, expiresAt := range i.tokens {
		if now.After(expiresAt) {
			delete(i.tokens, token)
		}
	}
}
