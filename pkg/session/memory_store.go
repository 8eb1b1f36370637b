package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore implements Store using in-memory storage. Records are copied
// on the way in and out so callers can never mutate stored state through a
// shared pointer.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	ticker   *time.Ticker
	done     chan struct{}
}

// NewMemoryStore creates a new in-memory session store. A background
// goroutine garbage-collects expired sessions every cleanupInterval
// (0 disables the loop).
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	store := &MemoryStore{
		sessions: make(map[uuid.UUID]*Session),
		done:     make(chan struct{}),
	}

	if cleanupInterval > 0 {
		store.ticker = time.NewTicker(cleanupInterval)
		go store.cleanupLoop()
	}

	return store
}

// Create stores a new session record.
func (m *MemoryStore) Create(ctx context.Context, session *Session) error {
	if session == nil || session.ID == uuid.Nil {
		return ErrInvalidSession
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	sessionCopy := *session
	m.sessions[session.ID] = &sessionCopy
	return nil
}

// Get retrieves a session by ID. The copy is taken while the lock is
// held: Touch and Invalidate mutate stored records in place, so copying
// after release would race with them.
func (m *MemoryStore) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, exists := m.sessions[id]
	if !exists {
		return nil, ErrSessionNotFound
	}

	sessionCopy := *session
	return &sessionCopy, nil
}

// Update replaces an existing session record.
func (m *MemoryStore) Update(ctx context.Context, session *Session) error {
	if session == nil || session.ID == uuid.Nil {
		return ErrInvalidSession
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[session.ID]; !exists {
		return ErrSessionNotFound
	}

	sessionCopy := *session
	m.sessions[session.ID] = &sessionCopy
	return nil
}

// Touch updates only the activity timestamps.
func (m *MemoryStore) Touch(ctx context.Context, id uuid.UUID, lastSeen, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, exists := m.sessions[id]
	if !exists {
		return ErrSessionNotFound
	}

	session.LastSeenAt = lastSeen
	session.ExpiresAt = expiresAt
	return nil
}

// Invalidate marks the session as terminated. No-op for unknown or
// already-invalidated sessions.
func (m *MemoryStore) Invalidate(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if session, exists := m.sessions[id]; exists {
		session.Status = StatusInvalidated
	}
	return nil
}

// Delete removes a session record.
func (m *MemoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
	return nil
}

// DeleteExpired removes all sessions past their idle expiry.
func (m *MemoryStore) DeleteExpired(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for id, session := range m.sessions {
		if now.After(session.ExpiresAt) {
			delete(m.sessions, id)
		}
	}

	return nil
}

// Len returns the number of stored sessions, expired ones included.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Close stops the cleanup goroutine.
func (m *MemoryStore) Close() error {
	if m.ticker != nil {
		m.ticker.Stop()
		select {
		case <-m.done:
		default:
			close(m.done)
		}
	}
	return nil
}

func (m *MemoryStore) cleanupLoop() {
	for {
		select {
		case <-m.ticker.C:
			_ = m.DeleteExpired(context.Background())
		case <-m.done:
			return
		}
	}
}
