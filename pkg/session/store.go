package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Store defines the authoritative mapping from session identifier to
// session record.
//
// Concurrency contract: each individual operation is linearizable per
// session ID. The multi-step read-decide-mutate sequence of the validator
// is serialized above the store by the Guard, so implementations only need
// per-operation atomicity and must never take cross-session locks.
type Store interface {
	// Create stores a new session record.
	Create(ctx context.Context, session *Session) error

	// Get retrieves a session by ID. Returns ErrSessionNotFound when no
	// record exists.
	Get(ctx context.Context, id uuid.UUID) (*Session, error)

	// Update replaces an existing session record.
	Update(ctx context.Context, session *Session) error

	// Touch updates only the activity timestamps.
	Touch(ctx context.Context, id uuid.UUID, lastSeen, expiresAt time.Time) error

	// Invalidate marks the session as terminated. Idempotent: invalidating
	// an already-invalidated or unknown session is a no-op, not an error.
	Invalidate(ctx context.Context, id uuid.UUID) error

	// Delete removes a session record. Deleting an unknown session is a
	// no-op.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteExpired removes all sessions past their idle expiry.
	DeleteExpired(ctx context.Context) error
}
