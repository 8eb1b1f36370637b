package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/sessionguard/sessionguard/pkg/fingerprint"
)

// Status is the lifecycle state of a session. The transition is one-way:
// an invalidated session never becomes active again.
type Status string

const (
	StatusActive      Status = "active"
	StatusInvalidated Status = "invalidated"
)

// Session binds an authenticated principal, a client fingerprint, and the
// current anti-forgery token for the duration of an authenticated
// interaction.
//
// ID, UserID, Username, Fingerprint and CreatedAt are immutable after
// creation. CSRFToken rotates on login and after every accepted
// state-changing request. Status only moves from active to invalidated.
type Session struct {
	ID          uuid.UUID               `json:"id"`
	UserID      string                  `json:"user_id"`
	Username    string                  `json:"username"`
	Fingerprint fingerprint.Fingerprint `json:"fingerprint"`
	CSRFToken   string                  `json:"csrf_token"`
	Status      Status                  `json:"status"`
	CreatedAt   time.Time               `json:"created_at"`
	LastSeenAt  time.Time               `json:"last_seen_at"`
	ExpiresAt   time.Time               `json:"expires_at"`
}

// New creates an active session bound to the given fingerprint with a
// freshly issued anti-forgery token.
func New(userID, username string, fp fingerprint.Fingerprint, csrfToken string, idle time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:          uuid.New(),
		UserID:      userID,
		Username:    username,
		Fingerprint: fp,
		CSRFToken:   csrfToken,
		Status:      StatusActive,
		CreatedAt:   now,
		LastSeenAt:  now,
		ExpiresAt:   now.Add(idle),
	}
}

// IsActive returns true if the session has not been invalidated.
func (s *Session) IsActive() bool {
	return s != nil && s.Status == StatusActive
}

// IsExpired returns true if the session's idle expiry has passed.
func (s *Session) IsExpired() bool {
	return s != nil && time.Now().After(s.ExpiresAt)
}

// Touch records activity and extends the idle expiry.
func (s *Session) Touch(idle time.Duration) {
	if s == nil {
		return
	}
	now := time.Now()
	s.LastSeenAt = now
	s.ExpiresAt = now.Add(idle)
}
