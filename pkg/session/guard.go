package session

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/sessionguard/sessionguard/pkg/csrf"
	"github.com/sessionguard/sessionguard/pkg/fingerprint"
)

// Guard is the session-security state machine. It creates sessions with a
// bound fingerprint, validates every privileged request against that
// fingerprint and the session's anti-forgery token, rotates the token on
// accepted state-changing requests, and invalidates the session the
// moment a fingerprint mismatch is detected.
//
// Rules, in evaluation order for a privileged request:
//
//   - unknown session            → ErrSessionNotFound
//   - invalidated session        → ErrSessionInvalidated
//   - expired session            → ErrSessionExpired
//   - fingerprint mismatch       → invalidate, ErrIPAddressMismatch or
//     ErrUserAgentMismatch (terminal: assume compromise, burn the session)
//   - bad/missing token          → ErrInvalidCSRFToken (recoverable: the
//     session stays active so a retry with the current token succeeds)
//   - otherwise                  → touch, rotate token, allow
//
// The fingerprint check deliberately precedes the token check: it is the
// stronger signal and its invalidation side effect subsumes the token
// failure.
type Guard struct {
	store Store
	cfg   Config
	log   *slog.Logger
	locks keyedMutex
}

// GuardOption configures a Guard.
type GuardOption func(*Guard)

// WithConfig overrides the default configuration.
func WithConfig(cfg Config) GuardOption {
	return func(g *Guard) {
		g.cfg = cfg
	}
}

// WithLogger sets the logger for security events.
func WithLogger(log *slog.Logger) GuardOption {
	return func(g *Guard) {
		if log != nil {
			g.log = log
		}
	}
}

// NewGuard creates a session guard backed by the given store.
func NewGuard(store Store, opts ...GuardOption) *Guard {
	g := &Guard{
		store: store,
		cfg:   DefaultConfig(),
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Login creates a new active session for a principal whose credentials
// were already verified by the external authenticator. The presented
// fingerprint is bound to the session for its entire lifetime and a fresh
// anti-forgery token is issued.
func (g *Guard) Login(ctx context.Context, userID, username string, fp fingerprint.Fingerprint) (*Session, error) {
	token, err := csrf.GenerateToken()
	if err != nil {
		return nil, err
	}

	session := New(userID, username, fp, token, g.cfg.IdleTimeout)
	if err := g.store.Create(ctx, session); err != nil {
		return nil, err
	}

	g.log.InfoContext(ctx, "session created",
		slog.String("session_id", session.ID.String()),
		slog.String("user_id", userID),
		slog.String("ip", fp.IPAddress),
	)

	return session, nil
}

// Validate runs the privileged-request transition for the given session.
// On allow it returns the session with its freshly rotated token and
// updated activity timestamps. On reject it returns one of the sentinel
// errors from this package; only fingerprint mismatches invalidate the
// session as a side effect.
func (g *Guard) Validate(ctx context.Context, id uuid.UUID, fp fingerprint.Fingerprint, token string) (*Session, error) {
	unlock := g.locks.lock(id)
	defer unlock()

	session, err := g.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !session.IsActive() {
		return nil, ErrSessionInvalidated
	}

	if session.IsExpired() {
		return nil, ErrSessionExpired
	}

	switch session.Fingerprint.Match(fp) {
	case fingerprint.MismatchAddress:
		return nil, g.burn(ctx, session, fp, ErrIPAddressMismatch)
	case fingerprint.MismatchAgent:
		return nil, g.burn(ctx, session, fp, ErrUserAgentMismatch)
	}

	if !csrf.Equal(session.CSRFToken, token) {
		// Recoverable protocol error, possibly a request racing a
		// rotation. The session stays active.
		return nil, ErrInvalidCSRFToken
	}

	rotated, err := csrf.GenerateToken()
	if err != nil {
		return nil, err
	}

	session.CSRFToken = rotated
	session.Touch(g.cfg.IdleTimeout)

	if err := g.store.Update(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// Logout terminates the session. The presented anti-forgery token must
// match the session's current token; a stale token is rejected without
// invalidating, like any other state-changing request.
func (g *Guard) Logout(ctx context.Context, id uuid.UUID, token string) error {
	unlock := g.locks.lock(id)
	defer unlock()

	session, err := g.store.Get(ctx, id)
	if err != nil {
		return err
	}

	if !session.IsActive() {
		return ErrSessionInvalidated
	}

	if !csrf.Equal(session.CSRFToken, token) {
		return ErrInvalidCSRFToken
	}

	if err := g.store.Invalidate(ctx, session.ID); err != nil {
		return err
	}

	g.log.InfoContext(ctx, "session terminated by logout",
		slog.String("session_id", session.ID.String()),
		slog.String("user_id", session.UserID),
	)

	return nil
}

// Get returns the session record without running any transition. Intended
// for collaborators that need to inspect a session (e.g. the logout
// handler checking ownership) inside their own flow.
func (g *Guard) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	return g.store.Get(ctx, id)
}

// burn invalidates a session on a fingerprint mismatch and returns cause.
// If the store fails the infrastructure error wins over the security one,
// so store outages are never masked as auth rejections.
func (g *Guard) burn(ctx context.Context, session *Session, presented fingerprint.Fingerprint, cause error) error {
	if err := g.store.Invalidate(ctx, session.ID); err != nil {
		return err
	}

	g.log.WarnContext(ctx, "session hijacking detected, session invalidated",
		slog.String("session_id", session.ID.String()),
		slog.String("user_id", session.UserID),
		slog.String("mismatch", session.Fingerprint.Match(presented).String()),
		slog.String("bound_ip", session.Fingerprint.IPAddress),
		slog.String("presented_ip", presented.IPAddress),
	)

	return cause
}

// keyedMutex serializes the read-decide-mutate sequence per session ID.
// Unrelated sessions proceed in parallel; entries are reference-counted
// and removed once the last holder releases, so the map does not grow with
// the session population.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func (k *keyedMutex) lock(id uuid.UUID) (unlock func()) {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[uuid.UUID]*lockEntry)
	}
	entry, exists := k.locks[id]
	if !exists {
		entry = &lockEntry{}
		k.locks[id] = entry
	}
	entry.refs++
	k.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		k.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(k.locks, id)
		}
		k.mu.Unlock()
	}
}
