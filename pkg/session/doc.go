// Package session implements the server-side session-security core:
// sessions bound to a client fingerprint at login, single rotating
// anti-forgery tokens, and hijacking detection that terminates a session
// the moment its presented fingerprint diverges from the bound one.
//
// # Architecture
//
// A Guard runs the per-session state machine (Login, Validate, Logout)
// on top of a Store that persists session records. A Transport moves the
// opaque session identifier between client and server; cookie and header
// transports ship out of the box, as do an in-memory store and a
// Redis-backed one.
//
//	┌────────┐  session id  ┌───────────┐
//	│ Client │ ───────────► │ Transport │
//	└────────┘              └───────────┘
//	       ▲                      │
//	       │                      ▼
//	┌──────────────────────────────────┐
//	│              Guard               │  fingerprint + token checks,
//	└──────────────────────────────────┘  rotation, invalidation
//	       │   per-session serialized
//	       ▼
//	┌────────┐
//	│ Store  │ (memory, redis)
//	└────────┘
//
// # Concurrency
//
// The Guard serializes the read-decide-mutate sequence per session ID
// with a reference-counted keyed mutex, so duplicate or racing requests
// against one session can never both observe the pre-rotation token as
// valid, while unrelated sessions proceed fully in parallel.
//
// # Failure semantics
//
// Rejections are sentinel errors. A fingerprint mismatch
// (ErrIPAddressMismatch, ErrUserAgentMismatch — both match
// ErrFingerprintMismatch with errors.Is) is terminal and invalidates the
// session before returning. A bad anti-forgery token
// (ErrInvalidCSRFToken) is recoverable and leaves the session active, so
// a legitimate client racing a token rotation can retry. Store and
// randomness failures propagate as-is and must surface as server faults,
// never as auth rejections.
package session
