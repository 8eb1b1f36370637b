package session

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionNotFound indicates no session exists for the presented
	// identifier.
	ErrSessionNotFound = errors.New("session: not found")

	// ErrSessionExpired indicates the session's idle expiry has passed.
	ErrSessionExpired = errors.New("session: expired")

	// ErrSessionInvalidated indicates the session was terminated earlier,
	// by logout or by hijacking detection.
	ErrSessionInvalidated = errors.New("session: invalidated")

	// ErrInvalidCSRFToken indicates the presented anti-forgery token does
	// not match the session's current token. Recoverable: the session
	// stays active, a retry with the current token succeeds.
	ErrInvalidCSRFToken = errors.New("session: invalid or missing csrf token")

	// ErrFingerprintMismatch is the terminal hijacking signal. The session
	// is invalidated before this error is returned. Match against it with
	// errors.Is; the concrete value is one of ErrIPAddressMismatch or
	// ErrUserAgentMismatch.
	ErrFingerprintMismatch = errors.New("session: fingerprint mismatch")

	// ErrIPAddressMismatch indicates the request came from a different
	// origin address than the one bound at login.
	ErrIPAddressMismatch = fmt.Errorf("%w: ip address", ErrFingerprintMismatch)

	// ErrUserAgentMismatch indicates the request presented a different
	// user-agent string than the one bound at login.
	ErrUserAgentMismatch = fmt.Errorf("%w: user agent", ErrFingerprintMismatch)

	// ErrInvalidSession indicates a malformed session record was handed to
	// a store operation.
	ErrInvalidSession = errors.New("session: invalid record")

	// ErrNoSessionID indicates the request carried no session identifier.
	ErrNoSessionID = errors.New("session: no session id in request")
)
