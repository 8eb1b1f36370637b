package demo

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/sessionguard/sessionguard/pkg/auth"
	"github.com/sessionguard/sessionguard/pkg/logger"
	"github.com/sessionguard/sessionguard/pkg/requestid"
	"github.com/sessionguard/sessionguard/pkg/session"
)

// HeaderCSRFToken carries the anti-forgery token in both directions:
// the client presents its current token on state-changing requests, the
// server returns the rotated token on every accepted one.
const HeaderCSRFToken = "X-CSRF-Token"

// Stable response messages. The demo client branches on substrings of
// these ("hijacking" in particular), so the wording must not drift.
const (
	msgLoggedIn           = "Logged in successfully"
	msgLoggedOut          = "Logged out successfully"
	msgAccessGranted      = "Access granted to protected resource"
	msgInvalidCredentials = "Invalid credentials"
	msgInvalidCSRFToken   = "Invalid or missing CSRF token"
	msgHijackingIP        = "Session hijacking detected: IP address mismatch"
	msgHijackingUserAgent = "Session hijacking detected: User agent mismatch"
	msgInvalidSession     = "Invalid session"
	msgAuthRequired       = "Authentication required"
	msgNoActiveSession    = "No active session"
	msgSessionNotFound    = "Session not found"
	msgSessionNotOwned    = "Session does not belong to this user"
	msgInternalError      = "Internal server error"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
}

type logoutRequest struct {
	UserID string `json:"user_id"`
}

type protectedResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	User    protectedUser `json:"user"`
}

type protectedUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type messageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type csrfTokenResponse struct {
	CSRFToken string `json:"csrf_token"`
}

func (s *Service) handleCSRFToken(w http.ResponseWriter, r *http.Request) {
	token, err := s.issuer.Issue()
	if err != nil {
		s.log.ErrorContext(r.Context(), "failed to issue csrf token",
			logger.Error(err), requestid.Attr(r.Context()))
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	writeJSON(w, http.StatusOK, csrfTokenResponse{CSRFToken: token})
}

func (s *Service) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token := r.Header.Get(HeaderCSRFToken)
	if !s.issuer.Validate(token) {
		writeError(w, http.StatusForbidden, msgInvalidCSRFToken)
		return
	}

	identity, err := s.authn.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		s.log.ErrorContext(r.Context(), "authenticator failure",
			logger.Error(err), requestid.Attr(r.Context()))
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	sess, err := s.guard.Login(r.Context(), identity.ID, identity.Username, s.clientFingerprint(r))
	if err != nil {
		s.log.ErrorContext(r.Context(), "failed to create session",
			logger.Error(err), requestid.Attr(r.Context()))
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	// Single use: the anonymous token served its purpose.
	s.issuer.Revoke(token)

	if err := s.transport.SetSessionID(w, sess.ID.String(), s.sessionCfg.IdleTimeout); err != nil {
		s.log.ErrorContext(r.Context(), "failed to set session id",
			logger.Error(err), requestid.Attr(r.Context()))
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	w.Header().Set(HeaderCSRFToken, sess.CSRFToken)

	writeJSON(w, http.StatusOK, loginResponse{
		Status:    "success",
		Message:   msgLoggedIn,
		SessionID: sess.ID.String(),
		UserID:    sess.UserID,
	})
}

func (s *Service) handleProtected(w http.ResponseWriter, r *http.Request) {
	rawID, err := s.transport.GetSessionID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, msgAuthRequired)
		return
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		_ = s.transport.ClearSessionID(w)
		writeError(w, http.StatusUnauthorized, msgInvalidSession)
		return
	}

	sess, err := s.guard.Validate(r.Context(), id, s.clientFingerprint(r), r.Header.Get(HeaderCSRFToken))
	if err != nil {
		s.rejectProtected(w, r, err)
		return
	}

	w.Header().Set(HeaderCSRFToken, sess.CSRFToken)

	writeJSON(w, http.StatusOK, protectedResponse{
		Status:  "success",
		Message: msgAccessGranted,
		User: protectedUser{
			ID:       sess.UserID,
			Username: sess.Username,
		},
	})
}

// rejectProtected maps guard errors to wire responses. Hijacking and
// terminated sessions also clear the session identifier so the client
// stops presenting a dead credential.
func (s *Service) rejectProtected(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, session.ErrIPAddressMismatch):
		_ = s.transport.ClearSessionID(w)
		writeError(w, http.StatusForbidden, msgHijackingIP)
	case errors.Is(err, session.ErrUserAgentMismatch):
		_ = s.transport.ClearSessionID(w)
		writeError(w, http.StatusForbidden, msgHijackingUserAgent)
	case errors.Is(err, session.ErrInvalidCSRFToken):
		writeError(w, http.StatusForbidden, msgInvalidCSRFToken)
	case errors.Is(err, session.ErrSessionInvalidated),
		errors.Is(err, session.ErrSessionNotFound),
		errors.Is(err, session.ErrSessionExpired):
		// One generic rejection for all three, so the response does not
		// reveal whether the session ever existed or was terminated.
		_ = s.transport.ClearSessionID(w)
		writeError(w, http.StatusUnauthorized, msgInvalidSession)
	default:
		s.log.ErrorContext(r.Context(), "session validation failure",
			logger.Error(err), requestid.Attr(r.Context()))
		writeError(w, http.StatusInternalServerError, msgInternalError)
	}
}

func (s *Service) handleLogout(w http.ResponseWriter, r *http.Request) {
	var req logoutRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rawID, err := s.transport.GetSessionID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, msgNoActiveSession)
		return
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		writeError(w, http.StatusBadRequest, msgNoActiveSession)
		return
	}

	sess, err := s.guard.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, msgSessionNotFound)
			return
		}
		s.log.ErrorContext(r.Context(), "failed to load session",
			logger.Error(err), requestid.Attr(r.Context()))
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	// Ownership check before any state change: a mismatched user_id must
	// not terminate someone else's session.
	if sess.UserID != req.UserID {
		writeError(w, http.StatusForbidden, msgSessionNotOwned)
		return
	}

	if err := s.guard.Logout(r.Context(), id, r.Header.Get(HeaderCSRFToken)); err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidCSRFToken):
			writeError(w, http.StatusForbidden, msgInvalidCSRFToken)
		case errors.Is(err, session.ErrSessionInvalidated):
			writeError(w, http.StatusUnauthorized, msgInvalidSession)
		case errors.Is(err, session.ErrSessionNotFound):
			writeError(w, http.StatusNotFound, msgSessionNotFound)
		default:
			s.log.ErrorContext(r.Context(), "failed to terminate session",
				slog.String("session_id", id.String()),
				logger.Error(err), requestid.Attr(r.Context()))
			writeError(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	_ = s.transport.ClearSessionID(w)

	writeJSON(w, http.StatusOK, messageResponse{Status: "success", Message: msgLoggedOut})
}
