package demo

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sessionguard/sessionguard/pkg/auth"
	"github.com/sessionguard/sessionguard/pkg/csrf"
	"github.com/sessionguard/sessionguard/pkg/fingerprint"
	"github.com/sessionguard/sessionguard/pkg/session"
)

// Service exposes the session-security core over HTTP:
//
//	GET  /csrf-token  anonymous anti-forgery token for the login call
//	POST /login       credential check, session creation, fingerprint binding
//	GET  /protected   fingerprint + token validation, token rotation
//	POST /logout      session termination with ownership check
//
// Session-scoped tokens travel out-of-band in the X-CSRF-Token response
// header; the body carries only the login payload the client needs.
type Service struct {
	guard          *session.Guard
	issuer         *csrf.Issuer
	authn          auth.Authenticator
	transport      session.Transport
	cfg            Config
	sessionCfg     session.Config
	log            *slog.Logger
	fingerprintOps []fingerprint.Option
	loginLimit     func(http.Handler) http.Handler
}

// Option configures the service.
type Option func(*Service)

// WithLogger sets the logger for request-level failures.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithSessionConfig overrides the session configuration used for cookie
// lifetimes. Must match the configuration the guard was built with.
func WithSessionConfig(cfg session.Config) Option {
	return func(s *Service) {
		s.sessionCfg = cfg
	}
}

// WithLoginRateLimit wraps the login endpoint with a rate limiting
// middleware to slow down credential guessing.
func WithLoginRateLimit(mw func(http.Handler) http.Handler) Option {
	return func(s *Service) {
		s.loginLimit = mw
	}
}

// NewService wires the HTTP surface to its collaborators.
func NewService(cfg Config, guard *session.Guard, issuer *csrf.Issuer, authn auth.Authenticator, transport session.Transport, opts ...Option) *Service {
	s := &Service{
		guard:      guard,
		issuer:     issuer,
		authn:      authn,
		transport:  transport,
		cfg:        cfg,
		sessionCfg: session.DefaultConfig(),
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	if cfg.AllowSimulatedFingerprint {
		s.fingerprintOps = []fingerprint.Option{fingerprint.WithSimulatedOverrides()}
	}

	return s
}

// Handler returns the service's router, ready to mount.
func (s *Service) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/csrf-token", s.handleCSRFToken)
	r.Get("/protected", s.handleProtected)
	r.Post("/logout", s.handleLogout)

	if s.loginLimit != nil {
		r.With(s.loginLimit).Post("/login", s.handleLogin)
	} else {
		r.Post("/login", s.handleLogin)
	}

	return r
}

func (s *Service) clientFingerprint(r *http.Request) fingerprint.Fingerprint {
	return fingerprint.Extract(r, s.fingerprintOps...)
}
