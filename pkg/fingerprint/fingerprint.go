package fingerprint

import (
	"net"
	"net/http"

	"github.com/sessionguard/sessionguard/pkg/clientip"
)

// Unknown is the placeholder for a fingerprint component that could not be
// derived from the request. Absence of a signal is not an error; the
// session guard decides the consequence of comparing unknowns.
const Unknown = "unknown"

// Header names honored only when simulated overrides are enabled.
const (
	HeaderSimulatedIP        = "X-Simulated-IP"
	HeaderSimulatedUserAgent = "X-Simulated-User-Agent"
)

// Fingerprint identifies the client context a session is bound to:
// the network origin address and the User-Agent string observed at login.
type Fingerprint struct {
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
}

// MismatchKind classifies how a presented fingerprint diverges from a
// bound one. The address check runs before the agent check, so a request
// that differs in both reports MismatchAddress.
type MismatchKind int

const (
	MismatchNone MismatchKind = iota
	MismatchAddress
	MismatchAgent
)

// String returns a human-readable name for the mismatch kind.
func (k MismatchKind) String() string {
	switch k {
	case MismatchAddress:
		return "ip_address"
	case MismatchAgent:
		return "user_agent"
	default:
		return "none"
	}
}

// Option configures fingerprint extraction.
type Option func(*config)

type config struct {
	allowSimulated bool
}

// WithSimulatedOverrides honors the X-Simulated-IP and
// X-Simulated-User-Agent headers as substitutes for the real signal.
// Client-supplied headers make hijacking detection trivially bypassable,
// so this must stay off outside of demos and tests.
func WithSimulatedOverrides() Option {
	return func(c *config) {
		c.allowSimulated = true
	}
}

// Extract derives the client fingerprint from an inbound request.
// It never fails: a component that cannot be resolved is reported as
// Unknown rather than an error.
func Extract(r *http.Request, opts ...Option) Fingerprint {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	ip := clientip.GetIP(r)
	ua := r.UserAgent()

	if cfg.allowSimulated {
		if sim := r.Header.Get(HeaderSimulatedIP); sim != "" {
			if parsed := net.ParseIP(sim); parsed != nil {
				ip = parsed.String()
			}
		}
		if sim := r.Header.Get(HeaderSimulatedUserAgent); sim != "" {
			ua = sim
		}
	}

	if ip == "" {
		ip = Unknown
	}
	if ua == "" {
		ua = Unknown
	}

	return Fingerprint{IPAddress: ip, UserAgent: ua}
}

// Match compares a presented fingerprint against the receiver (the bound
// fingerprint) and reports the first divergence. Address differences take
// precedence over agent differences.
func (f Fingerprint) Match(presented Fingerprint) MismatchKind {
	if f.IPAddress != presented.IPAddress {
		return MismatchAddress
	}
	if f.UserAgent != presented.UserAgent {
		return MismatchAgent
	}
	return MismatchNone
}

// Equal reports whether two fingerprints are identical.
func (f Fingerprint) Equal(other Fingerprint) bool {
	return f.Match(other) == MismatchNone
}
