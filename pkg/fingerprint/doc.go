// Package fingerprint derives a client fingerprint from an inbound HTTP
// request: the originating IP address paired with the User-Agent string.
// The session guard binds this pair to a session at login and compares it
// on every privileged request to detect session hijacking.
//
// Extraction is a pure function over the request. Missing components yield
// the Unknown placeholder instead of an error, leaving the consequence to
// the validator.
//
//	fp := fingerprint.Extract(r)
//	if kind := bound.Match(fp); kind != fingerprint.MismatchNone {
//	    // hijacking suspected, kind names the diverging component
//	}
//
// For demos and tests the X-Simulated-IP / X-Simulated-User-Agent headers
// can stand in for the real signal, but only when extraction is configured
// with WithSimulatedOverrides. Production deployments must leave the
// override disabled and source the address from a trusted transport-level
// signal.
package fingerprint
