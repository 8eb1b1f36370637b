// Package csrf issues and validates anti-forgery tokens for state-changing
// requests.
//
// Tokens come in two scopes. Anonymous tokens are handed out before any
// session exists (GET /csrf-token) and are tracked by an Issuer with a
// bounded TTL; the login request must present one. Session-scoped tokens
// are generated with GenerateToken, stored on the session record as its
// single active token, and rotated by the session guard on login and after
// every successful state-changing request to bound the replay window.
//
// All comparisons go through Equal, which is constant-time to avoid timing
// leaks. Validation never errors: a missing, expired, or mismatched token
// simply reports false.
package csrf
