// Package demo is the HTTP surface of the session-security core: login
// with fingerprint binding, anti-forgery token issuance and rotation,
// hijacking detection on the protected resource, and logout.
package demo
