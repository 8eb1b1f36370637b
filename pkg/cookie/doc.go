// Package cookie provides a cookie manager with three integrity levels:
// plain cookies, HMAC-SHA256 signed cookies (tamper-evident, value still
// readable), and AES-256-GCM encrypted cookies (value hidden from the
// client). The session transport uses the encrypted flavor to carry the
// opaque session identifier.
//
// The manager accepts multiple secrets to support zero-downtime key
// rotation: new cookies always use the first secret, reads fall back
// through the rest. Signature comparison is constant-time.
package cookie
