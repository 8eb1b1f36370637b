// Package ratelimit implements token bucket rate limiting with an
// in-memory store and HTTP middleware keyed by client address. Used to
// slow down credential guessing on the login endpoint.
package ratelimit
