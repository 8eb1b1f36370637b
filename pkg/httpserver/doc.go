// Package httpserver wraps net/http's server with graceful shutdown,
// signal handling, env-driven configuration, and a health check handler.
package httpserver
