package httpserver

import "errors"

var (
	// ErrStart wraps listener and startup failures from Run.
	ErrStart = errors.New("httpserver: start failed")
	// ErrShutdown wraps errors from a graceful shutdown attempt.
	ErrShutdown = errors.New("httpserver: shutdown failed")
)
