// Package logger is a small factory over log/slog with environment-aware
// defaults (text+debug for development, JSON+info for production) and
// attribute helpers for the keys this codebase logs consistently.
package logger
