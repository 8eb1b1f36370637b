// Package redis provides Redis connection helpers with env-driven
// configuration, connection retries, and a health check probe.
package redis
