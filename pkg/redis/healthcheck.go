package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Healthcheck returns a probe function that pings the Redis server.
// The result plugs into httpserver.HealthCheckHandler.
func Healthcheck(client *redis.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		if client == nil {
			return ErrEmptyRedisClient
		}
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrRedisNotReady, err)
		}
		return nil
	}
}
