package redis

import "errors"

var (
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("redis not ready")
	ErrEmptyRedisClient             = errors.New("empty redis client")
)
