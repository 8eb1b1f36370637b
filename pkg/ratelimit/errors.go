package ratelimit

import "errors"

var (
	// ErrInvalidConfig indicates the bucket configuration is unusable.
	ErrInvalidConfig = errors.New("ratelimit: invalid configuration")
)
