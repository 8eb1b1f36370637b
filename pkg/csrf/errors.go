package csrf

import "errors"

var (
	// ErrTokenGeneration indicates the randomness source failed. This is an
	// infrastructure fault, not an authorization failure, and must never be
	// downgraded to a 4xx rejection.
	ErrTokenGeneration = errors.New("csrf: token generation failed")
)
