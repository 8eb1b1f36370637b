package auth

import "errors"

var (
	// ErrInvalidCredentials covers every authentication failure: unknown
	// user, wrong password. Deliberately generic to prevent user
	// enumeration.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
)
