package cookie

import "errors"

var (
	ErrNoSecret         = errors.New("cookie: no secret provided")
	ErrSecretTooShort   = errors.New("cookie: secret too short")
	ErrInvalidSignature = errors.New("cookie: invalid signature")
	ErrDecryptionFailed = errors.New("cookie: decryption failed")
	ErrCookieNotFound   = errors.New("cookie: not found")
	ErrInvalidFormat    = errors.New("cookie: invalid format")
)
