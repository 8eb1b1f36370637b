package csrf

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
)

// tokenBytes is the entropy of a generated token. 32 bytes of crypto/rand
// encoded as URL-safe base64 yields a 43-character token.
const tokenBytes = 32

// GenerateToken creates a new unpredictable anti-forgery token.
// The randomness source (crypto/rand) is safe for concurrent use.
func GenerateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Equal compares two tokens in constant time to avoid timing leaks.
// Token length is not secret, so a length mismatch returns false
// immediately.
func Equal(current, presented string) bool {
	if current == "" || presented == "" {
		return false
	}
	if len(current) != len(presented) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(current), []byte(presented)) == 1
}
