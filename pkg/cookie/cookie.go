package cookie

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"
)

const minSecretLength = 32

// Manager reads and writes plain, signed, and encrypted cookies. Multiple
// secrets support key rotation: the first secret signs/encrypts new
// cookies, all secrets are tried when verifying/decrypting.
type Manager struct {
	secrets  []string
	defaults Options
}

// New creates a cookie manager. Each secret must be at least 32 characters
// since AES-256 consumes the first 32 bytes as the key.
func New(secrets []string, opts ...Option) (*Manager, error) {
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}

	secrets = slices.DeleteFunc(secrets, func(s string) bool { return s == "" })
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}

	for i, s := range secrets {
		if len(s) < minSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need at least %d", ErrSecretTooShort, i, len(s), minSecretLength)
		}
	}

	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	defaults = applyOptions(defaults, opts)

	return &Manager{
		secrets:  secrets,
		defaults: defaults,
	}, nil
}

// Set writes a plain cookie.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	options := applyOptions(m.defaults, opts)

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	})
	return nil
}

// Get reads a plain cookie value.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	cookie, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return cookie.Value, nil
}

// Delete expires the named cookie.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
		Secure:   m.defaults.Secure,
	})
}

// SetSigned writes a cookie whose value is HMAC-signed against tampering.
// The value itself stays readable by the client.
func (m *Manager) SetSigned(w http.ResponseWriter, name, value string, opts ...Option) error {
	return m.Set(w, name, m.sign(value), opts...)
}

// GetSigned reads and verifies a signed cookie.
func (m *Manager) GetSigned(r *http.Request, name string) (string, error) {
	signed, err := m.Get(r, name)
	if err != nil {
		return "", err
	}
	return m.verify(signed)
}

// SetEncrypted writes a cookie whose value is AES-GCM encrypted, hiding it
// from the client entirely.
func (m *Manager) SetEncrypted(w http.ResponseWriter, name, value string, opts ...Option) error {
	encrypted, err := m.encrypt(value)
	if err != nil {
		return err
	}
	return m.Set(w, name, encrypted, opts...)
}

// GetEncrypted reads and decrypts an encrypted cookie.
func (m *Manager) GetEncrypted(r *http.Request, name string) (string, error) {
	encrypted, err := m.Get(r, name)
	if err != nil {
		return "", err
	}
	return m.decrypt(encrypted)
}

func (m *Manager) sign(value string) string {
	mac := hmac.New(sha256.New, []byte(m.secrets[0]))
	mac.Write([]byte(value))
	signature := base64.URLEncoding.EncodeToString(mac.Sum(nil))

	return base64.URLEncoding.EncodeToString([]byte(value)) + "|" + signature
}

func (m *Manager) verify(signed string) (string, error) {
	parts := strings.SplitN(signed, "|", 2)
	if len(parts) != 2 {
		return "", ErrInvalidFormat
	}

	encodedValue, signature := parts[0], parts[1]

	value, err := base64.URLEncoding.DecodeString(encodedValue)
	if err != nil {
		return "", ErrInvalidFormat
	}

	// Try all secrets so old cookies remain valid during key rotation.
	for _, secret := range m.secrets {
		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write(value)
		expectedSig := base64.URLEncoding.EncodeToString(mac.Sum(nil))

		if subtle.ConstantTimeCompare([]byte(signature), []byte(expectedSig)) == 1 {
			return string(value), nil
		}
	}

	return "", ErrInvalidSignature
}

func (m *Manager) encrypt(value string) (string, error) {
	block, err := aes.NewCipher([]byte(m.secrets[0][:32]))
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	// Nonce is prepended so the cookie is self-contained.
	ciphertext := gcm.Seal(nonce, nonce, []byte(value), nil)
	return base64.URLEncoding.EncodeToString(ciphertext), nil
}

func (m *Manager) decrypt(encrypted string) (string, error) {
	ciphertext, err := base64.URLEncoding.DecodeString(encrypted)
	if err != nil {
		return "", ErrInvalidFormat
	}

	for _, secret := range m.secrets {
		block, err := aes.NewCipher([]byte(secret[:32]))
		if err != nil {
			continue
		}

		gcm, err := cipher.NewGCM(block)
		if err != nil {
			continue
		}

		if len(ciphertext) < gcm.NonceSize() {
			continue
		}

		nonce, sealed := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
		if plaintext, err := gcm.Open(nil, nonce, sealed, nil); err == nil {
			return string(plaintext), nil
		}
	}

	return "", ErrDecryptionFailed
}
