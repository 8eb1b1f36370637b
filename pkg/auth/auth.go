package auth

import (
	"context"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// Identity is the authenticated principal returned on successful
// credential verification.
type Identity struct {
	ID       string
	Username string
}

// Authenticator verifies credentials. The session core delegates here and
// never sees passwords; how identities are stored is the collaborator's
// concern.
type Authenticator interface {
	// Authenticate returns the identity matching the credentials or
	// ErrInvalidCredentials. Any failure maps to the same generic error to
	// prevent user enumeration.
	Authenticate(ctx context.Context, username, password string) (*Identity, error)
}

// StaticAuthenticator verifies credentials against a fixed in-memory user
// set with bcrypt hashes. Suited for demos and tests.
type StaticAuthenticator struct {
	mu    sync.RWMutex
	users map[string]staticUser
}

type staticUser struct {
	id           string
	passwordHash []byte
}

// NewStaticAuthenticator creates an empty authenticator. Register users
// with AddUser.
func NewStaticAuthenticator() *StaticAuthenticator {
	return &StaticAuthenticator{users: make(map[string]staticUser)}
}

// AddUser registers a user with the given plaintext password, hashing it
// with bcrypt. An existing user with the same username is replaced.
func (a *StaticAuthenticator) AddUser(id, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.users[username] = staticUser{id: id, passwordHash: hash}
	a.mu.Unlock()

	return nil
}

// Authenticate implements Authenticator.
func (a *StaticAuthenticator) Authenticate(ctx context.Context, username, password string) (*Identity, error) {
	a.mu.RLock()
	user, exists := a.users[username]
	a.mu.RUnlock()

	if !exists {
		// Burn comparable time on a dummy hash so unknown usernames are
		// not distinguishable by response latency.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(user.passwordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &Identity{ID: user.id, Username: username}, nil
}

// dummyHash keeps the unknown-user path timing-comparable to the real one.
var dummyHash = func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("dummy-password-for-timing-only"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return hash
}()
