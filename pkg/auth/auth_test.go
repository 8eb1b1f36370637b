package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessionguard/sessionguard/pkg/auth"
)

func TestStaticAuthenticator(t *testing.T) {
	t.Parallel()

	a := auth.NewStaticAuthenticator()
	require.NoError(t, a.AddUser("user123", "user", "password"))

	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		t.Parallel()

		identity, err := a.Authenticate(ctx, "user", "password")
		require.NoError(t, err)
		assert.Equal(t, "user123", identity.ID)
		assert.Equal(t, "user", identity.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()

		_, err := a.Authenticate(ctx, "user", "wrong")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()

		_, err := a.Authenticate(ctx, "nobody", "password")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("empty credentials", func(t *testing.T) {
		t.Parallel()

		_, err := a.Authenticate(ctx, "", "")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestStaticAuthenticator_ReplaceUser(t *testing.T) {
	t.Parallel()

	a := auth.NewStaticAuthenticator()
	require.NoError(t, a.AddUser("user123", "user", "old-password"))
	require.NoError(t, a.AddUser("user123", "user", "new-password"))

	ctx := context.Background()

	_, err := a.Authenticate(ctx, "user", "old-password")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	identity, err := a.Authenticate(ctx, "user", "new-password")
	require.NoError(t, err)
	assert.Equal(t, "user123", identity.ID)
}
