package csrf_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessionguard/sessionguard/pkg/csrf"
)

func TestIssuer_IssueValidate(t *testing.T) {
	t.Parallel()

	issuer := csrf.NewIssuer(time.Hour, 0)
	t.Cleanup(func() { _ = issuer.Close() })

	token, err := issuer.Issue()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.True(t, issuer.Validate(token))
	assert.False(t, issuer.Validate("unknown-token"))
	assert.False(t, issuer.Validate(""))
}

func TestIssuer_Expiry(t *testing.T) {
	t.Parallel()

	issuer := csrf.NewIssuer(10*time.Millisecond, 0)
	t.Cleanup(func() { _ = issuer.Close() })

	token, err := issuer.Issue()
	require.NoError(t, err)
	assert.True(t, issuer.Validate(token))

	time.Sleep(20 * time.Millisecond)
	assert.False(t, issuer.Validate(token))
	// Expired tokens stay invalid on repeat checks.
	assert.False(t, issuer.Validate(token))
}

func TestIssuer_Revoke(t *testing.T) {
	t.Parallel()

	issuer := csrf.NewIssuer(time.Hour, 0)
	t.Cleanup(func() { _ = issuer.Close() })

	token, err := issuer.Issue()
	require.NoError(t, err)

	issuer.Revoke(token)
	assert.False(t, issuer.Validate(token))

	// Revoking an unknown token is a no-op.
	issuer.Revoke("never-issued")
}

func TestIssuer_ConcurrentUse(t *testing.T) {
	t.Parallel()

	issuer := csrf.NewIssuer(time.Hour, time.Millisecond)
	t.Cleanup(func() { _ = issuer.Close() })

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				token, err := issuer.Issue()
				if err != nil {
					t.Error(err)
					return
				}
				if !issuer.Validate(token) {
					t.Error("freshly issued token must validate")
					return
				}
				issuer.Revoke(token)
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
