package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessionguard/sessionguard/pkg/session"
)

func newTestStore(t *testing.T) *session.MemoryStore {
	t.Helper()
	store := session.NewMemoryStore(0)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestMemoryStore_CreateGet(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	sess := session.New("user123", "user", testFingerprint, "token", time.Hour)
	require.NoError(t, store.Create(ctx, sess))

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, sess.CSRFToken, got.CSRFToken)
	assert.Equal(t, sess.Fingerprint, got.Fingerprint)

	// Returned record is a copy: mutating it must not affect the store.
	got.CSRFToken = "mutated"
	again, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "token", again.CSRFToken)
}

func TestMemoryStore_CreateInvalid(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, store.Create(ctx, nil), session.ErrInvalidSession)
	assert.ErrorIs(t, store.Create(ctx, &session.Session{}), session.ErrInvalidSession)
}

func TestMemoryStore_GetNotFound(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	_, err := store.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestMemoryStore_Update(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	sess := session.New("user123", "user", testFingerprint, "token", time.Hour)
	require.NoError(t, store.Create(ctx, sess))

	sess.CSRFToken = "rotated"
	require.NoError(t, store.Update(ctx, sess))

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "rotated", got.CSRFToken)

	unknown := session.New("user123", "user", testFingerprint, "token", time.Hour)
	assert.ErrorIs(t, store.Update(ctx, unknown), session.ErrSessionNotFound)
}

func TestMemoryStore_Touch(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	sess := session.New("user123", "user", testFingerprint, "token", time.Hour)
	require.NoError(t, store.Create(ctx, sess))

	lastSeen := time.Now().Add(time.Minute)
	expiresAt := time.Now().Add(2 * time.Hour)
	require.NoError(t, store.Touch(ctx, sess.ID, lastSeen, expiresAt))

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, lastSeen, got.LastSeenAt, time.Millisecond)
	assert.WithinDuration(t, expiresAt, got.ExpiresAt, time.Millisecond)

	assert.ErrorIs(t, store.Touch(ctx, uuid.New(), lastSeen, expiresAt), session.ErrSessionNotFound)
}

func TestMemoryStore_InvalidateIdempotent(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	sess := session.New("user123", "user", testFingerprint, "token", time.Hour)
	require.NoError(t, store.Create(ctx, sess))

	require.NoError(t, store.Invalidate(ctx, sess.ID))

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusInvalidated, got.Status)

	// Re-invalidating and invalidating unknown sessions are no-ops.
	require.NoError(t, store.Invalidate(ctx, sess.ID))
	require.NoError(t, store.Invalidate(ctx, uuid.New()))
}

func TestMemoryStore_Delete(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	sess := session.New("user123", "user", testFingerprint, "token", time.Hour)
	require.NoError(t, store.Create(ctx, sess))

	require.NoError(t, store.Delete(ctx, sess.ID))
	_, err := store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	require.NoError(t, store.Delete(ctx, uuid.New()))
}

func TestMemoryStore_DeleteExpired(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	fresh := session.New("user123", "user", testFingerprint, "token", time.Hour)
	require.NoError(t, store.Create(ctx, fresh))

	stale := session.New("user456", "other", testFingerprint, "token", -time.Minute)
	require.NoError(t, store.Create(ctx, stale))

	require.NoError(t, store.DeleteExpired(ctx))
	assert.Equal(t, 1, store.Len())

	_, err := store.Get(ctx, stale.ID)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	_, err = store.Get(ctx, fresh.ID)
	assert.NoError(t, err)
}

func TestMemoryStore_ConcurrentReadWrite(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	sess := session.New("user123", "user", testFingerprint, "token", time.Hour)
	require.NoError(t, store.Create(ctx, sess))

	// Readers copy records while writers mutate them in place; run both
	// against the same session so the race detector can catch any copy
	// taken outside the lock.
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if got, err := store.Get(ctx, sess.ID); err == nil {
					_ = got.Status
					_ = got.LastSeenAt
				}
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = store.Invalidate(ctx, sess.ID)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = store.Touch(ctx, sess.ID, time.Now(), time.Now().Add(time.Hour))
			}
		}()
	}
	wg.Wait()

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusInvalidated, got.Status)
}

func TestMemoryStore_CleanupLoop(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore(10 * time.Millisecond)
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	stale := session.New("user123", "user", testFingerprint, "token", time.Millisecond)
	require.NoError(t, store.Create(ctx, stale))

	assert.Eventually(t, func() bool {
		return store.Len() == 0
	}, time.Second, 10*time.Millisecond)
}
