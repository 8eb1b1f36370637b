package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// RedisStore implements Store on top of a Redis client. Records are stored
// as JSON values whose TTL tracks the session's idle expiry, so Redis
// itself garbage-collects expired sessions and DeleteExpired is a no-op.
//
// Each store operation is a single Redis command (or a small read-write
// pair serialized by the Guard's per-session lock), satisfying the
// per-session linearizability contract without cross-session locks.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func redisKey(id uuid.UUID) string {
	return redisKeyPrefix + id.String()
}

// Create stores a new session record.
func (s *RedisStore) Create(ctx context.Context, session *Session) error {
	if session == nil || session.ID == uuid.Nil {
		return ErrInvalidSession
	}
	return s.write(ctx, session)
}

// Get retrieves a session by ID.
func (s *RedisStore) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	data, err := s.client.Get(ctx, redisKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("session: redis get: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("session: unmarshal record: %w", err)
	}
	return &session, nil
}

// Update replaces an existing session record.
func (s *RedisStore) Update(ctx context.Context, session *Session) error {
	if session == nil || session.ID == uuid.Nil {
		return ErrInvalidSession
	}

	exists, err := s.client.Exists(ctx, redisKey(session.ID)).Result()
	if err != nil {
		return fmt.Errorf("session: redis exists: %w", err)
	}
	if exists == 0 {
		return ErrSessionNotFound
	}

	return s.write(ctx, session)
}

// Touch updates only the activity timestamps.
func (s *RedisStore) Touch(ctx context.Context, id uuid.UUID, lastSeen, expiresAt time.Time) error {
	session, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	session.LastSeenAt = lastSeen
	session.ExpiresAt = expiresAt
	return s.write(ctx, session)
}

// Invalidate marks the session as terminated. No-op for unknown sessions.
func (s *RedisStore) Invalidate(ctx context.Context, id uuid.UUID) error {
	session, err := s.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil
		}
		return err
	}

	session.Status = StatusInvalidated
	return s.write(ctx, session)
}

// Delete removes a session record.
func (s *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, redisKey(id)).Err(); err != nil {
		return fmt.Errorf("session: redis del: %w", err)
	}
	return nil
}

// DeleteExpired is a no-op: Redis evicts expired records through key TTLs.
func (s *RedisStore) DeleteExpired(ctx context.Context) error {
	return nil
}

func (s *RedisStore) write(ctx context.Context, session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("session: marshal record: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		// Already past expiry, keep briefly so concurrent readers see a
		// consistent record instead of a vanished key.
		ttl = time.Second
	}

	if err := s.client.Set(ctx, redisKey(session.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("session: redis set: %w", err)
	}
	return nil
}
