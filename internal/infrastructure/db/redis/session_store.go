package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/winner-security/shift-scheduler/internal/core/domain"
)

// SessionStore keeps sessions as Redis hashes that expire with the session.
// Key format: session:<session_id>
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Create(ctx context.Context, session *domain.Session, ttl time.Duration) error {
	key := s.key(session.ID)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, map[string]interface{}{
			"user_id":    session.UserID,
			"email":      session.Email,
			"created_at": session.CreatedAt.Unix(),
			"expires_at": session.ExpiresAt.Unix(),
		})
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	var fields struct {
		UserID    string `redis:"user_id"`
		Email     string `redis:"email"`
		CreatedAt int64  `redis:"created_at"`
		ExpiresAt int64  `redis:"expires_at"`
	}

	cmd := s.client.HGetAll(ctx, s.key(id))
	values, err := cmd.Result()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if len(values) == 0 {
		return nil, domain.ErrSessionNotFound
	}
	if err := cmd.Scan(&fields); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	return &domain.Session{
		ID:        id,
		UserID:    fields.UserID,
		Email:     fields.Email,
		CreatedAt: time.Unix(fields.CreatedAt, 0).UTC(),
		ExpiresAt: time.Unix(fields.ExpiresAt, 0).UTC(),
	}, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *SessionStore) key(id string) string {
	return fmt.Sprintf("session:%s", id)
}
