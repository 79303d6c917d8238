package ports

import (
	"context"
	"time"

	"github.com/winner-security/shift-scheduler/internal/core/domain"
)

// SessionStore keeps issued sessions until they expire or are revoked.
type SessionStore interface {
	Create(ctx context.Context, session *domain.Session, ttl time.Duration) error
	// Get returns domain.ErrSessionNotFound for unknown or expired sessions.
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// Pinger is implemented by every backing store checked by the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}
