package ports

import (
	"context"

	"github.com/winner-security/shift-scheduler/internal/core/domain"
)

// IdentityRepository persists the credential records of the built-in
// authentication provider.
type IdentityRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no identity matches.
	FindByEmail(ctx context.Context, email string) (*domain.Identity, error)
	// Create returns domain.ErrAlreadyRegistered when the email is taken.
	Create(ctx context.Context, identity *domain.Identity) error
}

// ProfileRepository persists user profiles (display name and role).
type ProfileRepository interface {
	Create(ctx context.Context, user *domain.User) error
	// FindByID returns domain.ErrProfileNotFound when no profile matches.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// ListByRole returns profiles with the given role ordered by name.
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
}
