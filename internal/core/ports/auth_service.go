package ports

import (
	"context"

	"github.com/winner-security/shift-scheduler/internal/core/domain"
)

// SignInResult is returned by a successful sign-in.
type SignInResult struct {
	Token   string
	Session *domain.Session
	User    *domain.User
}

type AuthService interface {
	SignUp(ctx context.Context, input domain.SignUpInput) (*domain.User, error)
	SignIn(ctx context.Context, username, password string) (*SignInResult, error)
	SignOut(ctx context.Context, sessionID string) error
	// ResolveSession verifies a token and returns the live session it names.
	ResolveSession(ctx context.Context, token string) (*domain.Session, error)
	ResolveProfile(ctx context.Context, userID string) (*domain.User, error)
}
