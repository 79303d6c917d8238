package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/winner-security/shift-scheduler/internal/core/domain"
	"github.com/winner-security/shift-scheduler/internal/core/ports"
)

// DefaultEmailDomain is the internal domain appended to usernames to form
// the provider's credential email.
const DefaultEmailDomain = "winner-security.local"

// AuthConfig holds the token and credential settings of AuthService.
type AuthConfig struct {
	JWTSecret   string
	SessionTTL  time.Duration
	EmailDomain string
}

// AuthService implements sign-up, sign-in and session resolution on top of
// the identity, profile and session stores.
type AuthService struct {
	identities ports.IdentityRepository
	profiles   ports.ProfileRepository
	sessions   ports.SessionStore
	cfg        AuthConfig
	log        zerolog.Logger
	now        func() time.Time
}

func NewAuthService(
	identities ports.IdentityRepository,
	profiles ports.ProfileRepository,
	sessions ports.SessionStore,
	cfg AuthConfig,
	log zerolog.Logger,
) *AuthService {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	if cfg.EmailDomain == "" {
		cfg.EmailDomain = DefaultEmailDomain
	}
	return &AuthService{
		identities: identities,
		profiles:   profiles,
		sessions:   sessions,
		cfg:        cfg,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// SignUp registers a new identity and its profile. The profile insert runs
// after the identity exists; when it fails the identity is kept and the
// account stays in the session-without-profile state.
func (s *AuthService) SignUp(ctx context.Context, input domain.SignUpInput) (*domain.User, error) {
	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("sign up: hash password: %w", err)
	}

	now := s.now()
	identity := &domain.Identity{
		ID:           uuid.NewString(),
		Email:        domain.CredentialEmail(input.Username, s.cfg.EmailDomain),
		PasswordHash: string(hash),
		CreatedAt:    now,
	}
	if err := s.identities.Create(ctx, identity); err != nil {
		return nil, domain.Remote("create identity", err)
	}

	user := &domain.User{
		ID:        identity.ID,
		Name:      input.DisplayName,
		Role:      input.Role,
		CreatedAt: now,
	}
	if err := s.profiles.Create(ctx, user); err != nil {
		s.log.Error().Err(err).Str("user_id", user.ID).Msg("profile insert failed after identity was created")
		return nil, domain.Remote("create profile", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user registered")
	return user, nil
}

// SignIn checks the credentials and opens a new session. The profile is
// attached when it already exists; a missing profile is not an error.
func (s *AuthService) SignIn(ctx context.Context, username, password string) (*ports.SignInResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	identity, err := s.identities.FindByEmail(ctx, domain.CredentialEmail(username, s.cfg.EmailDomain))
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, domain.Remote("find identity", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	now := s.now()
	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    identity.ID,
		Email:     identity.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.SessionTTL),
	}
	if err := s.sessions.Create(ctx, session, s.cfg.SessionTTL); err != nil {
		return nil, domain.Remote("create session", err)
	}

	token, err := s.generateToken(session)
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}

	result := &ports.SignInResult{Token: token, Session: session}
	user, err := s.profiles.FindByID(ctx, identity.ID)
	switch {
	case err == nil:
		result.User = user
	case errors.Is(err, domain.ErrProfileNotFound):
		s.log.Warn().Str("user_id", identity.ID).Msg("signed in without a profile")
	default:
		s.log.Warn().Err(err).Str("user_id", identity.ID).Msg("profile lookup failed at sign-in")
	}
	return result, nil
}

func (s *AuthService) SignOut(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return domain.Remote("delete session", err)
	}
	return nil
}

// ResolveSession verifies the token signature and expiry, then loads the
// session it names. A revoked session yields domain.ErrSessionNotFound.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (*domain.Session, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrSessionNotFound
	}

	sid, _ := claims["sid"].(string)
	sub, _ := claims["sub"].(string)
	if sid == "" || sub == "" {
		return nil, domain.ErrSessionNotFound
	}

	session, err := s.sessions.Get(ctx, sid)
	if err != nil {
		return nil, domain.Remote("get session", err)
	}
	if session.UserID != sub || session.Expired(s.now()) {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (s *AuthService) ResolveProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.profiles.FindByID(ctx, userID)
	if err != nil {
		return nil, domain.Remote("find profile", err)
	}
	return user, nil
}

func (s *AuthService) generateToken(session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sub": session.UserID,
		"sid": session.ID,
		"exp": session.ExpiresAt.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.cfg.JWTSecret))
}
