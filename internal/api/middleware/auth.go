package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/winner-security/shift-scheduler/internal/api/metrics"
	"github.com/winner-security/shift-scheduler/internal/core/domain"
)

// Context keys set by Resolve.
const (
	KeyState   = "resolution_state"
	KeySession = "session"
	KeyProfile = "profile"
	KeyToken   = "token"
)

// SessionCookie is the cookie carrying the session token for browser clients.
const SessionCookie = "session"

// SessionResolver is the part of the auth service Resolve depends on.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*domain.Session, error)
	ResolveProfile(ctx context.Context, userID string) (*domain.User, error)
}

// Resolve works out who the caller is and stores the result in the context.
// It never rejects a request; the guards downstream decide.
//
// A missing or invalid token leaves the caller signed out. When the session
// store cannot be reached the state stays unresolved, and a session whose
// profile cannot be loaded is session-only.
func Resolve(resolver SessionResolver, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state := resolve(c, resolver, log)
			c.Set(KeyState, state)
			metrics.SessionResolutionsTotal.WithLabelValues(string(state)).Inc()
			return next(c)
		}
	}
}

func resolve(c echo.Context, resolver SessionResolver, log zerolog.Logger) domain.ResolutionState {
	token := tokenFrom(c.Request())
	if token == "" {
		return domain.StateSignedOut
	}

	ctx := c.Request().Context()
	session, err := resolver.ResolveSession(ctx, token)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return domain.StateSignedOut
	}
	if err != nil {
		log.Warn().Err(err).Msg("session check failed")
		return domain.StateUnresolved
	}
	c.Set(KeyToken, token)
	c.Set(KeySession, session)

	profile, err := resolver.ResolveProfile(ctx, session.UserID)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			log.Warn().Err(err).Str("user_id", session.UserID).Msg("profile fetch failed")
		}
		return domain.StateSessionOnly
	}
	c.Set(KeyProfile, profile)
	return domain.StateResolved
}

// tokenFrom reads the bearer token, falling back to the session cookie.
func tokenFrom(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}

// State returns the resolution state stored by Resolve, or unresolved.
func State(c echo.Context) domain.ResolutionState {
	if s, ok := c.Get(KeyState).(domain.ResolutionState); ok {
		return s
	}
	return domain.StateUnresolved
}

// Session returns the caller's session, or nil.
func Session(c echo.Context) *domain.Session {
	s, _ := c.Get(KeySession).(*domain.Session)
	return s
}

// Profile returns the caller's resolved profile, or nil.
func Profile(c echo.Context) *domain.User {
	p, _ := c.Get(KeyProfile).(*domain.User)
	return p
}
