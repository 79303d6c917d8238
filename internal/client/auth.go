package client

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/winner-security/shift-scheduler/internal/core/domain"
)

// LoginResult is the outcome of a successful Login.
type LoginResult struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Session   *domain.Session `json:"session"`
	User      *domain.User    `json:"user,omitempty"`
}

// SessionInfo is the server's view of the caller's identity.
type SessionInfo struct {
	State   domain.ResolutionState `json:"state"`
	Session *domain.Session        `json:"session,omitempty"`
	User    *domain.User           `json:"user,omitempty"`
}

type signUpBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
}

type credentialsBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates an identity and its worker or admin profile.
func (c *Client) Register(ctx context.Context, in domain.SignUpInput) (*domain.User, error) {
	var out struct {
		User domain.User `json:"user"`
	}
	body := signUpBody{Username: in.Username, Password: in.Password, Name: in.DisplayName, Role: string(in.Role)}
	if err := c.do(ctx, "register", http.MethodPost, "/auth/register", body, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// Login exchanges credentials for a session token. On success the token is
// kept on the client for subsequent calls.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var out LoginResult
	body := credentialsBody{Username: username, Password: password}
	if err := c.do(ctx, "login", http.MethodPost, "/auth/login", body, &out); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

// Logout ends the server session. The local token is dropped either way.
func (c *Client) Logout(ctx context.Context) error {
	if c.token == "" {
		return nil
	}
	err := c.do(ctx, "logout", http.MethodPost, "/auth/logout", nil, nil)
	c.token = ""
	if errors.Is(err, ErrUnauthorized) {
		return nil
	}
	return err
}

// Session reports the caller's resolution state as the server sees it.
func (c *Client) Session(ctx context.Context) (*SessionInfo, error) {
	var out SessionInfo
	if err := c.do(ctx, "session", http.MethodGet, "/auth/session", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CurrentSession returns the live session, or nil when there is none.
func (c *Client) CurrentSession(ctx context.Context) (*domain.Session, error) {
	if c.token == "" {
		return nil, nil
	}
	info, err := c.Session(ctx)
	if err != nil {
		return nil, err
	}
	switch info.State {
	case domain.StateSignedOut:
		return nil, nil
	case domain.StateUnresolved:
		return nil, &domain.RemoteError{Op: "session", Err: errors.New("session store unavailable")}
	}
	return info.Session, nil
}

// Profile fetches the profile owned by userID through the session endpoint.
func (c *Client) Profile(ctx context.Context, userID string) (*domain.User, error) {
	info, err := c.Session(ctx)
	if err != nil {
		return nil, err
	}
	if info.User == nil || info.User.ID != userID {
		return nil, domain.ErrProfileNotFound
	}
	return info.User, nil
}

// SignIn adapts Login to the session resolver.
func (c *Client) SignIn(ctx context.Context, username, password string) (*domain.Session, error) {
	res, err := c.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return res.Session, nil
}

// SignUp adapts Register to the session resolver.
func (c *Client) SignUp(ctx context.Context, in domain.SignUpInput) error {
	_, err := c.Register(ctx, in)
	return err
}

// SignOut adapts Logout to the session resolver.
func (c *Client) SignOut(ctx context.Context) error {
	return c.Logout(ctx)
}
