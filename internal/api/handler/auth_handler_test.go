package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/winner-security/shift-scheduler/internal/api/middleware"
	"github.com/winner-security/shift-scheduler/internal/core/domain"
	"github.com/winner-security/shift-scheduler/internal/core/ports"
)

type stubAuthService struct {
	signUpFn  func(ctx context.Context, input domain.SignUpInput) (*domain.User, error)
	signInFn  func(ctx context.Context, username, password string) (*ports.SignInResult, error)
	signOutFn func(ctx context.Context, sessionID string) error
}

func (s *stubAuthService) SignUp(ctx context.Context, input domain.SignUpInput) (*domain.User, error) {
	return s.signUpFn(ctx, input)
}

func (s *stubAuthService) SignIn(ctx context.Context, username, password string) (*ports.SignInResult, error) {
	return s.signInFn(ctx, username, password)
}

func (s *stubAuthService) SignOut(ctx context.Context, sessionID string) error {
	return s.signOutFn(ctx, sessionID)
}

func (s *stubAuthService) ResolveSession(context.Context, string) (*domain.Session, error) {
	return nil, domain.ErrSessionNotFound
}

func (s *stubAuthService) ResolveProfile(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrProfileNotFound
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, input domain.SignUpInput) (*domain.User, error) {
			if input.Username != "marko" || input.DisplayName != "Marko Marković" || input.Password != "secret" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: "u1", Name: input.DisplayName, Role: domain.RoleWorker}, nil
		},
	}
	handler := NewAuthHandler(stub, false)

	req := jsonRequest(http.MethodPost, "/auth/register", `{"username":"marko","password":"secret","name":"Marko Marković"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["id"] != "u1" || user["role"] != "worker" {
		t.Fatalf("unexpected user payload: %+v", resp)
	}
}

func TestAuthHandler_Register_AlreadyRegistered(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, input domain.SignUpInput) (*domain.User, error) {
			return nil, domain.ErrAlreadyRegistered
		},
	}
	handler := NewAuthHandler(stub, false)

	c := e.NewContext(jsonRequest(http.MethodPost, "/auth/register", `{"username":"bob","password":"secret","name":"Bob"}`), httptest.NewRecorder())

	if err := handler.Register(c); !errors.Is(err, domain.ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, input domain.SignUpInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, false)

	c := e.NewContext(jsonRequest(http.MethodPost, "/auth/register", "not-json"), httptest.NewRecorder())

	var he *echo.HTTPError
	if err := handler.Register(c); !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	expires := time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC)
	stub := &stubAuthService{
		signInFn: func(ctx context.Context, username, password string) (*ports.SignInResult, error) {
			if username != "marko" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return &ports.SignInResult{
				Token:   "token123",
				Session: &domain.Session{ID: "s1", UserID: "u1", ExpiresAt: expires},
				User:    &domain.User{ID: "u1", Name: "Marko", Role: domain.RoleAdmin},
			}, nil
		},
	}
	handler := NewAuthHandler(stub, true)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/auth/login", `{"username":"marko","password":"secret"}`), rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["role"] != "admin" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}

	cookie := rec.Result().Cookies()
	if len(cookie) != 1 || cookie[0].Name != middleware.SessionCookie || cookie[0].Value != "token123" || !cookie[0].HttpOnly {
		t.Fatalf("expected session cookie, got %+v", cookie)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		signInFn: func(ctx context.Context, username, password string) (*ports.SignInResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub, false)

	c := e.NewContext(jsonRequest(http.MethodPost, "/auth/login", `{"username":"marko","password":"bad"}`), httptest.NewRecorder())

	if err := handler.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		signInFn: func(ctx context.Context, username, password string) (*ports.SignInResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, false)

	c := e.NewContext(jsonRequest(http.MethodPost, "/auth/login", `{"username":"marko"}`), httptest.NewRecorder())

	err := handler.Login(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "password" {
		t.Fatalf("expected ValidationError on password, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := newTestEcho()
	var signedOut string
	stub := &stubAuthService{
		signOutFn: func(ctx context.Context, sessionID string) error {
			signedOut = sessionID
			return nil
		},
	}
	handler := NewAuthHandler(stub, false)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/auth/logout", nil), rec)
	c.Set(middleware.KeySession, &domain.Session{ID: "s1", UserID: "u1"})

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if signedOut != "s1" {
		t.Fatalf("expected session s1 signed out, got %q", signedOut)
	}
	if cookies := rec.Result().Cookies(); len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected cleared cookie, got %+v", cookies)
	}
}

func TestAuthHandler_Session(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{}, false)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/auth/session", nil), rec)
	c.Set(middleware.KeyState, domain.StateSessionOnly)
	c.Set(middleware.KeySession, &domain.Session{ID: "s1", UserID: "u1"})

	if err := handler.Session(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["state"] != "session_only" {
		t.Fatalf("unexpected state: %v", resp["state"])
	}
	if _, ok := resp["user"]; ok {
		t.Fatalf("expected no user while the profile is unresolved")
	}
}
