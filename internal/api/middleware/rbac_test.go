package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/winner-security/shift-scheduler/internal/core/domain"
)

func newGuardedContext(state domain.ResolutionState, profile *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(KeyState, state)
	if profile != nil {
		c.Set(KeyProfile, profile)
	}
	return c, rec
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he.Code
}

func TestRequireRole_Allows(t *testing.T) {
	c, rec := newGuardedContext(domain.StateResolved, &domain.User{ID: "a1", Role: domain.RoleAdmin})

	called := false
	handler := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		state   domain.ResolutionState
		profile *domain.User
		want    int
	}{
		{"signed out", domain.StateSignedOut, nil, http.StatusUnauthorized},
		{"unresolved", domain.StateUnresolved, nil, http.StatusServiceUnavailable},
		{"session only", domain.StateSessionOnly, nil, http.StatusServiceUnavailable},
		{"wrong role", domain.StateResolved, &domain.User{ID: "w1", Role: domain.RoleWorker}, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newGuardedContext(tc.state, tc.profile)
			handler := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
				t.Fatalf("should not reach next handler")
				return nil
			})

			err := handler(c)
			if got := httpStatus(t, err); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
			if tc.want == http.StatusServiceUnavailable && rec.Header().Get(echo.HeaderRetryAfter) == "" {
				t.Fatalf("expected Retry-After header while loading")
			}
		})
	}
}

func TestRequireSession(t *testing.T) {
	c, _ := newGuardedContext(domain.StateSignedOut, nil)
	handler := RequireSession()(func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })
	if got := httpStatus(t, handler(c)); got != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", got)
	}

	c, rec := newGuardedContext(domain.StateSessionOnly, nil)
	c.Set(KeySession, &domain.Session{ID: "s1", UserID: "u1"})
	if err := handler(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
