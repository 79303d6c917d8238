package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/winner-security/shift-scheduler/internal/core/domain"
	"github.com/winner-security/shift-scheduler/internal/core/guard"
)

// DecideFunc is one of the guard entry points.
type DecideFunc func(state domain.ResolutionState, profile *domain.User) guard.Decision

// loadingResponse is rendered while the identity is still being resolved.
type loadingResponse struct {
	State  domain.ResolutionState `json:"state"`
	Reason string                 `json:"reason"`
}

// ViewGuard applies a navigation decision to a page route: redirects become
// 302s and waits become a 202 loading body. The page handler only runs on
// render.
func ViewGuard(decide DecideFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state := State(c)
			d := decide(state, Profile(c))
			switch d.Action {
			case guard.Redirect:
				return c.Redirect(http.StatusFound, d.Target)
			case guard.Wait:
				c.Response().Header().Set(echo.HeaderRetryAfter, RetryAfterSeconds)
				return c.JSON(http.StatusAccepted, loadingResponse{State: state, Reason: d.Reason})
			}
			return next(c)
		}
	}
}

// ProtectView is a DecideFunc restricting a page to the given roles.
func ProtectView(allowedRoles ...domain.Role) DecideFunc {
	return func(state domain.ResolutionState, profile *domain.User) guard.Decision {
		return guard.Protect(state, profile, allowedRoles...)
	}
}
