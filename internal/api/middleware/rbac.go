package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/winner-security/shift-scheduler/internal/core/domain"
	"github.com/winner-security/shift-scheduler/internal/core/guard"
)

// RetryAfterSeconds is sent with 503 responses while a profile is loading.
const RetryAfterSeconds = "1"

// RequireRole enforces role-based access control for JSON routes through
// the navigation guard:
//   - no session → 401
//   - identity still loading → 503 with Retry-After
//   - role outside allowedRoles → 403
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			d := guard.Protect(State(c), Profile(c), allowedRoles...)
			switch d.Action {
			case guard.Render:
				return next(c)
			case guard.Wait:
				c.Response().Header().Set(echo.HeaderRetryAfter, RetryAfterSeconds)
				return echo.NewHTTPError(http.StatusServiceUnavailable, d.Reason)
			}
			if d.Target == guard.LoginPath {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return echo.NewHTTPError(http.StatusForbidden, "forbidden")
		}
	}
}

// RequireSession admits any caller holding a live session, with or without
// a profile.
func RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if Session(c) == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}
