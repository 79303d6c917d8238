package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/winner-security/shift-scheduler/internal/api/middleware"
	"github.com/winner-security/shift-scheduler/internal/core/domain"
)

// ctxProfile returns the profile resolved by the Resolve middleware and
// fails fast when it is missing. Guarded routes always have one; reaching a
// handler without it means the route was wired without its guard.
func ctxProfile(c echo.Context) (*domain.User, error) {
	profile := middleware.Profile(c)
	if profile == nil || profile.ID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authenticated profile")
	}
	return profile, nil
}
