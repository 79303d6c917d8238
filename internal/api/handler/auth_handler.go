package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/winner-security/shift-scheduler/internal/api/metrics"
	"github.com/winner-security/shift-scheduler/internal/api/middleware"
	"github.com/winner-security/shift-scheduler/internal/core/ports"
)

type AuthHandler struct {
	authService  ports.AuthService
	secureCookie bool
}

func NewAuthHandler(authService ports.AuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookie: secureCookie}
}

// Register creates an identity and its profile.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Registration form"
// @Success      201   {object}  signUpResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.authService.SignUp(c.Request().Context(), toSignUpInput(req))
	metrics.AuthAttemptsTotal.WithLabelValues("sign_up", metrics.Outcome(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, signUpResponse{User: toUserResponse(*user)})
}

// Login authenticates a username and password, returning a session token.
// The token is also set as the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Credentials"
// @Success      200   {object}  signInResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	res, err := h.authService.SignIn(c.Request().Context(), req.Username, req.Password)
	metrics.AuthAttemptsTotal.WithLabelValues("sign_in", metrics.Outcome(err)).Inc()
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    res.Token,
		Path:     "/",
		Expires:  res.Session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, signInResponse{
		Token:     res.Token,
		ExpiresAt: res.Session.ExpiresAt,
		Session:   res.Session,
		User:      toUserResponsePtr(res.User),
	})
}

// Logout ends the current session and clears the session cookie.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	session := middleware.Session(c)
	if session == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	if err := h.authService.SignOut(c.Request().Context(), session.ID); err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return c.NoContent(http.StatusNoContent)
}

// Session reports how far the caller's identity is resolved.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200   {object}  sessionResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	return c.JSON(http.StatusOK, sessionResponse{
		State:   middleware.State(c),
		Session: middleware.Session(c),
		User:    toUserResponsePtr(middleware.Profile(c)),
	})
}
