package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/winner-security/shift-scheduler/internal/core/domain"
)

// Error codes carried in the envelope next to the message. Clients branch on
// these, never on the message text.
const (
	CodeValidation         = "validation"
	CodeInvalidCredentials = "invalid_credentials"
	CodeAlreadyRegistered  = "already_registered"
	CodeConflict           = "conflict"
	CodeRemote             = "remote"
	CodeNotFound           = "not_found"
	CodeInvalidTransition  = "invalid_transition"
	CodeUnauthorized       = "unauthorized"
	CodeForbidden          = "forbidden"
	CodeLoading            = "loading"
	CodeBadRequest         = "bad_request"
	CodeInternal           = "internal"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	Field string `json:"field,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Passes store failures through with their original message.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>", "code": "<code>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, guard rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message), Code: codeForStatus(he.Code)}
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusUnprocessableEntity, errorResponse{Error: ve.Message, Code: CodeValidation, Field: ve.Field}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Error: "Invalid login credentials", Code: CodeInvalidCredentials}
	case errors.Is(err, domain.ErrAlreadyRegistered):
		return http.StatusConflict, errorResponse{Error: "User already registered", Code: CodeAlreadyRegistered}
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, errorResponse{Error: domain.ErrConflict.Error(), Code: CodeConflict}
	case errors.Is(err, domain.ErrShiftNotFound):
		return http.StatusNotFound, errorResponse{Error: "shift not found", Code: CodeNotFound}
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound, errorResponse{Error: "user not found", Code: CodeNotFound}
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusUnauthorized, errorResponse{Error: "session not found", Code: CodeUnauthorized}
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Code: CodeInvalidTransition}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorResponse{Error: "access forbidden", Code: CodeForbidden}
	case errors.Is(err, domain.ErrRemote):
		log.Warn().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("store error")
		return http.StatusBadGateway, errorResponse{Error: err.Error(), Code: CodeRemote}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error", Code: CodeInternal}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeBadRequest
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusUnprocessableEntity:
		return CodeValidation
	case http.StatusServiceUnavailable:
		return CodeLoading
	}
	return CodeInternal
}
