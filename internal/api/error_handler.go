package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/healthtrack/healthtrack-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": ..., "message": ...}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, label, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: label, Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, http.StatusText(he.Code), fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes. ErrInvalidCredentials
	// already covers unknown-username; nothing finer-grained is exposed.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, "Invalid credentials", "invalid username or password"
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusBadRequest, "Registration failed", "username is already taken"
	case errors.Is(err, domain.ErrIdentifierTaken):
		return http.StatusBadRequest, "Registration failed", "identifier is already in use"
	case errors.Is(err, domain.ErrInvalidUserType):
		return http.StatusBadRequest, "Invalid user type", "userType must be USER or DOCTOR"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "Invalid token", "token is expired or invalid"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal error", "internal server error"
}
