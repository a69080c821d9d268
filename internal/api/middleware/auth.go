package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/healthtrack/healthtrack-api/internal/api/handler"
	"github.com/healthtrack/healthtrack-api/internal/api/metrics"
	"github.com/healthtrack/healthtrack-api/internal/core/ports"
)

// Auth verifies the bearer token and injects the claims into context. The
// verifier reports a single opaque failure for expired, tampered and
// malformed tokens alike.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("failure").Inc()
				return err
			}
			metrics.TokenVerificationsTotal.WithLabelValues("success").Inc()

			c.Set(handler.ClaimsKey, claims)

			return next(c)
		}
	}
}
