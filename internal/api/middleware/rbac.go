package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthtrack/healthtrack-api/internal/api/handler"
	"github.com/healthtrack/healthtrack-api/internal/core/domain"
)

// RequireKind restricts a route to the given principal kinds. It must run
// after Auth, which is what puts the claims into context.
func RequireKind(allowedKinds ...domain.PrincipalKind) echo.MiddlewareFunc {
	allowed := make(map[domain.PrincipalKind]struct{}, len(allowedKinds))
	for _, k := range allowedKinds {
		allowed[k] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(handler.ClaimsKey).(*domain.Claims)
			if !ok || claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if _, ok := allowed[claims.Kind]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
