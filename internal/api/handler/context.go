package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthtrack/healthtrack-api/internal/core/domain"
)

// ClaimsKey is the echo context key under which the Auth middleware stores
// the verified token claims.
const ClaimsKey = "auth_claims"

// ctxClaims extracts the claims injected by the Auth middleware. Their
// presence proves the middleware ran; a handler reached without them is a
// routing mistake and fails closed with 401.
func ctxClaims(c echo.Context) (*domain.Claims, error) {
	claims, ok := c.Get(ClaimsKey).(*domain.Claims)
	if !ok || claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
