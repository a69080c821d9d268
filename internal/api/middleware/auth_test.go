package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/healthtrack/healthtrack-api/internal/api/handler"
	"github.com/healthtrack/healthtrack-api/internal/core/domain"
)

type stubVerifier struct {
	claims *domain.Claims
	err    error
}

func (s *stubVerifier) Verify(string) (*domain.Claims, error) {
	return s.claims, s.err
}

func invokeAuth(t *testing.T, verifier *stubVerifier, authHeader string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	return c, Auth(verifier)(next)(c)
}

func TestAuth_MissingHeader(t *testing.T) {
	_, err := invokeAuth(t, &stubVerifier{}, "")
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	_, err := invokeAuth(t, &stubVerifier{}, "Basic abc123")
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	verifier := &stubVerifier{err: domain.ErrInvalidToken}
	_, err := invokeAuth(t, verifier, "Bearer bad-token")
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuth_ValidTokenInjectsClaims(t *testing.T) {
	claims := &domain.Claims{PrincipalID: 3, Kind: domain.KindPractitioner, Username: "drbob"}
	c, err := invokeAuth(t, &stubVerifier{claims: claims}, "Bearer good-token")
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}

	got, ok := c.Get(handler.ClaimsKey).(*domain.Claims)
	if !ok || got.PrincipalID != 3 || got.Kind != domain.KindPractitioner {
		t.Fatalf("unexpected claims in context: %+v", got)
	}
}

func TestAuth_BearerPrefixIsCaseInsensitive(t *testing.T) {
	claims := &domain.Claims{PrincipalID: 1, Kind: domain.KindPatient}
	if _, err := invokeAuth(t, &stubVerifier{claims: claims}, "bearer good-token"); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
}
