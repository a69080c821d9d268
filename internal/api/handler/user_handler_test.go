package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/healthtrack/healthtrack-api/internal/core/domain"
)

type stubUserService struct {
	profileFn        func(ctx context.Context, claims *domain.Claims) (*domain.Profile, error)
	usernameExistsFn func(ctx context.Context, username string) (bool, error)
	healthIDExistsFn func(ctx context.Context, healthID int64) (bool, error)
	phoneExistsFn    func(ctx context.Context, phone string) (bool, error)
}

func (s *stubUserService) Profile(ctx context.Context, claims *domain.Claims) (*domain.Profile, error) {
	return s.profileFn(ctx, claims)
}

func (s *stubUserService) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.usernameExistsFn(ctx, username)
}

func (s *stubUserService) HealthIDExists(ctx context.Context, healthID int64) (bool, error) {
	return s.healthIDExistsFn(ctx, healthID)
}

func (s *stubUserService) PhoneExists(ctx context.Context, phone string) (bool, error) {
	return s.phoneExistsFn(ctx, phone)
}

func TestUserHandler_Profile_Success(t *testing.T) {
	stub := &stubUserService{
		profileFn: func(_ context.Context, claims *domain.Claims) (*domain.Profile, error) {
			if claims.PrincipalID != 5 || claims.Kind != domain.KindPatient {
				t.Fatalf("unexpected claims: %+v", claims)
			}
			return &domain.Profile{ID: 5, Username: "alice", Role: domain.KindPatient}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/user/profile", "")
	c.Set(ClaimsKey, &domain.Claims{PrincipalID: 5, Kind: domain.KindPatient})

	if err := h.Profile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["username"] != "alice" || resp["role"] != "USER" {
		t.Fatalf("unexpected profile: %+v", resp)
	}
}

func TestUserHandler_Profile_MissingClaims(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newTestContext(t, http.MethodGet, "/api/user/profile", "")
	err := h.Profile(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestUserHandler_CheckUsername(t *testing.T) {
	stub := &stubUserService{
		usernameExistsFn: func(_ context.Context, username string) (bool, error) {
			return username == "bob", nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/user/check-username?username=bob", "")
	if err := h.CheckUsername(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp existsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Exists {
		t.Fatalf("expected exists=true")
	}
}

func TestUserHandler_CheckUsername_MissingParam(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newTestContext(t, http.MethodGet, "/api/user/check-username", "")
	err := h.CheckUsername(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestUserHandler_CheckHealthID(t *testing.T) {
	stub := &stubUserService{
		healthIDExistsFn: func(_ context.Context, healthID int64) (bool, error) {
			return healthID == 99, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/user/check-health-id?healthId=99", "")
	if err := h.CheckHealthID(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp existsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Exists {
		t.Fatalf("expected exists=true")
	}
}

func TestUserHandler_CheckHealthID_NotAnInteger(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newTestContext(t, http.MethodGet, "/api/user/check-health-id?healthId=abc", "")
	err := h.CheckHealthID(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestUserHandler_CheckPhone(t *testing.T) {
	stub := &stubUserService{
		phoneExistsFn: func(_ context.Context, phone string) (bool, error) {
			return false, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/user/check-phone?phone=555", "")
	if err := h.CheckPhone(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp existsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Exists {
		t.Fatalf("expected exists=false")
	}
}
