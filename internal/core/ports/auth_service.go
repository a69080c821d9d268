package ports

import (
	"context"

	"github.com/healthtrack/healthtrack-api/internal/core/domain"
)

// RegisterInput carries everything a registration request may declare.
// Kind-specific fields are ignored for the other kind.
type RegisterInput struct {
	Username       string
	Password       string
	UserType       string
	Name           string
	HealthID       *int64
	LicenseID      *int64
	Phone          *string
	Specialization *int
}

// AuthService composes resolution, password verification and token issuance.
//
// declaredType gates Login's resolution: when non-empty it must name a valid
// kind and only that store is consulted. It is threaded explicitly through
// every call so nothing about the request survives past the return.
type AuthService interface {
	Login(ctx context.Context, username, password, declaredType string) (string, *domain.Principal, error)
	Register(ctx context.Context, in RegisterInput) (string, *domain.Principal, error)
}

// PrincipalResolver maps a username (and an optionally declared kind) onto
// one of the two credential stores. kind == "" means undeclared: the patient
// store is consulted first, then the practitioner store. The only failure it
// reports is domain.ErrPrincipalNotFound, regardless of which store missed.
type PrincipalResolver interface {
	Resolve(ctx context.Context, username string, kind domain.PrincipalKind) (*domain.Principal, error)
}

// TokenVerifier checks a bearer token and returns its claims. Every failure
// is domain.ErrInvalidToken.
type TokenVerifier interface {
	Verify(token string) (*domain.Claims, error)
}
