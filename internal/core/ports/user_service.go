package ports

import (
	"context"

	"github.com/healthtrack/healthtrack-api/internal/core/domain"
)

// UserService serves profile lookups and pre-registration existence checks.
type UserService interface {
	Profile(ctx context.Context, claims *domain.Claims) (*domain.Profile, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	HealthIDExists(ctx context.Context, healthID int64) (bool, error)
	PhoneExists(ctx context.Context, phone string) (bool, error)
}
