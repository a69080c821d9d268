package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/healthtrack/healthtrack-api/internal/core/domain"
)

// mapUniqueViolation translates a unique-index violation into the domain
// error the auth flow expects: the username index maps to ErrUsernameTaken,
// any other unique index (health-id, license-id, phone) to
// ErrIdentifierTaken. Non-constraint errors pass through unchanged.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return err
	}
	if strings.Contains(pgErr.ConstraintName, "username") {
		return domain.ErrUsernameTaken
	}
	return domain.ErrIdentifierTaken
}
