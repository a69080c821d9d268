package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/healthtrack/healthtrack-api/internal/core/domain"
)

// PractitionerRepository implements ports.PractitionerRepository on
// PostgreSQL.
type PractitionerRepository struct {
	db DB
}

func NewPractitionerRepository(db DB) *PractitionerRepository {
	return &PractitionerRepository{db: db}
}

const practitionerColumns = `id, username, password_hash, name, license_id, phone, specialization, is_verified, created_at, updated_at`

func (r *PractitionerRepository) Create(ctx context.Context, practitioner *domain.Practitioner) (*domain.Practitioner, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO practitioners (username, password_hash, name, license_id, phone, specialization, is_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+practitionerColumns,
		practitioner.Username,
		practitioner.PasswordHash,
		nullableString(practitioner.Name),
		practitioner.LicenseID,
		practitioner.Phone,
		practitioner.Specialization,
		practitioner.Verified,
		practitioner.CreatedAt,
		practitioner.UpdatedAt,
	)

	created, err := scanPractitioner(row)
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("insert practitioner: %w", err)
	}
	return created, nil
}

func (r *PractitionerRepository) FindByID(ctx context.Context, id int64) (*domain.Practitioner, error) {
	row := r.db.QueryRow(ctx, `SELECT `+practitionerColumns+` FROM practitioners WHERE id = $1`, id)
	return r.findOne(row, "find practitioner by id")
}

func (r *PractitionerRepository) FindByUsername(ctx context.Context, username string) (*domain.Practitioner, error) {
	row := r.db.QueryRow(ctx, `SELECT `+practitionerColumns+` FROM practitioners WHERE username = $1`, username)
	return r.findOne(row, "find practitioner by username")
}

func (r *PractitionerRepository) findOne(row pgx.Row, op string) (*domain.Practitioner, error) {
	practitioner, err := scanPractitioner(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPrincipalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return practitioner, nil
}

func (r *PractitionerRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM practitioners WHERE username = $1)`, username)
}

func (r *PractitionerRepository) ExistsByLicenseID(ctx context.Context, licenseID int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM practitioners WHERE license_id = $1)`, licenseID)
}

func (r *PractitionerRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM practitioners WHERE phone = $1)`, phone)
}

func (r *PractitionerRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, query, arg).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists check: %w", err)
	}
	return exists, nil
}

func scanPractitioner(row pgx.Row) (*domain.Practitioner, error) {
	var d domain.Practitioner
	var name *string
	if err := row.Scan(
		&d.ID, &d.Username, &d.PasswordHash, &name, &d.LicenseID,
		&d.Phone, &d.Specialization, &d.Verified, &d.CreatedAt, &d.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if name != nil {
		d.Name = *name
	}
	return &d, nil
}
