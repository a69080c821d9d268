package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/healthtrack/healthtrack-api/internal/core/domain"
)

// PatientRepository implements ports.PatientRepository on PostgreSQL.
type PatientRepository struct {
	db DB
}

func NewPatientRepository(db DB) *PatientRepository {
	return &PatientRepository{db: db}
}

const patientColumns = `id, username, password_hash, name, health_id, phone, created_at, updated_at`

func (r *PatientRepository) Create(ctx context.Context, patient *domain.Patient) (*domain.Patient, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO patients (username, password_hash, name, health_id, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+patientColumns,
		patient.Username,
		patient.PasswordHash,
		nullableString(patient.Name),
		patient.HealthID,
		patient.Phone,
		patient.CreatedAt,
		patient.UpdatedAt,
	)

	created, err := scanPatient(row)
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("insert patient: %w", err)
	}
	return created, nil
}

func (r *PatientRepository) FindByID(ctx context.Context, id int64) (*domain.Patient, error) {
	row := r.db.QueryRow(ctx, `SELECT `+patientColumns+` FROM patients WHERE id = $1`, id)
	return r.findOne(row, "find patient by id")
}

func (r *PatientRepository) FindByUsername(ctx context.Context, username string) (*domain.Patient, error) {
	row := r.db.QueryRow(ctx, `SELECT `+patientColumns+` FROM patients WHERE username = $1`, username)
	return r.findOne(row, "find patient by username")
}

func (r *PatientRepository) findOne(row pgx.Row, op string) (*domain.Patient, error) {
	patient, err := scanPatient(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPrincipalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return patient, nil
}

func (r *PatientRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM patients WHERE username = $1)`, username)
}

func (r *PatientRepository) ExistsByHealthID(ctx context.Context, healthID int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM patients WHERE health_id = $1)`, healthID)
}

func (r *PatientRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM patients WHERE phone = $1)`, phone)
}

func (r *PatientRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, query, arg).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists check: %w", err)
	}
	return exists, nil
}

func scanPatient(row pgx.Row) (*domain.Patient, error) {
	var p domain.Patient
	var name *string
	if err := row.Scan(
		&p.ID, &p.Username, &p.PasswordHash, &name,
		&p.HealthID, &p.Phone, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if name != nil {
		p.Name = *name
	}
	return &p, nil
}

// nullableString turns "" into NULL so empty display names don't occupy the
// column.
func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
