package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/healthtrack/healthtrack-api/internal/core/domain"
)

func TestPractitionerRepository_FindByUsername(t *testing.T) {
	mock := newMockPool(t)
	now := time.Now().UTC()
	licenseID := int64(42)
	specialization := 1
	name := "Dr. Bob"

	mock.ExpectQuery(`SELECT id, username, password_hash, name, license_id, phone, specialization, is_verified, created_at, updated_at FROM practitioners WHERE username = \$1`).
		WithArgs("drbob").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "username", "password_hash", "name", "license_id", "phone", "specialization", "is_verified", "created_at", "updated_at",
		}).AddRow(int64(3), "drbob", "hash", &name, &licenseID, (*string)(nil), &specialization, true, now, now))

	repo := NewPractitionerRepository(mock)
	practitioner, err := repo.FindByUsername(context.Background(), "drbob")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if practitioner.ID != 3 || !practitioner.Verified {
		t.Fatalf("unexpected practitioner: %+v", practitioner)
	}
	if practitioner.LicenseID == nil || *practitioner.LicenseID != 42 {
		t.Fatalf("unexpected license id: %v", practitioner.LicenseID)
	}
	expectationsMet(t, mock)
}

func TestPractitionerRepository_FindByID_NotFound(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery(`SELECT .+ FROM practitioners WHERE id = \$1`).
		WithArgs(int64(9)).
		WillReturnError(pgx.ErrNoRows)

	repo := NewPractitionerRepository(mock)
	if _, err := repo.FindByID(context.Background(), 9); !errors.Is(err, domain.ErrPrincipalNotFound) {
		t.Fatalf("expected ErrPrincipalNotFound, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestPractitionerRepository_Create_MapsLicenseViolation(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery(`INSERT INTO practitioners`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "practitioners_license_id_key"})

	repo := NewPractitionerRepository(mock)
	now := time.Now().UTC()
	licenseID := int64(42)
	_, err := repo.Create(context.Background(), &domain.Practitioner{
		Username: "drbob", PasswordHash: "hash", LicenseID: &licenseID, CreatedAt: now, UpdatedAt: now,
	})
	if !errors.Is(err, domain.ErrIdentifierTaken) {
		t.Fatalf("expected ErrIdentifierTaken, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestPractitionerRepository_ExistsByLicenseID(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM practitioners WHERE license_id = \$1\)`).
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	repo := NewPractitionerRepository(mock)
	exists, err := repo.ExistsByLicenseID(context.Background(), 42)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if exists {
		t.Fatalf("expected exists=false")
	}
	expectationsMet(t, mock)
}
