package ports

import (
	"context"

	"github.com/healthtrack/healthtrack-api/internal/core/domain"
)

// PatientRepository defines persistence for the patient credential store.
// FindBy* return domain.ErrPrincipalNotFound when no row matches; Create
// maps the store's unique-index violations to domain.ErrUsernameTaken or
// domain.ErrIdentifierTaken.
type PatientRepository interface {
	Create(ctx context.Context, patient *domain.Patient) (*domain.Patient, error)
	FindByID(ctx context.Context, id int64) (*domain.Patient, error)
	FindByUsername(ctx context.Context, username string) (*domain.Patient, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByHealthID(ctx context.Context, healthID int64) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
}

// PractitionerRepository defines persistence for the practitioner credential
// store. Error contract matches PatientRepository.
type PractitionerRepository interface {
	Create(ctx context.Context, practitioner *domain.Practitioner) (*domain.Practitioner, error)
	FindByID(ctx context.Context, id int64) (*domain.Practitioner, error)
	FindByUsername(ctx context.Context, username string) (*domain.Practitioner, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByLicenseID(ctx context.Context, licenseID int64) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
}
