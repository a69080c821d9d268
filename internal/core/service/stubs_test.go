package service

import (
	"context"
	"time"

	"github.com/healthtrack/healthtrack-api/internal/core/domain"
)

// In-memory credential stores used across the service tests.

type stubPatientRepo struct {
	patients map[string]*domain.Patient
	nextID   int64
	findErr  error
}

func newStubPatientRepo() *stubPatientRepo {
	return &stubPatientRepo{patients: make(map[string]*domain.Patient), nextID: 1}
}

func clonePatient(p *domain.Patient) *domain.Patient {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubPatientRepo) Create(_ context.Context, patient *domain.Patient) (*domain.Patient, error) {
	if _, exists := r.patients[patient.Username]; exists {
		return nil, domain.ErrUsernameTaken
	}
	copy := clonePatient(patient)
	copy.ID = r.nextID
	r.nextID++
	r.patients[copy.Username] = clonePatient(copy)
	return copy, nil
}

func (r *stubPatientRepo) FindByID(_ context.Context, id int64) (*domain.Patient, error) {
	for _, p := range r.patients {
		if p.ID == id {
			return clonePatient(p), nil
		}
	}
	return nil, domain.ErrPrincipalNotFound
}

func (r *stubPatientRepo) FindByUsername(_ context.Context, username string) (*domain.Patient, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	if p, ok := r.patients[username]; ok {
		return clonePatient(p), nil
	}
	return nil, domain.ErrPrincipalNotFound
}

func (r *stubPatientRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := r.patients[username]
	return ok, nil
}

func (r *stubPatientRepo) ExistsByHealthID(_ context.Context, healthID int64) (bool, error) {
	for _, p := range r.patients {
		if p.HealthID != nil && *p.HealthID == healthID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubPatientRepo) ExistsByPhone(_ context.Context, phone string) (bool, error) {
	for _, p := range r.patients {
		if p.Phone != nil && *p.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubPatientRepo) add(username, hash string) *domain.Patient {
	p, _ := r.Create(context.Background(), &domain.Patient{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	})
	return p
}

type stubPractitionerRepo struct {
	practitioners map[string]*domain.Practitioner
	nextID        int64
}

func newStubPractitionerRepo() *stubPractitionerRepo {
	return &stubPractitionerRepo{practitioners: make(map[string]*domain.Practitioner), nextID: 1}
}

func clonePractitioner(d *domain.Practitioner) *domain.Practitioner {
	if d == nil {
		return nil
	}
	clone := *d
	return &clone
}

func (r *stubPractitionerRepo) Create(_ context.Context, practitioner *domain.Practitioner) (*domain.Practitioner, error) {
	if _, exists := r.practitioners[practitioner.Username]; exists {
		return nil, domain.ErrUsernameTaken
	}
	copy := clonePractitioner(practitioner)
	copy.ID = r.nextID
	r.nextID++
	r.practitioners[copy.Username] = clonePractitioner(copy)
	return copy, nil
}

func (r *stubPractitionerRepo) FindByID(_ context.Context, id int64) (*domain.Practitioner, error) {
	for _, d := range r.practitioners {
		if d.ID == id {
			return clonePractitioner(d), nil
		}
	}
	return nil, domain.ErrPrincipalNotFound
}

func (r *stubPractitionerRepo) FindByUsername(_ context.Context, username string) (*domain.Practitioner, error) {
	if d, ok := r.practitioners[username]; ok {
		return clonePractitioner(d), nil
	}
	return nil, domain.ErrPrincipalNotFound
}

func (r *stubPractitionerRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := r.practitioners[username]
	return ok, nil
}

func (r *stubPractitionerRepo) ExistsByLicenseID(_ context.Context, licenseID int64) (bool, error) {
	for _, d := range r.practitioners {
		if d.LicenseID != nil && *d.LicenseID == licenseID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubPractitionerRepo) ExistsByPhone(_ context.Context, phone string) (bool, error) {
	for _, d := range r.practitioners {
		if d.Phone != nil && *d.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubPractitionerRepo) add(username, hash string) *domain.Practitioner {
	d, _ := r.Create(context.Background(), &domain.Practitioner{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	})
	return d
}
