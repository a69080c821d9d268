package service

import (
	"context"
	"fmt"

	"github.com/healthtrack/healthtrack-api/internal/core/domain"
	"github.com/healthtrack/healthtrack-api/internal/core/ports"
)

// UserService serves profile reads and the pre-registration existence checks
// the signup form polls.
type UserService struct {
	patients      ports.PatientRepository
	practitioners ports.PractitionerRepository
}

func NewUserService(patients ports.PatientRepository, practitioners ports.PractitionerRepository) *UserService {
	return &UserService{patients: patients, practitioners: practitioners}
}

// Profile loads the caller's own record, dispatching on the kind embedded in
// the verified token claims.
func (s *UserService) Profile(ctx context.Context, claims *domain.Claims) (*domain.Profile, error) {
	switch claims.Kind {
	case domain.KindPatient:
		patient, err := s.patients.FindByID(ctx, claims.PrincipalID)
		if err != nil {
			return nil, err
		}
		return &domain.Profile{
			ID:        patient.ID,
			Username:  patient.Username,
			Name:      patient.Name,
			Role:      domain.KindPatient,
			Phone:     patient.Phone,
			HealthID:  patient.HealthID,
			CreatedAt: patient.CreatedAt,
		}, nil
	case domain.KindPractitioner:
		practitioner, err := s.practitioners.FindByID(ctx, claims.PrincipalID)
		if err != nil {
			return nil, err
		}
		verified := practitioner.Verified
		return &domain.Profile{
			ID:             practitioner.ID,
			Username:       practitioner.Username,
			Name:           practitioner.Name,
			Role:           domain.KindPractitioner,
			Phone:          practitioner.Phone,
			LicenseID:      practitioner.LicenseID,
			Specialization: practitioner.Specialization,
			Verified:       &verified,
			CreatedAt:      practitioner.CreatedAt,
		}, nil
	default:
		return nil, domain.ErrInvalidUserType
	}
}

// UsernameExists reports whether either store holds the username. Usernames
// are unique per store, not globally, so a hit in either one counts.
func (s *UserService) UsernameExists(ctx context.Context, username string) (bool, error) {
	exists, err := s.patients.ExistsByUsername(ctx, username)
	if err != nil {
		return false, fmt.Errorf("check patient username: %w", err)
	}
	if exists {
		return true, nil
	}
	exists, err = s.practitioners.ExistsByUsername(ctx, username)
	if err != nil {
		return false, fmt.Errorf("check practitioner username: %w", err)
	}
	return exists, nil
}

// HealthIDExists checks the patient store only; health-ids belong to patients.
func (s *UserService) HealthIDExists(ctx context.Context, healthID int64) (bool, error) {
	return s.patients.ExistsByHealthID(ctx, healthID)
}

// PhoneExists checks both stores.
func (s *UserService) PhoneExists(ctx context.Context, phone string) (bool, error) {
	exists, err := s.patients.ExistsByPhone(ctx, phone)
	if err != nil {
		return false, fmt.Errorf("check patient phone: %w", err)
	}
	if exists {
		return true, nil
	}
	exists, err = s.practitioners.ExistsByPhone(ctx, phone)
	if err != nil {
		return false, fmt.Errorf("check practitioner phone: %w", err)
	}
	return exists, nil
}
