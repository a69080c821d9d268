package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/healthtrack/healthtrack-api/internal/core/domain"
	"github.com/healthtrack/healthtrack-api/internal/core/ports"
)

// PrincipalResolver dispatches username lookups to the patient or
// practitioner store and normalizes the result into a kind-tagged record.
type PrincipalResolver struct {
	patients      ports.PatientRepository
	practitioners ports.PractitionerRepository
}

func NewPrincipalResolver(patients ports.PatientRepository, practitioners ports.PractitionerRepository) *PrincipalResolver {
	return &PrincipalResolver{patients: patients, practitioners: practitioners}
}

// Resolve looks up username in the store matching kind. A declared kind is
// authoritative: a miss there is a miss, never a fallback to the other store,
// so a patient and a practitioner sharing a username cannot silently resolve
// as the wrong kind. With kind undeclared ("") the patient store wins ties.
// The only error exposed is domain.ErrPrincipalNotFound.
func (r *PrincipalResolver) Resolve(ctx context.Context, username string, kind domain.PrincipalKind) (*domain.Principal, error) {
	switch kind {
	case domain.KindPatient:
		return r.resolvePatient(ctx, username)
	case domain.KindPractitioner:
		return r.resolvePractitioner(ctx, username)
	case "":
		p, err := r.resolvePatient(ctx, username)
		if errors.Is(err, domain.ErrPrincipalNotFound) {
			return r.resolvePractitioner(ctx, username)
		}
		return p, err
	default:
		return nil, domain.ErrInvalidUserType
	}
}

func (r *PrincipalResolver) resolvePatient(ctx context.Context, username string) (*domain.Principal, error) {
	patient, err := r.patients.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrPrincipalNotFound) {
			return nil, domain.ErrPrincipalNotFound
		}
		return nil, fmt.Errorf("resolve patient: %w", err)
	}
	return domain.PatientPrincipal(patient), nil
}

func (r *PrincipalResolver) resolvePractitioner(ctx context.Context, username string) (*domain.Principal, error) {
	practitioner, err := r.practitioners.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrPrincipalNotFound) {
			return nil, domain.ErrPrincipalNotFound
		}
		return nil, fmt.Errorf("resolve practitioner: %w", err)
	}
	return domain.PractitionerPrincipal(practitioner), nil
}
