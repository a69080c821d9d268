package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/healthtrack/healthtrack-api/internal/api/metrics"
	"github.com/healthtrack/healthtrack-api/internal/core/domain"
	"github.com/healthtrack/healthtrack-api/internal/core/ports"
)

// AuthService orchestrates login and registration over the two credential
// stores. The declared kind is carried as an explicit parameter on every
// call; no per-request state outlives the request.
type AuthService struct {
	resolver      ports.PrincipalResolver
	patients      ports.PatientRepository
	practitioners ports.PractitionerRepository
	issuer        *TokenIssuer
	log           zerolog.Logger
}

func NewAuthService(
	resolver ports.PrincipalResolver,
	patients ports.PatientRepository,
	practitioners ports.PractitionerRepository,
	issuer *TokenIssuer,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		resolver:      resolver,
		patients:      patients,
		practitioners: practitioners,
		issuer:        issuer,
		log:           log,
	}
}

// Login resolves the username, verifies the password and issues a token.
// Resolution failure and verification failure both come back as
// ErrInvalidCredentials so a caller cannot tell whether the username exists.
func (s *AuthService) Login(ctx context.Context, username, password, declaredType string) (string, *domain.Principal, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	kind := domain.PrincipalKind("")
	if declaredType != "" {
		parsed, err := domain.ParseKind(declaredType)
		if err != nil {
			return "", nil, err
		}
		kind = parsed
	}

	principal, err := s.resolver.Resolve(ctx, username, kind)
	if err != nil {
		if errors.Is(err, domain.ErrPrincipalNotFound) {
			metrics.LoginAttemptsTotal.WithLabelValues("failure", string(kind)).Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(principal.PasswordHash), []byte(password)) != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure", string(principal.Kind)).Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(principal)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success", string(principal.Kind)).Inc()
	return token, principal, nil
}

// Register creates a principal in the store named by in.UserType, then runs
// the Login flow with the same credentials so the client gets a token in one
// round trip. Username uniqueness is checked only within the target store;
// the other kind may hold the same username.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (string, *domain.Principal, error) {
	if in.Username == "" || in.Password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	kind, err := domain.ParseKind(in.UserType)
	if err != nil {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	switch kind {
	case domain.KindPatient:
		err = s.createPatient(ctx, in, string(hash))
	case domain.KindPractitioner:
		err = s.createPractitioner(ctx, in, string(hash))
	}
	if err != nil {
		return "", nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(kind)).Inc()
	s.log.Info().Str("username", in.Username).Str("kind", string(kind)).Msg("principal registered")

	return s.Login(ctx, in.Username, in.Password, in.UserType)
}

func (s *AuthService) createPatient(ctx context.Context, in ports.RegisterInput, hash string) error {
	exists, err := s.patients.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if exists {
		return domain.ErrUsernameTaken
	}

	now := time.Now().UTC()
	_, err = s.patients.Create(ctx, &domain.Patient{
		Username:     in.Username,
		PasswordHash: hash,
		Name:         in.Name,
		HealthID:     in.HealthID,
		Phone:        in.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	return err
}

func (s *AuthService) createPractitioner(ctx context.Context, in ports.RegisterInput, hash string) error {
	exists, err := s.practitioners.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if exists {
		return domain.ErrUsernameTaken
	}

	now := time.Now().UTC()
	_, err = s.practitioners.Create(ctx, &domain.Practitioner{
		Username:       in.Username,
		PasswordHash:   hash,
		Name:           in.Name,
		LicenseID:      in.LicenseID,
		Phone:          in.Phone,
		Specialization: in.Specialization,
		Verified:       false,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	return err
}
