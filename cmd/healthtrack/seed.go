package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/healthtrack/healthtrack-api/internal/core/domain"
	"github.com/healthtrack/healthtrack-api/internal/infrastructure/db/postgres"
)

const defaultSeedTimeout = 30 * time.Second

// NewSeedCmd creates the seed subcommand. It provisions one demo patient and
// one demo practitioner; the store's unique constraints make it safe to run
// repeatedly.
func NewSeedCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create demo accounts for local development",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd, timeout)
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", defaultSeedTimeout, "timeout for database operations")

	return cmd
}

func runSeed(cmd *cobra.Command, timeout time.Duration) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	pool, err := postgres.Connect(ctx, postgres.Config{URL: databaseURL})
	if err != nil {
		return err
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}
	now := time.Now().UTC()

	healthID := int64(123456789)
	patientPhone := "13800138000"
	patients := postgres.NewPatientRepository(pool)
	_, err = patients.Create(ctx, &domain.Patient{
		Username:     "testuser",
		PasswordHash: string(hash),
		Name:         "Test Patient",
		HealthID:     &healthID,
		Phone:        &patientPhone,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	switch {
	case err == nil:
		cmd.Println("created demo patient: testuser / password123")
	case errors.Is(err, domain.ErrUsernameTaken), errors.Is(err, domain.ErrIdentifierTaken):
		cmd.Println("demo patient already exists, skipping")
	default:
		return err
	}

	licenseID := int64(123456789)
	doctorPhone := "13900139000"
	specialization := 1 // internal medicine
	practitioners := postgres.NewPractitionerRepository(pool)
	_, err = practitioners.Create(ctx, &domain.Practitioner{
		Username:       "testdoctor",
		PasswordHash:   string(hash),
		Name:           "Test Doctor",
		LicenseID:      &licenseID,
		Phone:          &doctorPhone,
		Specialization: &specialization,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	switch {
	case err == nil:
		cmd.Println("created demo practitioner: testdoctor / password123")
	case errors.Is(err, domain.ErrUsernameTaken), errors.Is(err, domain.ErrIdentifierTaken):
		cmd.Println("demo practitioner already exists, skipping")
	default:
		return err
	}

	return nil
}
