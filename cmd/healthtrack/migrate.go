package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/healthtrack/healthtrack-api/internal/infrastructure/db/postgres"
)

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd, func(m *postgres.Migrator) error {
				if err := m.Up(); err != nil {
					return err
				}
				cmd.Println("migrations applied")
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back all migrations (drops the credential tables)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd, func(m *postgres.Migrator) error {
				if err := m.Down(); err != nil {
					return err
				}
				cmd.Println("migrations rolled back")
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd, func(m *postgres.Migrator) error {
				version, dirty, err := m.Version()
				if err != nil {
					return err
				}
				cmd.Printf("version: %d dirty: %t\n", version, dirty)
				return nil
			})
		},
	})

	return cmd
}

func withMigrator(_ *cobra.Command, fn func(*postgres.Migrator) error) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	m, err := postgres.NewMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	return fn(m)
}
