package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the HealthTrack CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "healthtrack",
		Short: "HealthTrack - clinic authentication and profile API",
		Long: `HealthTrack is a clinic-style REST backend where patients and
practitioners register, authenticate, and fetch their profile data.`,
	}

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewSeedCmd())

	return cmd
}
