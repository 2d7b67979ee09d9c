package main

import (
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:               "init",
	Short:             "Initialize the database schema and seed data",
	Long:              "Create the meetbot tables, indexes, and demo seed rows. Safe to run more than once.",
	Args:              cobra.NoArgs,
	PersistentPreRunE: initBackendContext,
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Initialization already happened in the pre-run; it is idempotent.
		cmd.PrintErrln("Database initialized")
		return nil
	},
}
