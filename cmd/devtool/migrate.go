package main

import (
	"github.com/spf13/cobra"

	"github.com/osse101/TaskQuest_Go/internal/database"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations (up, down, status)",
	}

	for _, sub := range []struct {
		name  string
		short string
	}{
		{database.MigrateUp, "Apply all pending migrations"},
		{database.MigrateDown, "Roll back the most recent migration"},
		{database.MigrateStatus, "Print the migration status"},
	} {
		command := sub.name
		cmd.AddCommand(&cobra.Command{
			Use:   command,
			Short: sub.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runMigrate(cmd, command)
			},
		})
	}

	return cmd
}

func runMigrate(cmd *cobra.Command, command string) error {
	ctx := cmd.Context()
	pool, err := connect(ctx, cmd)
	if err != nil {
		return err
	}
	defer pool.Close()

	PrintHeader(cmd.OutOrStdout(), "Running migrations: "+command)
	if command == database.MigrateDown {
		PrintWarning(cmd.OutOrStdout(), "Rolling back the most recent migration")
	}
	if err := database.Migrate(ctx, pool, command); err != nil {
		return err
	}

	PrintSuccess(cmd.OutOrStdout(), "Migration %s complete", command)
	return nil
}
