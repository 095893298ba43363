package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/TaskQuest_Go/internal/catalog"
	"github.com/osse101/TaskQuest_Go/internal/config"
	"github.com/osse101/TaskQuest_Go/internal/database/postgres"
)

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Upsert the achievement catalog",
		Long: `Validate and upsert the achievement catalog.

Without --file the catalog compiled into the binary is used.
Existing achievements are updated in place and their order follows the file.`,
		Args: cobra.NoArgs,
		RunE: runSeed,
	}

	cmd.Flags().StringP(flagFile, "f", "", "YAML catalog file to seed instead of the built-in catalog (e.g. "+config.ConfigPathAchievements+")")

	return cmd
}

func runSeed(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString(flagFile)

	achievements, err := catalog.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	ctx := cmd.Context()
	pool, err := connect(ctx, cmd)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := catalog.Seed(ctx, postgres.NewProgressRepository(pool), achievements); err != nil {
		return err
	}

	PrintSuccess(cmd.OutOrStdout(), "Seeded %d achievements", len(achievements))
	return nil
}
