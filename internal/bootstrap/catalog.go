package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/TaskQuest_Go/internal/catalog"
	"github.com/osse101/TaskQuest_Go/internal/config"
)

// SyncAchievementCatalog upserts the seed catalog when SEED_CATALOG is enabled.
// An empty CATALOG_PATH seeds the catalog compiled into the binary.
func SyncAchievementCatalog(ctx context.Context, cfg *config.Config, repo catalog.Seeder) error {
	if !cfg.SeedCatalog {
		slog.Info(LogMsgCatalogSeedSkipped)
		return nil
	}

	slog.Info(LogMsgSeedingCatalog, "path", cfg.CatalogPath)
	achievements, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	if err := catalog.Seed(ctx, repo, achievements); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSeedCatalog, err)
	}
	return nil
}
