package catalog

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/TaskQuest_Go/internal/domain"
	"github.com/osse101/TaskQuest_Go/internal/logger"
)

//go:embed achievements.yaml
var defaultCatalog []byte

// File is the on-disk shape of a catalog seed file
type File struct {
	Version      int                  `yaml:"version"`
	Achievements []domain.Achievement `yaml:"achievements"`
}

// Seeder writes the catalog to storage
type Seeder interface {
	UpsertAchievements(ctx context.Context, achievements []domain.Achievement) error
}

// Default returns the catalog compiled into the binary
func Default() ([]domain.Achievement, error) {
	return Parse(defaultCatalog)
}

// LoadFile reads and validates a catalog seed file
func LoadFile(path string) ([]domain.Achievement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFile, err)
	}
	return Parse(data)
}

// Load returns the catalog at path, or the built-in catalog when path is empty
func Load(path string) ([]domain.Achievement, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Parse checks a catalog seed file against the schema, decodes it and validates it
func Parse(data []byte) ([]domain.Achievement, error) {
	if err := ValidateSchema(data); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgParseCatalog, domain.ErrInvalidInput, err)
	}
	if err := Validate(f.Achievements); err != nil {
		return nil, err
	}
	return f.Achievements, nil
}

// Validate reports every problem in the catalog at once
func Validate(achievements []domain.Achievement) error {
	if len(achievements) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyCatalog)
	}

	var errs []error
	seen := make(map[string]struct{}, len(achievements))
	for i, a := range achievements {
		if a.ID == "" {
			errs = append(errs, fmt.Errorf(ErrMsgMissingID, i+1))
			continue
		}
		if _, dup := seen[a.ID]; dup {
			errs = append(errs, fmt.Errorf(ErrMsgDuplicateID, a.ID))
		}
		seen[a.ID] = struct{}{}

		if a.Name == "" {
			errs = append(errs, fmt.Errorf(ErrMsgMissingName, a.ID))
		}
		if !a.ConditionType.IsKnown() {
			errs = append(errs, fmt.Errorf(ErrMsgUnknownCondition, a.ID, a.ConditionType))
		}
		if a.ConditionValue < 0 {
			errs = append(errs, fmt.Errorf(ErrMsgNegativeValue, a.ID))
		}
		if a.XPReward < 0 {
			errs = append(errs, fmt.Errorf(ErrMsgNegativeReward, a.ID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, errors.Join(errs...))
	}
	return nil
}

// Seed validates the catalog and upserts it in order
func Seed(ctx context.Context, repo Seeder, achievements []domain.Achievement) error {
	if err := Validate(achievements); err != nil {
		return err
	}
	if err := repo.UpsertAchievements(ctx, achievements); err != nil {
		return fmt.Errorf(ErrMsgSeedFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgCatalogSeeded, "count", len(achievements))
	return nil
}
