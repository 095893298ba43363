package catalog

import "time"

// Cache configuration
const (
	// CacheSchemaVersion invalidates cached catalogs when the cached structure changes
	CacheSchemaVersion = "1.0"

	// DefaultCacheTTL bounds how stale a cached catalog may be after a reseed
	DefaultCacheTTL = 5 * time.Minute

	catalogCacheKey  = "catalog"
	catalogCacheSize = 1

	catalogSchemaURL = "achievements.schema.json"
)

// Log messages
const (
	LogMsgCatalogSeeded    = "Achievement catalog seeded"
	LogMsgCatalogCacheMiss = "Achievement catalog cache miss, loading from repository"
)

// Error messages
const (
	ErrMsgReadCatalogFile  = "failed to read catalog file: %w"
	ErrMsgParseCatalog     = "failed to parse catalog YAML: %w"
	ErrMsgEmptyCatalog     = "catalog has no achievements"
	ErrMsgMissingID        = "achievement #%d has no id"
	ErrMsgMissingName      = "achievement %q has no name"
	ErrMsgDuplicateID      = "achievement id %q is defined more than once"
	ErrMsgUnknownCondition = "achievement %q has unknown condition type %q"
	ErrMsgNegativeValue    = "achievement %q has a negative condition value"
	ErrMsgNegativeReward   = "achievement %q has a negative xp reward"
	ErrMsgSeedFailed       = "failed to seed achievement catalog: %w"
	ErrMsgLoadSchema       = "failed to load catalog schema: %w"
	ErrMsgSchemaInvalid    = "catalog does not match schema: %s"
)
