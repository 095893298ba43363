package config

import "time"

// Defaults
const (
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultServiceName       = "taskquest"
	DefaultVersion           = "dev"
	DefaultDBName            = "taskquest"
	DefaultDBSSLMode         = "disable"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultDayBoundaryTZ     = "UTC"
	DefaultCatalogCacheTTL   = 5 * time.Minute
	DefaultRateLimitRPS      = 10.0
	DefaultRateLimitBurst    = 20
	DefaultDeadLetterPath    = "deadletter.jsonl"
	DefaultEventMaxRetries   = 5
	DefaultEventRetryDelay   = 2 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second

	DefaultActivityLogRetentionDays = 90
	DefaultActivityCleanupInterval  = time.Hour
	DefaultLeaderboardSyncInterval  = 10 * time.Minute
)

// Configuration file paths
const (
	ConfigPathAchievements = "configs/achievements.yaml"
)
