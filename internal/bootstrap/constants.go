package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755
)

// =============================================================================
// Logger
// =============================================================================

const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingTaskQuest   = "Starting TaskQuest"
	LogMsgConfigurationLoaded = "Configuration loaded"
)

// =============================================================================
// Event System
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the default base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 2 * time.Second

	// EventDefaultDeadLetterPath is the default file path for dead-letter event logging
	EventDefaultDeadLetterPath = "logs/event_deadletter.jsonl"
)

const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgMetricsCollectorRegistered     = "Metrics collector registered"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
	ErrMsgFailedRegisterMetrics          = "failed to register metrics collector"
)

// =============================================================================
// Catalog and Leaderboard
// =============================================================================

const (
	LogMsgSeedingCatalog          = "Seeding achievement catalog..."
	LogMsgCatalogSeedSkipped      = "Achievement catalog seeding disabled, using stored catalog"
	LogMsgLeaderboardRedis        = "Leaderboard backed by Redis"
	LogMsgLeaderboardPostgres     = "Leaderboard backed by Postgres"
	LogMsgLeaderboardRebuildError = "Failed to rebuild Redis leaderboard, continuing with partial data"

	ErrMsgFailedLoadCatalog  = "failed to load achievement catalog"
	ErrMsgFailedSeedCatalog  = "failed to seed achievement catalog"
	ErrMsgFailedConnectRedis = "failed to connect to redis"

	// leaderboardRebuildTimeout bounds the startup rebuild of the Redis sorted set
	leaderboardRebuildTimeout = 30 * time.Second
)

// =============================================================================
// Maintenance
// =============================================================================

const (
	// MaintenanceWorkers is the number of goroutines running background jobs
	MaintenanceWorkers = 2

	// MaintenanceQueueSize is the worker queue depth; a full queue skips the tick
	MaintenanceQueueSize = 8

	LogMsgActivityRetentionOff = "Activity log retention disabled, entries are kept forever"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgStoppingBackgroundJobs     = "Stopping background jobs..."
	LogMsgClosingProgressStreams     = "Closing progress streams..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgRedisCloseFailed           = "Redis client close failed"
	LogMsgLogFileCloseFailed         = "Log file close failed"
)
