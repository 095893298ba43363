package worker

import "time"

// Log messages - worker pool
const (
	LogMsgWorkerJobFailed    = "Worker job failed"
	LogMsgWorkerJobCompleted = "Worker job completed"
	LogMsgWorkerQueueFull    = "Worker queue full, job skipped"
)

// Log messages - maintenance jobs
const (
	LogMsgActivityCleanupStarting  = "Starting activity log cleanup"
	LogMsgActivityCleanupCompleted = "Activity log cleanup completed"
	LogMsgLeaderboardSyncCompleted = "Leaderboard resync completed"
)

// Job names, used as metric labels
const (
	JobNameActivityLogCleanup = "activity_log_cleanup"
	JobNameLeaderboardSync    = "leaderboard_sync"
)

// DefaultJobTimeout bounds a single job run
const DefaultJobTimeout = 5 * time.Minute

// Error messages
const (
	ErrMsgPruneActivityFailed   = "failed to prune activity log: %w"
	ErrMsgLeaderboardSyncFailed = "failed to resync leaderboard: %w"
)
