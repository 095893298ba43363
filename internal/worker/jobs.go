package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/TaskQuest_Go/internal/leaderboard"
	"github.com/osse101/TaskQuest_Go/internal/logger"
)

// ActivityLogPruner deletes activity log entries older than a cutoff
type ActivityLogPruner interface {
	PruneActivityLog(ctx context.Context, before time.Time) (int64, error)
}

// ActivityLogCleanupJob enforces the activity log retention window
type ActivityLogCleanupJob struct {
	pruner    ActivityLogPruner
	retention time.Duration
	now       func() time.Time
}

// NewActivityLogCleanupJob creates a cleanup job keeping retentionDays of history
func NewActivityLogCleanupJob(pruner ActivityLogPruner, retentionDays int) *ActivityLogCleanupJob {
	return &ActivityLogCleanupJob{
		pruner:    pruner,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		now:       time.Now,
	}
}

func (j *ActivityLogCleanupJob) Name() string { return JobNameActivityLogCleanup }

// Process deletes everything older than now minus the retention window
func (j *ActivityLogCleanupJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	cutoff := j.now().Add(-j.retention)
	log.Info(LogMsgActivityCleanupStarting, "cutoff", cutoff)

	deleted, err := j.pruner.PruneActivityLog(ctx, cutoff)
	if err != nil {
		return fmt.Errorf(ErrMsgPruneActivityFailed, err)
	}

	log.Info(LogMsgActivityCleanupCompleted, "deleted_count", deleted)
	return nil
}

// LeaderboardRebuilder reloads a cached leaderboard from the stats table
type LeaderboardRebuilder interface {
	Rebuild(ctx context.Context, src leaderboard.TopUsersReader, limit int) error
}

// LeaderboardSyncJob repairs drift between the Redis sorted set and user_stats,
// e.g. after a Record call failed.
type LeaderboardSyncJob struct {
	board LeaderboardRebuilder
	src   leaderboard.TopUsersReader
	limit int
}

// NewLeaderboardSyncJob creates a resync job
func NewLeaderboardSyncJob(board LeaderboardRebuilder, src leaderboard.TopUsersReader, limit int) *LeaderboardSyncJob {
	return &LeaderboardSyncJob{board: board, src: src, limit: limit}
}

func (j *LeaderboardSyncJob) Name() string { return JobNameLeaderboardSync }

func (j *LeaderboardSyncJob) Process(ctx context.Context) error {
	if err := j.board.Rebuild(ctx, j.src, j.limit); err != nil {
		return fmt.Errorf(ErrMsgLeaderboardSyncFailed, err)
	}
	logger.FromContext(ctx).Debug(LogMsgLeaderboardSyncCompleted, "limit", j.limit)
	return nil
}
