package bootstrap

import (
	"log/slog"

	"github.com/osse101/TaskQuest_Go/internal/config"
	"github.com/osse101/TaskQuest_Go/internal/event"
	"github.com/osse101/TaskQuest_Go/internal/leaderboard"
	"github.com/osse101/TaskQuest_Go/internal/scheduler"
	"github.com/osse101/TaskQuest_Go/internal/sse"
	"github.com/osse101/TaskQuest_Go/internal/worker"
)

// StartMaintenance starts the worker pool and schedules the periodic jobs:
// activity log retention, and a Redis leaderboard resync when the board supports it.
func StartMaintenance(cfg *config.Config, repos *Repositories, board leaderboard.Leaderboard) (*worker.Pool, *scheduler.Scheduler) {
	pool := worker.NewPool(MaintenanceWorkers, MaintenanceQueueSize)
	pool.Start()

	sched := scheduler.New(pool)

	if cfg.ActivityLogRetentionDays > 0 {
		sched.Schedule(cfg.ActivityCleanupInterval,
			worker.NewActivityLogCleanupJob(repos.Progress, cfg.ActivityLogRetentionDays))
	} else {
		slog.Info(LogMsgActivityRetentionOff)
	}

	if rebuilder, ok := board.(worker.LeaderboardRebuilder); ok {
		sched.Schedule(cfg.LeaderboardSyncInterval,
			worker.NewLeaderboardSyncJob(rebuilder, repos.Progress, leaderboard.RebuildLimit))
	}

	return pool, sched
}

// InitializeProgressStream starts the SSE hub and subscribes it to progress events
func InitializeProgressStream(eventBus event.Bus) *sse.Hub {
	hub := sse.NewHub()
	hub.Start()
	sse.NewSubscriber(hub, eventBus).Subscribe()
	return hub
}
