package bootstrap

import (
	"context"
	"io"
	"log/slog"

	"github.com/osse101/TaskQuest_Go/internal/database"
	"github.com/osse101/TaskQuest_Go/internal/event"
	"github.com/osse101/TaskQuest_Go/internal/scheduler"
	"github.com/osse101/TaskQuest_Go/internal/server"
	"github.com/osse101/TaskQuest_Go/internal/sse"
	"github.com/osse101/TaskQuest_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	StreamHub          *sse.Hub
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	WorkerPool         *worker.Pool
	ResilientPublisher *event.ResilientPublisher
	RedisClient        io.Closer
	DBPool             database.Pool
	LogCloser          io.Closer
}

// GracefulShutdown closes open progress streams so the HTTP server can drain, stops the
// server, then background jobs, then flushes pending events and releases connections.
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.StreamHub != nil {
		slog.Info(LogMsgClosingProgressStreams)
		components.StreamHub.Stop()
	}

	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil || components.WorkerPool != nil {
		slog.Info(LogMsgStoppingBackgroundJobs)
	}
	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if components.RedisClient != nil {
		if err := components.RedisClient.Close(); err != nil {
			slog.Error(LogMsgRedisCloseFailed, "error", err)
		}
	}

	if components.DBPool != nil {
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)

	if components.LogCloser != nil {
		if err := components.LogCloser.Close(); err != nil {
			slog.Error(LogMsgLogFileCloseFailed, "error", err)
		}
	}
}
