package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/TaskQuest_Go/internal/bootstrap"
	"github.com/osse101/TaskQuest_Go/internal/catalog"
	"github.com/osse101/TaskQuest_Go/internal/config"
	"github.com/osse101/TaskQuest_Go/internal/database"
	"github.com/osse101/TaskQuest_Go/internal/progress"
	"github.com/osse101/TaskQuest_Go/internal/server"
	"github.com/osse101/TaskQuest_Go/internal/task"
)

// @title TaskQuest API
// @version 1.0
// @description XP, levels, daily streaks and achievements for a to-do app.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}

	logCloser, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to setup logger", "error", err)
		os.Exit(1)
	}
	for _, warning := range warnings {
		slog.Warn("Environment warning", "warning", warning)
	}

	ctx := context.Background()

	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(ctx, dbPool, database.MigrateUp); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	if err := bootstrap.SyncAchievementCatalog(ctx, cfg, repos.Progress); err != nil {
		slog.Error("Failed to sync achievement catalog", "error", err)
		os.Exit(1)
	}
	catalogCache := catalog.NewCachedSource(repos.Progress, cfg.CatalogCacheTTL)

	board, redisClient, err := bootstrap.InitializeLeaderboard(ctx, cfg, repos.Progress)
	if err != nil {
		slog.Error("Failed to initialize leaderboard", "error", err)
		os.Exit(1)
	}

	eventBus, resilientPublisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Failed to initialize event system", "error", err)
		os.Exit(1)
	}
	if err := bootstrap.RegisterEventHandlers(eventBus); err != nil {
		slog.Error("Failed to register event handlers", "error", err)
		os.Exit(1)
	}

	streamHub := bootstrap.InitializeProgressStream(eventBus)

	progressService := progress.NewService(repos.Progress, catalogCache, board, resilientPublisher, cfg.Location())
	taskService := task.NewService(repos.Task, progressService, resilientPublisher)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		CatalogPath:    cfg.CatalogPath,
	}, dbPool, progressService, taskService, board, repos.Progress, catalogCache, streamHub)

	workerPool, sched := bootstrap.StartMaintenance(cfg, repos, board)

	go func() {
		slog.Info("Starting server", "port", cfg.Port)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		StreamHub:          streamHub,
		Server:             srv,
		Scheduler:          sched,
		WorkerPool:         workerPool,
		ResilientPublisher: resilientPublisher,
		RedisClient:        redisClient,
		DBPool:             dbPool,
		LogCloser:          logCloser,
	})
}
