package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/osse101/TaskQuest_Go/internal/config"
	"github.com/osse101/TaskQuest_Go/internal/logger"
)

// SetupLogger initializes the application logger. When LOG_DIR is set output is also
// written to a rotating file there; the returned closer flushes it and may be nil.
func SetupLogger(cfg *config.Config) (io.Closer, error) {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	)

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("failed to create logs directory: %w", err)
		}
		loggerConfig = loggerConfig.WithLogDir(cfg.LogDir)
	}

	closer := logger.InitLogger(loggerConfig)

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat, "log_dir", cfg.LogDir)
	slog.Info(LogMsgStartingTaskQuest,
		"environment", cfg.Environment,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"day_boundary_tz", cfg.DayBoundaryTZ,
		"redis_enabled", cfg.RedisAddr != "")

	return closer, nil
}
