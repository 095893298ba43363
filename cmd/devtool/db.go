package main

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/osse101/TaskQuest_Go/internal/config"
	"github.com/osse101/TaskQuest_Go/internal/database"
)

const (
	appName   = "taskquest-devtool"
	flagDBURL = "db-url"
	flagFile  = "file"

	// pool size for one-shot commands
	devtoolMaxConns = 2
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// resolveDBURL prefers --db-url, then DB_URL, then the DB_* variables the server reads
func resolveDBURL(cmd *cobra.Command) string {
	if flagValue, _ := cmd.Flags().GetString(flagDBURL); flagValue != "" {
		return flagValue
	}
	if dbURL := os.Getenv("DB_URL"); dbURL != "" {
		return dbURL
	}
	return database.ConnString(
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "taskquest"),
		getEnv("DB_SSLMODE", "disable"),
	)
}

func redactPassword(dbURL string) string {
	u, err := url.Parse(dbURL)
	if err != nil || u.User == nil {
		return dbURL
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return u.String()
}

func connect(ctx context.Context, cmd *cobra.Command) (*pgxpool.Pool, error) {
	dbURL := resolveDBURL(cmd)
	PrintInfo(cmd.OutOrStdout(), "Connecting to database: %s", redactPassword(dbURL))

	pool, err := database.NewPool(ctx, dbURL, devtoolMaxConns, config.DefaultDBMaxConnIdleTime, config.DefaultDBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return pool, nil
}
