package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/osse101/TaskQuest_Go/internal/config"
	"github.com/osse101/TaskQuest_Go/internal/leaderboard"
)

// InitializeLeaderboard picks the Redis leaderboard when REDIS_ADDR is set and Postgres otherwise.
// The Redis sorted set is rebuilt from user_stats on start; a failed rebuild is logged, not fatal.
// The returned closer is nil for the Postgres backend.
func InitializeLeaderboard(ctx context.Context, cfg *config.Config, src leaderboard.TopUsersReader) (leaderboard.Leaderboard, io.Closer, error) {
	if cfg.RedisAddr == "" {
		slog.Info(LogMsgLeaderboardPostgres)
		return leaderboard.NewPostgresLeaderboard(src), nil, nil
	}

	client, err := leaderboard.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectRedis, err)
	}

	board := leaderboard.NewRedisLeaderboard(client, leaderboard.DefaultKey)

	rebuildCtx, cancel := context.WithTimeout(ctx, leaderboardRebuildTimeout)
	defer cancel()
	if err := board.Rebuild(rebuildCtx, src, leaderboard.RebuildLimit); err != nil {
		slog.Warn(LogMsgLeaderboardRebuildError, "error", err)
	}

	slog.Info(LogMsgLeaderboardRedis, "addr", cfg.RedisAddr, "key", leaderboard.DefaultKey)
	return board, client, nil
}
