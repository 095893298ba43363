package leaderboard

import (
	"context"

	"github.com/osse101/TaskQuest_Go/internal/domain"
)

// Leaderboard ranks users by XP
type Leaderboard interface {
	Record(ctx context.Context, userID string, xp int64) error
	Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

// TopUsersReader reads the XP ranking from the stats table
type TopUsersReader interface {
	GetTopUsersByXP(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

// ClampLimit maps a requested page size onto [1, MaxLimit], using DefaultLimit for non-positive values
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// PostgresLeaderboard ranks straight from user_stats. Record is a no-op because
// the stats row written by the progress transaction is already the source.
type PostgresLeaderboard struct {
	repo TopUsersReader
}

// NewPostgresLeaderboard creates a leaderboard backed by the stats table
func NewPostgresLeaderboard(repo TopUsersReader) *PostgresLeaderboard {
	return &PostgresLeaderboard{repo: repo}
}

func (l *PostgresLeaderboard) Record(context.Context, string, int64) error {
	return nil
}

func (l *PostgresLeaderboard) Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	return l.repo.GetTopUsersByXP(ctx, ClampLimit(limit))
}
