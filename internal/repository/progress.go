package repository

import (
	"context"
	"time"

	"github.com/osse101/TaskQuest_Go/internal/domain"
)

// CatalogReader reads the static achievement catalog
type CatalogReader interface {
	GetAchievementCatalog(ctx context.Context) ([]domain.Achievement, error)
}

// CompletionCounter counts a user's completed tasks
type CompletionCounter interface {
	// CountCompletedTasks returns the lifetime completed count and the count completed in [dayStart, dayEnd)
	CountCompletedTasks(ctx context.Context, userID string, dayStart, dayEnd time.Time) (total int, daily int, err error)
}

// AchievementSource is everything the achievement evaluator reads. It never writes.
type AchievementSource interface {
	CatalogReader
	CompletionCounter
}

// Progress defines the data access interface for user progress
type Progress interface {
	AchievementSource

	// GetUserStats returns nil, nil when the user has no stats row yet
	GetUserStats(ctx context.Context, userID string) (*domain.UserStats, error)
	GetOrCreateUserStats(ctx context.Context, userID string) (*domain.UserStats, error)
	GetUnlockedAchievements(ctx context.Context, userID string) ([]domain.UserAchievement, error)
	GetActivityLog(ctx context.Context, userID string, limit int) ([]domain.ActivityLogEntry, error)
	AddStreakFreezes(ctx context.Context, userID string, count int) (*domain.UserStats, error)
	UpsertAchievements(ctx context.Context, achievements []domain.Achievement) error
	GetTopUsersByXP(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)

	BeginTx(ctx context.Context) (ProgressTx, error)
}

// ProgressTx is a progress unit of work. Stats read through it are row-locked until Commit or Rollback.
type ProgressTx interface {
	CompletionCounter

	GetOrCreateUserStatsForUpdate(ctx context.Context, userID string) (*domain.UserStats, error)
	GetUnlockedAchievementIDs(ctx context.Context, userID string) ([]string, error)
	UpdateUserStats(ctx context.Context, stats *domain.UserStats) error
	// InsertUserAchievements skips rows that already exist and returns how many were inserted
	InsertUserAchievements(ctx context.Context, rows []domain.UserAchievement) (int64, error)
	InsertActivityLog(ctx context.Context, entries []domain.ActivityLogEntry) error

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
