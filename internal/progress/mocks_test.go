package progress

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/TaskQuest_Go/internal/domain"
	"github.com/osse101/TaskQuest_Go/internal/event"
	"github.com/osse101/TaskQuest_Go/internal/repository"
)

// MockRepository implements repository.Progress
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetAchievementCatalog(ctx context.Context) ([]domain.Achievement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Achievement), args.Error(1)
}

func (m *MockRepository) CountCompletedTasks(ctx context.Context, userID string, dayStart, dayEnd time.Time) (int, int, error) {
	args := m.Called(ctx, userID, dayStart, dayEnd)
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *MockRepository) GetUserStats(ctx context.Context, userID string) (*domain.UserStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserStats), args.Error(1)
}

func (m *MockRepository) GetOrCreateUserStats(ctx context.Context, userID string) (*domain.UserStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserStats), args.Error(1)
}

func (m *MockRepository) GetUnlockedAchievements(ctx context.Context, userID string) ([]domain.UserAchievement, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserAchievement), args.Error(1)
}

func (m *MockRepository) GetActivityLog(ctx context.Context, userID string, limit int) ([]domain.ActivityLogEntry, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityLogEntry), args.Error(1)
}

func (m *MockRepository) AddStreakFreezes(ctx context.Context, userID string, count int) (*domain.UserStats, error) {
	args := m.Called(ctx, userID, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserStats), args.Error(1)
}

func (m *MockRepository) UpsertAchievements(ctx context.Context, achievements []domain.Achievement) error {
	args := m.Called(ctx, achievements)
	return args.Error(0)
}

func (m *MockRepository) GetTopUsersByXP(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.ProgressTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.ProgressTx), args.Error(1)
}

// MockTx implements repository.ProgressTx
type MockTx struct {
	mock.Mock
}

func (m *MockTx) CountCompletedTasks(ctx context.Context, userID string, dayStart, dayEnd time.Time) (int, int, error) {
	args := m.Called(ctx, userID, dayStart, dayEnd)
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *MockTx) GetOrCreateUserStatsForUpdate(ctx context.Context, userID string) (*domain.UserStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserStats), args.Error(1)
}

func (m *MockTx) GetUnlockedAchievementIDs(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockTx) UpdateUserStats(ctx context.Context, stats *domain.UserStats) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}

func (m *MockTx) InsertUserAchievements(ctx context.Context, rows []domain.UserAchievement) (int64, error) {
	args := m.Called(ctx, rows)
	if fn, ok := args.Get(0).(func(context.Context, []domain.UserAchievement) int64); ok {
		return fn(ctx, rows), args.Error(1)
	}
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTx) InsertActivityLog(ctx context.Context, entries []domain.ActivityLogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockPublisher implements event.Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWithRetry(ctx context.Context, evt event.Event) {
	m.Called(ctx, evt)
}

// MockLeaderboard implements LeaderboardRecorder
type MockLeaderboard struct {
	mock.Mock
}

func (m *MockLeaderboard) Record(ctx context.Context, userID string, xp int64) error {
	args := m.Called(ctx, userID, xp)
	return args.Error(0)
}

// publishedTypes returns the event types passed to PublishWithRetry, in order
func publishedTypes(m *MockPublisher) []event.Type {
	var types []event.Type
	for _, c := range m.Calls {
		if c.Method == "PublishWithRetry" {
			types = append(types, c.Arguments.Get(1).(event.Event).Type)
		}
	}
	return types
}
