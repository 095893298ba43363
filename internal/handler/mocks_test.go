package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/TaskQuest_Go/internal/domain"
)

// MockProgressService mocks progress.Service
type MockProgressService struct {
	mock.Mock
}

func (m *MockProgressService) UpdateProgress(ctx context.Context, actorID, userID string, xpDelta int) (*domain.ProgressResult, error) {
	args := m.Called(ctx, actorID, userID, xpDelta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProgressResult), args.Error(1)
}

func (m *MockProgressService) GetUserProgress(ctx context.Context, userID string) (*domain.UserProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProgress), args.Error(1)
}

func (m *MockProgressService) GetAchievements(ctx context.Context, userID string) ([]domain.AchievementWithStatus, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AchievementWithStatus), args.Error(1)
}

func (m *MockProgressService) GetActivityLog(ctx context.Context, userID string, limit int) ([]domain.ActivityLogEntry, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityLogEntry), args.Error(1)
}

func (m *MockProgressService) GrantStreakFreezes(ctx context.Context, userID string, count int) (*domain.UserStats, error) {
	args := m.Called(ctx, userID, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserStats), args.Error(1)
}

// MockTaskService mocks task.Service
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) CreateTask(ctx context.Context, userID, title string, priority domain.Priority) (*domain.Task, error) {
	args := m.Called(ctx, userID, title, priority)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskService) ListTasks(ctx context.Context, userID string, includeCompleted bool) ([]domain.Task, error) {
	args := m.Called(ctx, userID, includeCompleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *MockTaskService) CompleteTask(ctx context.Context, actorID string, taskID uuid.UUID) (*domain.TaskCompletionResult, error) {
	args := m.Called(ctx, actorID, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaskCompletionResult), args.Error(1)
}

// MockLeaderboard mocks leaderboard.Leaderboard
type MockLeaderboard struct {
	mock.Mock
}

func (m *MockLeaderboard) Record(ctx context.Context, userID string, xp int64) error {
	args := m.Called(ctx, userID, xp)
	return args.Error(0)
}

func (m *MockLeaderboard) Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

// MockSeeder mocks catalog.Seeder
type MockSeeder struct {
	mock.Mock
}

func (m *MockSeeder) UpsertAchievements(ctx context.Context, achievements []domain.Achievement) error {
	args := m.Called(ctx, achievements)
	return args.Error(0)
}

// MockInvalidator counts cache invalidations
type MockInvalidator struct {
	mock.Mock
}

func (m *MockInvalidator) Invalidate() {
	m.Called()
}
