package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TaskQuest_Go/internal/domain"
	"github.com/osse101/TaskQuest_Go/internal/leaderboard"
)

type mockPruner struct {
	mock.Mock
}

func (m *mockPruner) PruneActivityLog(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

type mockRebuilder struct {
	mock.Mock
}

func (m *mockRebuilder) Rebuild(ctx context.Context, src leaderboard.TopUsersReader, limit int) error {
	args := m.Called(ctx, src, limit)
	return args.Error(0)
}

type stubTopUsers struct{}

func (stubTopUsers) GetTopUsersByXP(context.Context, int) ([]domain.LeaderboardEntry, error) {
	return nil, nil
}

func TestActivityLogCleanupJob_Process(t *testing.T) {
	pruner := new(mockPruner)
	job := NewActivityLogCleanupJob(pruner, 30)
	now := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)
	job.now = func() time.Time { return now }

	pruner.On("PruneActivityLog", mock.Anything, now.AddDate(0, 0, -30)).Return(int64(7), nil)

	require.NoError(t, job.Process(context.Background()))
	assert.Equal(t, JobNameActivityLogCleanup, job.Name())
	pruner.AssertExpectations(t)
}

func TestActivityLogCleanupJob_Error(t *testing.T) {
	pruner := new(mockPruner)
	job := NewActivityLogCleanupJob(pruner, 1)
	pruner.On("PruneActivityLog", mock.Anything, mock.Anything).Return(int64(0), errors.New("db down"))

	err := job.Process(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to prune activity log")
}

func TestLeaderboardSyncJob_Process(t *testing.T) {
	board := new(mockRebuilder)
	src := stubTopUsers{}
	job := NewLeaderboardSyncJob(board, src, leaderboard.RebuildLimit)

	board.On("Rebuild", mock.Anything, src, leaderboard.RebuildLimit).Return(nil).Once()
	board.On("Rebuild", mock.Anything, src, leaderboard.RebuildLimit).Return(errors.New("redis down")).Once()

	assert.NoError(t, job.Process(context.Background()))
	err := job.Process(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis down")
	assert.Equal(t, JobNameLeaderboardSync, job.Name())
	board.AssertExpectations(t)
}
