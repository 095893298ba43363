package bootstrap

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TaskQuest_Go/internal/config"
	"github.com/osse101/TaskQuest_Go/internal/database/postgres"
	"github.com/osse101/TaskQuest_Go/internal/domain"
	"github.com/osse101/TaskQuest_Go/internal/event"
	"github.com/osse101/TaskQuest_Go/internal/leaderboard"
	"github.com/osse101/TaskQuest_Go/internal/sse"
)

type mockSeeder struct {
	mock.Mock
}

func (m *mockSeeder) UpsertAchievements(ctx context.Context, achievements []domain.Achievement) error {
	args := m.Called(ctx, achievements)
	return args.Error(0)
}

type stubTopUsers struct{}

func (stubTopUsers) GetTopUsersByXP(context.Context, int) ([]domain.LeaderboardEntry, error) {
	return nil, nil
}

type countingCloser struct {
	closed int
	err    error
}

func (c *countingCloser) Close() error {
	c.closed++
	return c.err
}

type stubPool struct {
	closed bool
}

func (p *stubPool) Ping(context.Context) error { return nil }
func (p *stubPool) Close()                     { p.closed = true }

func TestSyncAchievementCatalog_Disabled(t *testing.T) {
	seeder := new(mockSeeder)

	err := SyncAchievementCatalog(context.Background(), &config.Config{SeedCatalog: false}, seeder)

	require.NoError(t, err)
	seeder.AssertNotCalled(t, "UpsertAchievements", mock.Anything, mock.Anything)
}

func TestSyncAchievementCatalog_SeedsEmbeddedCatalog(t *testing.T) {
	seeder := new(mockSeeder)
	seeder.On("UpsertAchievements", mock.Anything, mock.MatchedBy(func(a []domain.Achievement) bool {
		return len(a) > 0
	})).Return(nil)

	err := SyncAchievementCatalog(context.Background(), &config.Config{SeedCatalog: true}, seeder)

	require.NoError(t, err)
	seeder.AssertExpectations(t)
}

func TestSyncAchievementCatalog_MissingFile(t *testing.T) {
	seeder := new(mockSeeder)
	cfg := &config.Config{SeedCatalog: true, CatalogPath: filepath.Join(t.TempDir(), "missing.yaml")}

	err := SyncAchievementCatalog(context.Background(), cfg, seeder)

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedLoadCatalog)
	seeder.AssertNotCalled(t, "UpsertAchievements", mock.Anything, mock.Anything)
}

func TestSyncAchievementCatalog_UpsertFails(t *testing.T) {
	seeder := new(mockSeeder)
	seeder.On("UpsertAchievements", mock.Anything, mock.Anything).Return(errors.New("db down"))

	err := SyncAchievementCatalog(context.Background(), &config.Config{SeedCatalog: true}, seeder)

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedSeedCatalog)
}

func TestInitializeEventSystem_CreatesDeadLetterDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deadletter.jsonl")
	cfg := &config.Config{DeadLetterPath: path}

	bus, publisher, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	require.NotNil(t, bus)
	require.NotNil(t, publisher)
	defer func() { _ = publisher.Shutdown(context.Background()) }()

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.NoError(t, RegisterEventHandlers(bus))
}

func TestInitializeLeaderboard_PostgresWithoutRedis(t *testing.T) {
	board, closer, err := InitializeLeaderboard(context.Background(), &config.Config{}, stubTopUsers{})

	require.NoError(t, err)
	assert.Nil(t, closer)
	assert.IsType(t, &leaderboard.PostgresLeaderboard{}, board)
}

func TestGracefulShutdown_ClosesComponents(t *testing.T) {
	redis := &countingCloser{err: errors.New("already closed")}
	logs := &countingCloser{}
	pool := &stubPool{}

	GracefulShutdown(context.Background(), ShutdownComponents{
		RedisClient: redis,
		DBPool:      pool,
		LogCloser:   logs,
	})

	assert.Equal(t, 1, redis.closed, "close errors are logged, not fatal")
	assert.True(t, pool.closed)
	assert.Equal(t, 1, logs.closed)
}

func TestGracefulShutdown_NilComponents(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}

func TestStartMaintenance_StopsCleanly(t *testing.T) {
	repos := &Repositories{Progress: postgres.NewProgressRepository(nil)}
	cfg := &config.Config{
		ActivityLogRetentionDays: 30,
		ActivityCleanupInterval:  time.Hour,
		LeaderboardSyncInterval:  time.Hour,
	}

	pool, sched := StartMaintenance(cfg, repos, leaderboard.NewPostgresLeaderboard(stubTopUsers{}))
	require.NotNil(t, pool)
	require.NotNil(t, sched)

	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{Scheduler: sched, WorkerPool: pool})
	})
}

func TestInitializeProgressStream_ForwardsEvents(t *testing.T) {
	bus := event.NewMemoryBus()
	hub := InitializeProgressStream(bus)
	defer hub.Stop()

	client, err := hub.Register("alice", nil)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, time.Millisecond)

	require.NoError(t, bus.Publish(context.Background(), event.NewLevelUpEvent("alice", 1, 2, 100)))

	select {
	case evt := <-client.EventChannel:
		assert.Equal(t, string(event.LevelUp), evt.Type)
	case <-time.After(time.Second):
		t.Fatal("no event forwarded")
	}

	GracefulShutdown(context.Background(), ShutdownComponents{StreamHub: hub})
	_, err = hub.Register("bob", nil)
	assert.ErrorIs(t, err, sse.ErrHubClosed)
}
