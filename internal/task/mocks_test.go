package task

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/TaskQuest_Go/internal/domain"
	"github.com/osse101/TaskQuest_Go/internal/event"
)

// MockRepository implements repository.Task
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateTask(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockRepository) GetTask(ctx context.Context, taskID uuid.UUID) (*domain.Task, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockRepository) ListTasks(ctx context.Context, userID string, includeCompleted bool) ([]domain.Task, error) {
	args := m.Called(ctx, userID, includeCompleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *MockRepository) MarkTaskCompleted(ctx context.Context, taskID uuid.UUID, completedAt time.Time) (bool, error) {
	args := m.Called(ctx, taskID, completedAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) MarkTaskIncomplete(ctx context.Context, taskID uuid.UUID) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

// MockProgress implements ProgressUpdater
type MockProgress struct {
	mock.Mock
}

func (m *MockProgress) UpdateProgress(ctx context.Context, actorID, userID string, xpDelta int) (*domain.ProgressResult, error) {
	args := m.Called(ctx, actorID, userID, xpDelta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProgressResult), args.Error(1)
}

// MockPublisher implements event.Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWithRetry(ctx context.Context, evt event.Event) {
	m.Called(ctx, evt)
}
