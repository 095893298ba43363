package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/TaskQuest_Go/internal/domain"
)

// Task defines the data access interface for tasks
type Task interface {
	CreateTask(ctx context.Context, task *domain.Task) error
	// GetTask returns domain.ErrTaskNotFound when no task has the given id
	GetTask(ctx context.Context, taskID uuid.UUID) (*domain.Task, error)
	ListTasks(ctx context.Context, userID string, includeCompleted bool) ([]domain.Task, error)
	// MarkTaskCompleted returns false when the task was already completed
	MarkTaskCompleted(ctx context.Context, taskID uuid.UUID, completedAt time.Time) (bool, error)
	MarkTaskIncomplete(ctx context.Context, taskID uuid.UUID) error
}
