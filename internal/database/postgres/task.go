package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/TaskQuest_Go/internal/domain"
	"github.com/osse101/TaskQuest_Go/internal/repository"
)

const taskColumns = `task_id, user_id, title, priority, completed_at, created_at`

// TaskRepository implements repository.Task for PostgreSQL
type TaskRepository struct {
	db *pgxpool.Pool
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

var _ repository.Task = (*TaskRepository)(nil)

// CreateTask inserts a new task
func (r *TaskRepository) CreateTask(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO tasks (task_id, user_id, title, priority, completed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		task.ID,
		task.UserID,
		task.Title,
		string(task.Priority),
		task.CompletedAt,
		task.CreatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: task %s already exists", domain.ErrInvalidInput, task.ID)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateTask, err)
	}
	return nil
}

// GetTask retrieves a task by id
func (r *TaskRepository) GetTask(ctx context.Context, taskID uuid.UUID) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE task_id = $1`

	task, err := scanTask(r.db.QueryRow(ctx, query, taskID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, taskID)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetTask, err)
	}
	return task, nil
}

// ListTasks returns a user's tasks, newest first
func (r *TaskRepository) ListTasks(ctx context.Context, userID string, includeCompleted bool) ([]domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE user_id = $1 AND ($2 OR completed_at IS NULL)
		ORDER BY created_at DESC, task_id
	`

	rows, err := r.db.Query(ctx, query, userID, includeCompleted)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListTasks, err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanTask, err)
		}
		tasks = append(tasks, *task)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIteration, err)
	}

	return tasks, nil
}

// MarkTaskCompleted sets completed_at only if it is still NULL, so two concurrent
// completions of the same task cannot both succeed.
func (r *TaskRepository) MarkTaskCompleted(ctx context.Context, taskID uuid.UUID, completedAt time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE tasks SET completed_at = $2 WHERE task_id = $1 AND completed_at IS NULL`,
		taskID, completedAt,
	)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCompleteTask, err)
	}
	if tag.RowsAffected() == 1 {
		return true, nil
	}

	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM tasks WHERE task_id = $1)`, taskID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToGetTask, err)
	}
	if !exists {
		return false, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, taskID)
	}
	return false, nil
}

// MarkTaskIncomplete clears completed_at
func (r *TaskRepository) MarkTaskIncomplete(ctx context.Context, taskID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `UPDATE tasks SET completed_at = NULL WHERE task_id = $1`, taskID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRevertTask, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrTaskNotFound, taskID)
	}
	return nil
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	var priority string
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.Title,
		&priority,
		&t.CompletedAt,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Priority = domain.Priority(priority)
	return &t, nil
}
