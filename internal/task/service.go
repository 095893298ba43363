package task

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/osse101/TaskQuest_Go/internal/domain"
	"github.com/osse101/TaskQuest_Go/internal/event"
	"github.com/osse101/TaskQuest_Go/internal/logger"
	"github.com/osse101/TaskQuest_Go/internal/repository"
)

// ProgressUpdater awards XP for a completed task
type ProgressUpdater interface {
	UpdateProgress(ctx context.Context, actorID, userID string, xpDelta int) (*domain.ProgressResult, error)
}

// Service defines the task business logic
type Service interface {
	CreateTask(ctx context.Context, userID, title string, priority domain.Priority) (*domain.Task, error)
	ListTasks(ctx context.Context, userID string, includeCompleted bool) ([]domain.Task, error)
	CompleteTask(ctx context.Context, actorID string, taskID uuid.UUID) (*domain.TaskCompletionResult, error)
}

type service struct {
	repo      repository.Task
	progress  ProgressUpdater
	publisher event.Publisher
	now       func() time.Time
}

// NewService creates a new task service
func NewService(repo repository.Task, progress ProgressUpdater, publisher event.Publisher) Service {
	return &service{
		repo:      repo,
		progress:  progress,
		publisher: publisher,
		now:       time.Now,
	}
}

// XPForPriority returns the XP awarded for completing a task of the given priority
func XPForPriority(priority domain.Priority) int {
	switch priority {
	case domain.PriorityHigh:
		return BaseTaskXP + HighPriorityBonus
	case domain.PriorityMedium:
		return BaseTaskXP + MediumPriorityBonus
	default:
		return BaseTaskXP
	}
}

// CreateTask creates an open task. An empty priority defaults to low.
func (s *service) CreateTask(ctx context.Context, userID, title string, priority domain.Priority) (*domain.Task, error) {
	title = strings.TrimSpace(title)
	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUserIDRequired)
	}
	if title == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgTitleRequired)
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return nil, fmt.Errorf("%w: "+ErrMsgTitleTooLong, domain.ErrInvalidInput, MaxTitleLength)
	}
	if priority == "" {
		priority = domain.PriorityLow
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidPriority)
	}

	task := &domain.Task{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Priority:  priority,
		CreatedAt: s.now(),
	}
	if err := s.repo.CreateTask(ctx, task); err != nil {
		return nil, fmt.Errorf(ErrMsgCreateTaskFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgTaskCreated, "user_id", userID, "task_id", task.ID, "priority", priority)
	return task, nil
}

// ListTasks returns the user's tasks, newest first
func (s *service) ListTasks(ctx context.Context, userID string, includeCompleted bool) ([]domain.Task, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUserIDRequired)
	}

	tasks, err := s.repo.ListTasks(ctx, userID, includeCompleted)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListTasksFailed, err)
	}
	return tasks, nil
}

// CompleteTask marks the task complete and awards priority XP to its owner.
// If the progress update fails the completion is reverted so the task can be completed again.
func (s *service) CompleteTask(ctx context.Context, actorID string, taskID uuid.UUID) (*domain.TaskCompletionResult, error) {
	log := logger.FromContext(ctx)

	task, err := s.repo.GetTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetTaskFailed, err)
	}
	if actorID != task.UserID && actorID != domain.SystemActorID {
		return nil, domain.ErrForbidden
	}
	if task.IsCompleted() {
		return nil, fmt.Errorf("%w: %s", domain.ErrTaskAlreadyCompleted, taskID)
	}

	completedAt := s.now()
	ok, err := s.repo.MarkTaskCompleted(ctx, taskID, completedAt)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgMarkTaskFailed, err)
	}
	if !ok {
		log.Info(LogMsgCompletionRaceLost, "task_id", taskID)
		return nil, fmt.Errorf("%w: %s", domain.ErrTaskAlreadyCompleted, taskID)
	}
	task.CompletedAt = &completedAt

	award := XPForPriority(task.Priority)
	progress, err := s.progress.UpdateProgress(ctx, actorID, task.UserID, award)
	if err != nil {
		log.Warn(LogMsgProgressFailed, "task_id", taskID, "error", err)
		if revertErr := s.repo.MarkTaskIncomplete(ctx, taskID); revertErr != nil {
			log.Error(LogMsgRevertFailed, "task_id", taskID, "error", revertErr)
		}
		return nil, fmt.Errorf(ErrMsgAwardXPFailed, err)
	}

	log.Info(LogMsgTaskCompleted, "user_id", task.UserID, "task_id", taskID, "xp_award", award)

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewTaskCompletedEvent(task, award))
	}

	return &domain.TaskCompletionResult{
		Task:     *task,
		XPAward:  award,
		Progress: progress,
	}, nil
}
