package domain

import (
	"time"

	"github.com/google/uuid"
)

// Priority is the importance of a task; higher priorities earn bonus XP
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid reports whether p is a known priority
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a to-do item owned by a user
type Task struct {
	ID          uuid.UUID  `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Priority    Priority   `json:"priority"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// IsCompleted reports whether the task has been marked complete
func (t *Task) IsCompleted() bool {
	return t.CompletedAt != nil
}

// TaskCompletionResult is returned when a task is completed and XP is awarded
type TaskCompletionResult struct {
	Task     Task            `json:"task"`
	XPAward  int             `json:"xp_award"`
	Progress *ProgressResult `json:"progress"`
}
