package task

// XP award constants
const (
	// BaseTaskXP is awarded for completing any task
	BaseTaskXP = 10

	MediumPriorityBonus = 5
	HighPriorityBonus   = 10
)

// Validation limits
const (
	MaxTitleLength = 200
)

// Log messages
const (
	LogMsgTaskCreated        = "Task created"
	LogMsgTaskCompleted      = "Task completed"
	LogMsgProgressFailed     = "Progress update failed, reverting task completion"
	LogMsgRevertFailed       = "Failed to revert task completion"
	LogMsgCompletionRaceLost = "Task was completed concurrently"
)

// Error messages
const (
	ErrMsgTitleRequired    = "title is required"
	ErrMsgTitleTooLong     = "title must be at most %d characters"
	ErrMsgInvalidPriority  = "priority must be low, medium or high"
	ErrMsgUserIDRequired   = "user id is required"
	ErrMsgCreateTaskFailed = "failed to create task: %w"
	ErrMsgListTasksFailed  = "failed to list tasks: %w"
	ErrMsgGetTaskFailed    = "failed to get task: %w"
	ErrMsgMarkTaskFailed   = "failed to mark task completed: %w"
	ErrMsgAwardXPFailed    = "failed to award task xp: %w"
)
