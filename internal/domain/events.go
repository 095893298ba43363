package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "task.completed")
const (
	// EventTypeTaskCompleted is published after a task is marked complete and XP was awarded
	EventTypeTaskCompleted = "task.completed"

	// EventTypeProgressUpdated is published after every committed progress update
	EventTypeProgressUpdated = "progress.updated"

	// EventTypeLevelUp is published when a progress update crosses a level threshold
	EventTypeLevelUp = "progress.level_up"

	// EventTypeAchievementUnlocked is published once per newly unlocked achievement
	EventTypeAchievementUnlocked = "progress.achievement_unlocked"

	// EventTypeStreakFrozen is published when a streak freeze token was consumed
	EventTypeStreakFrozen = "progress.streak_frozen"
)

// SystemActorID identifies internal callers (event handlers, admin tooling) that may act on any user
const SystemActorID = "system"
