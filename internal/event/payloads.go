package event

import (
	"time"

	"github.com/osse101/TaskQuest_Go/internal/domain"
)

// Progress event types
const (
	TaskCompleted        Type = Type(domain.EventTypeTaskCompleted)
	ProgressUpdated      Type = Type(domain.EventTypeProgressUpdated)
	LevelUp              Type = Type(domain.EventTypeLevelUp)
	AchievementUnlocked  Type = Type(domain.EventTypeAchievementUnlocked)
	StreakFreezeConsumed Type = Type(domain.EventTypeStreakFrozen)
)

// ProgressUpdatedPayloadV1 is published after every committed progress update
type ProgressUpdatedPayloadV1 struct {
	UserID        string `json:"user_id"`
	XPGained      int64  `json:"xp_gained"`
	NewXP         int64  `json:"new_xp"`
	NewLevel      int    `json:"new_level"`
	CurrentStreak int    `json:"current_streak"`
	UnlockedCount int    `json:"unlocked_count"`
	Timestamp     int64  `json:"timestamp"`
}

// LevelUpPayloadV1 is the typed payload for level up events
type LevelUpPayloadV1 struct {
	UserID   string `json:"user_id"`
	OldLevel int    `json:"old_level"`
	NewLevel int    `json:"new_level"`
	NewXP    int64  `json:"new_xp"`
}

// AchievementUnlockedPayloadV1 is the typed payload for achievement unlock events
type AchievementUnlockedPayloadV1 struct {
	UserID        string `json:"user_id"`
	AchievementID string `json:"achievement_id"`
	Name          string `json:"name"`
	XPReward      int    `json:"xp_reward"`
}

// StreakFrozenPayloadV1 is the typed payload for streak freeze consumption events
type StreakFrozenPayloadV1 struct {
	UserID           string `json:"user_id"`
	Streak           int    `json:"streak"`
	FreezesRemaining int    `json:"freezes_remaining"`
}

// TaskCompletedPayloadV1 is the typed payload for task completion events
type TaskCompletedPayloadV1 struct {
	UserID   string          `json:"user_id"`
	TaskID   string          `json:"task_id"`
	Priority domain.Priority `json:"priority"`
	XPAward  int             `json:"xp_award"`
}

// NewProgressUpdatedEvent creates a progress updated event from a committed result
func NewProgressUpdatedEvent(result *domain.ProgressResult) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ProgressUpdated,
		Payload: ProgressUpdatedPayloadV1{
			UserID:        result.UserID,
			XPGained:      result.XPGained,
			NewXP:         result.NewXP,
			NewLevel:      result.NewLevel,
			CurrentStreak: result.Streak.Current,
			UnlockedCount: len(result.Unlocked),
			Timestamp:     time.Now().Unix(),
		},
	}
}

// NewLevelUpEvent creates a new level up event
func NewLevelUpEvent(userID string, oldLevel, newLevel int, newXP int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LevelUp,
		Payload: LevelUpPayloadV1{
			UserID:   userID,
			OldLevel: oldLevel,
			NewLevel: newLevel,
			NewXP:    newXP,
		},
	}
}

// NewAchievementUnlockedEvent creates a new achievement unlocked event
func NewAchievementUnlockedEvent(userID string, a domain.UnlockedAchievement) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AchievementUnlocked,
		Payload: AchievementUnlockedPayloadV1{
			UserID:        userID,
			AchievementID: a.ID,
			Name:          a.Name,
			XPReward:      a.XPReward,
		},
		Metadata: map[string]interface{}{
			MetadataKeyAchievementID: a.ID,
		},
	}
}

// NewStreakFrozenEvent creates a new streak freeze consumption event
func NewStreakFrozenEvent(userID string, streak, freezesRemaining int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    StreakFreezeConsumed,
		Payload: StreakFrozenPayloadV1{
			UserID:           userID,
			Streak:           streak,
			FreezesRemaining: freezesRemaining,
		},
	}
}

// NewTaskCompletedEvent creates a new task completed event
func NewTaskCompletedEvent(task *domain.Task, xpAward int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TaskCompleted,
		Payload: TaskCompletedPayloadV1{
			UserID:   task.UserID,
			TaskID:   task.ID.String(),
			Priority: task.Priority,
			XPAward:  xpAward,
		},
		Metadata: map[string]interface{}{
			MetadataKeyPriority: string(task.Priority),
		},
	}
}
