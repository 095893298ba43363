package domain

import (
	"time"

	"github.com/google/uuid"
)

// ConditionType selects which counter an achievement is measured against
type ConditionType string

const (
	ConditionCountTotal ConditionType = "count_total"
	ConditionCountDaily ConditionType = "count_daily"
	ConditionStreak     ConditionType = "streak"
)

// IsKnown reports whether the condition type is one the evaluator understands
func (c ConditionType) IsKnown() bool {
	switch c {
	case ConditionCountTotal, ConditionCountDaily, ConditionStreak:
		return true
	}
	return false
}

// UserStats is the per-user progress row
type UserStats struct {
	UserID        string     `json:"user_id"`
	XP            int64      `json:"xp"`
	Level         int        `json:"level"`
	CurrentStreak int        `json:"current_streak"`
	LongestStreak int        `json:"longest_streak"`
	StreakFreezes int        `json:"streak_freezes"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Achievement is a catalog entry. The catalog is read-only at runtime.
type Achievement struct {
	ID             string        `json:"id" yaml:"id"`
	Name           string        `json:"name" yaml:"name"`
	Description    string        `json:"description,omitempty" yaml:"description"`
	Icon           string        `json:"icon,omitempty" yaml:"icon"`
	ConditionType  ConditionType `json:"condition_type" yaml:"condition_type"`
	ConditionValue int           `json:"condition_value" yaml:"condition_value"`
	XPReward       int           `json:"xp_reward" yaml:"xp_reward"`
}

// UserAchievement records a single unlock. At most one row per (UserID, AchievementID).
type UserAchievement struct {
	UserID        string    `json:"user_id"`
	AchievementID string    `json:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`
}

// ActivityKind classifies activity log entries
type ActivityKind string

const (
	ActivityAchievementUnlocked ActivityKind = "achievement_unlocked"
	ActivityStreakIncreased     ActivityKind = "streak_increased"
	ActivityStreakFrozen        ActivityKind = "streak_frozen"
	ActivityLevelUp             ActivityKind = "level_up"
)

// ActivityLogEntry is an append-only, human-readable history line
type ActivityLogEntry struct {
	ID        uuid.UUID    `json:"id"`
	UserID    string       `json:"user_id"`
	Kind      ActivityKind `json:"kind"`
	Message   string       `json:"message"`
	CreatedAt time.Time    `json:"created_at"`
}

// StreakSummary is the streak part of a progress update result
type StreakSummary struct {
	Current int  `json:"current"`
	Updated bool `json:"updated"`
	Frozen  bool `json:"frozen"`
}

// UnlockedAchievement is an achievement granted during a progress update
type UnlockedAchievement struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	XPReward int    `json:"xp_reward"`
}

// ProgressResult is the outcome of a progress update
type ProgressResult struct {
	UserID    string                `json:"user_id"`
	XPGained  int64                 `json:"xp_gained"`
	NewXP     int64                 `json:"new_xp"`
	NewLevel  int                   `json:"new_level"`
	LeveledUp bool                  `json:"leveled_up"`
	Streak    StreakSummary         `json:"streak"`
	Unlocked  []UnlockedAchievement `json:"unlocked"`
}

// LevelInfo describes where an XP total sits between two level thresholds
type LevelInfo struct {
	Level           int   `json:"level"`
	XP              int64 `json:"xp"`
	LevelStartXP    int64 `json:"level_start_xp"`
	NextLevelXP     int64 `json:"next_level_xp"`
	XPToNextLevel   int64 `json:"xp_to_next_level"`
	ProgressPercent int   `json:"progress_percent"`
}

// UserProgress combines stored stats with derived level information
type UserProgress struct {
	Stats     UserStats `json:"stats"`
	LevelInfo LevelInfo `json:"level_info"`
}

// AchievementWithStatus is a catalog entry annotated with the user's unlock state
type AchievementWithStatus struct {
	Achievement
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}

// LeaderboardEntry is one ranked row of the XP leaderboard
type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	UserID string `json:"user_id"`
	XP     int64  `json:"xp"`
	Level  int    `json:"level"`
}
