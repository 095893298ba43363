package leaderboard

import "time"

// Redis configuration
const (
	// DefaultKey is the sorted set holding user XP
	DefaultKey = "taskquest:leaderboard:xp"

	DialTimeout  = 3 * time.Second
	ReadTimeout  = 2 * time.Second
	WriteTimeout = 2 * time.Second
	PingTimeout  = 2 * time.Second
)

// Query limits
const (
	DefaultLimit = 10
	MaxLimit     = 100

	// RebuildLimit is how many top users are copied into Redis on startup
	RebuildLimit = 1000
)

// Log messages
const (
	LogMsgRebuilt = "Leaderboard rebuilt from database"
)

// Error messages
const (
	ErrMsgRedisPing    = "failed to ping redis: %w"
	ErrMsgRecordFailed = "failed to record leaderboard score: %w"
	ErrMsgTopFailed    = "failed to read leaderboard: %w"
	ErrMsgRebuildRead  = "failed to read users for leaderboard rebuild: %w"
	ErrMsgRebuildWrite = "failed to write leaderboard rebuild: %w"
)
