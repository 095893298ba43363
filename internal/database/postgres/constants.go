package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Constraint names referenced by upserts
const (
	ConstraintUserAchievements = "uq_user_achievements"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Progress
const (
	ErrMsgFailedToQueryCatalog       = "failed to query achievement catalog"
	ErrMsgFailedToScanAchievement    = "failed to scan achievement"
	ErrMsgFailedToCountTasks         = "failed to count completed tasks"
	ErrMsgFailedToGetUserStats       = "failed to get user stats"
	ErrMsgFailedToCreateUserStats    = "failed to create user stats"
	ErrMsgFailedToLockUserStats      = "failed to lock user stats"
	ErrMsgFailedToUpdateUserStats    = "failed to update user stats"
	ErrMsgFailedToAddStreakFreezes   = "failed to add streak freezes"
	ErrMsgFailedToQueryUnlocks       = "failed to query unlocked achievements"
	ErrMsgFailedToScanUnlock         = "failed to scan unlocked achievement"
	ErrMsgFailedToInsertUnlocks      = "failed to insert unlocked achievements"
	ErrMsgFailedToInsertActivity     = "failed to insert activity log"
	ErrMsgFailedToQueryActivity      = "failed to query activity log"
	ErrMsgFailedToScanActivity       = "failed to scan activity log entry"
	ErrMsgFailedToPruneActivity      = "failed to prune activity log"
	ErrMsgFailedToUpsertAchievements = "failed to upsert achievements"
	ErrMsgFailedToQueryLeaderboard   = "failed to query leaderboard"
	ErrMsgFailedToScanLeaderboard    = "failed to scan leaderboard entry"
	ErrMsgRowIteration               = "row iteration error"
)

// Error Messages - Tasks
const (
	ErrMsgFailedToCreateTask   = "failed to create task"
	ErrMsgFailedToGetTask      = "failed to get task"
	ErrMsgFailedToListTasks    = "failed to list tasks"
	ErrMsgFailedToScanTask     = "failed to scan task"
	ErrMsgFailedToCompleteTask = "failed to mark task completed"
	ErrMsgFailedToRevertTask   = "failed to mark task incomplete"
)

// Table and column names used by CopyFrom
const (
	TableActivityLog = "activity_log"
)

var activityLogColumns = []string{"activity_id", "user_id", "kind", "message", "created_at"}
