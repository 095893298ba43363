package progress

// Level formula constants
const (
	// XPPerLevelUnit scales the quadratic level curve: level = floor(sqrt(xp / XPPerLevelUnit)) + 1
	XPPerLevelUnit = 100

	// MinLevel is the level of a user with no XP
	MinLevel = 1

	// maxLevelUnits is the largest n with n*n*XPPerLevelUnit <= math.MaxInt64
	maxLevelUnits = 303_700_049

	// MaxLevel is the highest level whose XP threshold fits in an int64
	MaxLevel = maxLevelUnits + 1
)

// Read model limits
const (
	DefaultActivityLimit = 20
	MaxActivityLimit     = 100

	// MaxFreezeGrant caps a single admin grant of streak freezes
	MaxFreezeGrant = 10
)

// Activity log messages
const (
	ActivityMsgAchievementUnlocked = "Unlocked achievement %q (+%d XP)"
	ActivityMsgStreakIncreased     = "Streak increased to %d days"
	ActivityMsgStreakFrozen        = "Streak freeze used, %d day streak kept"
	ActivityMsgLevelUp             = "Reached level %d"
)

// Log messages
const (
	LogMsgProgressUpdated        = "Progress updated"
	LogMsgAchievementsUnlocked   = "Achievements unlocked"
	LogMsgDuplicateUnlockSkipped = "Some achievements were already unlocked, skipped"
	LogMsgLeaderboardFailed      = "Failed to update leaderboard"
	LogMsgStreakFreezesGranted   = "Streak freezes granted"
)

// Error messages
const (
	ErrMsgNegativeXP           = "xp delta must not be negative"
	ErrMsgUserIDRequired       = "user id is required"
	ErrMsgFreezeCountRange     = "freeze count must be between 1 and %d"
	ErrMsgEvaluationDiverged   = "achievement evaluation did not settle after %d iterations"
	ErrMsgBeginTxFailed        = "failed to begin progress transaction: %w"
	ErrMsgLoadStatsFailed      = "failed to load user stats: %w"
	ErrMsgLoadUnlockedFailed   = "failed to load unlocked achievements: %w"
	ErrMsgEvaluateFailed       = "failed to evaluate achievements: %w"
	ErrMsgUpdateStatsFailed    = "failed to update user stats: %w"
	ErrMsgInsertUnlocksFailed  = "failed to record unlocked achievements: %w"
	ErrMsgInsertActivityFailed = "failed to write activity log: %w"
	ErrMsgCommitFailed         = "failed to commit progress update: %w"
	ErrMsgLoadCatalogFailed    = "failed to load achievement catalog: %w"
	ErrMsgCountTasksFailed     = "failed to count completed tasks: %w"
)
