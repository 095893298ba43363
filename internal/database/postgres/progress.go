package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/TaskQuest_Go/internal/domain"
	"github.com/osse101/TaskQuest_Go/internal/repository"
)

const userStatsColumns = `user_id, xp, level, current_streak, longest_streak, streak_freezes, last_login, created_at, updated_at`

// ProgressRepository implements repository.Progress for PostgreSQL
type ProgressRepository struct {
	db *pgxpool.Pool
}

// NewProgressRepository creates a new ProgressRepository
func NewProgressRepository(db *pgxpool.Pool) *ProgressRepository {
	return &ProgressRepository{db: db}
}

var _ repository.Progress = (*ProgressRepository)(nil)

// GetAchievementCatalog returns every achievement in catalog order
func (r *ProgressRepository) GetAchievementCatalog(ctx context.Context) ([]domain.Achievement, error) {
	query := `
		SELECT achievement_id, name, description, icon, condition_type, condition_value, xp_reward
		FROM achievements
		ORDER BY sort_order, achievement_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryCatalog, err)
	}
	defer rows.Close()

	var catalog []domain.Achievement
	for rows.Next() {
		var a domain.Achievement
		var condition string
		err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.Description,
			&a.Icon,
			&condition,
			&a.ConditionValue,
			&a.XPReward,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanAchievement, err)
		}
		a.ConditionType = domain.ConditionType(condition)
		catalog = append(catalog, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIteration, err)
	}

	return catalog, nil
}

// CountCompletedTasks returns the lifetime and [dayStart, dayEnd) completed task counts
func (r *ProgressRepository) CountCompletedTasks(ctx context.Context, userID string, dayStart, dayEnd time.Time) (int, int, error) {
	return countCompletedTasks(ctx, r.db, userID, dayStart, dayEnd)
}

// GetUserStats returns nil, nil when the user has no stats row
func (r *ProgressRepository) GetUserStats(ctx context.Context, userID string) (*domain.UserStats, error) {
	query := `SELECT ` + userStatsColumns + ` FROM user_stats WHERE user_id = $1`

	stats, err := scanUserStats(r.db.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUserStats, err)
	}
	return stats, nil
}

// GetOrCreateUserStats returns the user's stats, inserting a zero row first if needed
func (r *ProgressRepository) GetOrCreateUserStats(ctx context.Context, userID string) (*domain.UserStats, error) {
	if err := ensureUserStats(ctx, r.db, userID); err != nil {
		return nil, err
	}

	query := `SELECT ` + userStatsColumns + ` FROM user_stats WHERE user_id = $1`
	stats, err := scanUserStats(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUserStats, err)
	}
	return stats, nil
}

// GetUnlockedAchievements returns the user's unlocks, oldest first
func (r *ProgressRepository) GetUnlockedAchievements(ctx context.Context, userID string) ([]domain.UserAchievement, error) {
	query := `
		SELECT user_id, achievement_id, unlocked_at
		FROM user_achievements
		WHERE user_id = $1
		ORDER BY unlocked_at, achievement_id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryUnlocks, err)
	}
	defer rows.Close()

	var unlocks []domain.UserAchievement
	for rows.Next() {
		var ua domain.UserAchievement
		if err := rows.Scan(&ua.UserID, &ua.AchievementID, &ua.UnlockedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanUnlock, err)
		}
		unlocks = append(unlocks, ua)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIteration, err)
	}

	return unlocks, nil
}

// GetActivityLog returns the newest entries first
func (r *ProgressRepository) GetActivityLog(ctx context.Context, userID string, limit int) ([]domain.ActivityLogEntry, error) {
	query := `
		SELECT activity_id, user_id, kind, message, created_at
		FROM activity_log
		WHERE user_id = $1
		ORDER BY created_at DESC, activity_id
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryActivity, err)
	}
	defer rows.Close()

	entries := make([]domain.ActivityLogEntry, 0, limit)
	for rows.Next() {
		var e domain.ActivityLogEntry
		var kind string
		if err := rows.Scan(&e.ID, &e.UserID, &kind, &e.Message, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanActivity, err)
		}
		e.Kind = domain.ActivityKind(kind)
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIteration, err)
	}

	return entries, nil
}

// PruneActivityLog deletes entries created before the cutoff and returns how many went
func (r *ProgressRepository) PruneActivityLog(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM activity_log WHERE created_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToPruneActivity, err)
	}
	return tag.RowsAffected(), nil
}

// AddStreakFreezes adds count freeze tokens, creating the stats row if needed
func (r *ProgressRepository) AddStreakFreezes(ctx context.Context, userID string, count int) (*domain.UserStats, error) {
	query := `
		INSERT INTO user_stats (user_id, streak_freezes)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET streak_freezes = user_stats.streak_freezes + EXCLUDED.streak_freezes,
		    updated_at = NOW()
		RETURNING ` + userStatsColumns

	stats, err := scanUserStats(r.db.QueryRow(ctx, query, userID, count))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToAddStreakFreezes, err)
	}
	return stats, nil
}

// UpsertAchievements writes the catalog in one batch; slice order becomes catalog order
func (r *ProgressRepository) UpsertAchievements(ctx context.Context, achievements []domain.Achievement) error {
	if len(achievements) == 0 {
		return nil
	}

	query := `
		INSERT INTO achievements (achievement_id, name, description, icon, condition_type, condition_value, xp_reward, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (achievement_id) DO UPDATE
		SET name = EXCLUDED.name,
		    description = EXCLUDED.description,
		    icon = EXCLUDED.icon,
		    condition_type = EXCLUDED.condition_type,
		    condition_value = EXCLUDED.condition_value,
		    xp_reward = EXCLUDED.xp_reward,
		    sort_order = EXCLUDED.sort_order
	`

	batch := &pgx.Batch{}
	for i, a := range achievements {
		batch.Queue(query, a.ID, a.Name, a.Description, a.Icon, string(a.ConditionType), a.ConditionValue, a.XPReward, i)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertAchievements, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// GetTopUsersByXP ranks users by XP. Equal XP shares a rank.
func (r *ProgressRepository) GetTopUsersByXP(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	query := `
		SELECT RANK() OVER (ORDER BY xp DESC) AS rank, user_id, xp, level
		FROM user_stats
		ORDER BY xp DESC, user_id
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryLeaderboard, err)
	}
	defer rows.Close()

	entries := make([]domain.LeaderboardEntry, 0, limit)
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.Rank, &e.UserID, &e.XP, &e.Level); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanLeaderboard, err)
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIteration, err)
	}

	return entries, nil
}

// BeginTx starts a progress unit of work
func (r *ProgressRepository) BeginTx(ctx context.Context) (repository.ProgressTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &progressTx{tx: tx}, nil
}

// progressTx implements repository.ProgressTx on a pgx transaction
type progressTx struct {
	tx pgx.Tx
}

func (t *progressTx) CountCompletedTasks(ctx context.Context, userID string, dayStart, dayEnd time.Time) (int, int, error) {
	return countCompletedTasks(ctx, t.tx, userID, dayStart, dayEnd)
}

// GetOrCreateUserStatsForUpdate creates the row if missing, then locks it until the transaction ends.
// Concurrent updaters for the same user serialize on the row lock.
func (t *progressTx) GetOrCreateUserStatsForUpdate(ctx context.Context, userID string) (*domain.UserStats, error) {
	if err := ensureUserStats(ctx, t.tx, userID); err != nil {
		return nil, err
	}

	query := `SELECT ` + userStatsColumns + ` FROM user_stats WHERE user_id = $1 FOR UPDATE`
	stats, err := scanUserStats(t.tx.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLockUserStats, err)
	}
	return stats, nil
}

func (t *progressTx) GetUnlockedAchievementIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := t.tx.Query(ctx, `SELECT achievement_id FROM user_achievements WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryUnlocks, err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanUnlock, err)
	}
	return ids, nil
}

func (t *progressTx) UpdateUserStats(ctx context.Context, stats *domain.UserStats) error {
	query := `
		UPDATE user_stats
		SET xp = $2,
		    level = $3,
		    current_streak = $4,
		    longest_streak = $5,
		    streak_freezes = $6,
		    last_login = $7,
		    updated_at = $8
		WHERE user_id = $1
	`

	tag, err := t.tx.Exec(ctx, query,
		stats.UserID,
		stats.XP,
		stats.Level,
		stats.CurrentStreak,
		stats.LongestStreak,
		stats.StreakFreezes,
		stats.LastLogin,
		stats.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateUserStats, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrUserNotFound, stats.UserID)
	}
	return nil
}

// InsertUserAchievements skips (user_id, achievement_id) pairs that already exist
func (t *progressTx) InsertUserAchievements(ctx context.Context, rows []domain.UserAchievement) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	userIDs := make([]string, len(rows))
	achievementIDs := make([]string, len(rows))
	unlockedAt := make([]time.Time, len(rows))
	for i, row := range rows {
		userIDs[i] = row.UserID
		achievementIDs[i] = row.AchievementID
		unlockedAt[i] = row.UnlockedAt
	}

	query := `
		INSERT INTO user_achievements (user_id, achievement_id, unlocked_at)
		SELECT * FROM unnest($1::text[], $2::text[], $3::timestamptz[])
		ON CONFLICT ON CONSTRAINT ` + ConstraintUserAchievements + ` DO NOTHING
	`

	tag, err := t.tx.Exec(ctx, query, userIDs, achievementIDs, unlockedAt)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertUnlocks, err)
	}
	return tag.RowsAffected(), nil
}

func (t *progressTx) InsertActivityLog(ctx context.Context, entries []domain.ActivityLogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	_, err := t.tx.CopyFrom(ctx,
		pgx.Identifier{TableActivityLog},
		activityLogColumns,
		pgx.CopyFromSlice(len(entries), func(i int) ([]any, error) {
			e := entries[i]
			return []any{e.ID, e.UserID, string(e.Kind), e.Message, e.CreatedAt}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertActivity, err)
	}
	return nil
}

func (t *progressTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// Rollback passes pgx.ErrTxClosed through unwrapped so SafeRollback can ignore it
func (t *progressTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func ensureUserStats(ctx context.Context, q querier, userID string) error {
	_, err := q.Exec(ctx, `INSERT INTO user_stats (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateUserStats, err)
	}
	return nil
}

func countCompletedTasks(ctx context.Context, q querier, userID string, dayStart, dayEnd time.Time) (int, int, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE completed_at >= $2 AND completed_at < $3)
		FROM tasks
		WHERE user_id = $1 AND completed_at IS NOT NULL
	`

	var total, daily int
	if err := q.QueryRow(ctx, query, userID, dayStart, dayEnd).Scan(&total, &daily); err != nil {
		return 0, 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountTasks, err)
	}
	return total, daily, nil
}

func scanUserStats(row pgx.Row) (*domain.UserStats, error) {
	var s domain.UserStats
	err := row.Scan(
		&s.UserID,
		&s.XP,
		&s.Level,
		&s.CurrentStreak,
		&s.LongestStreak,
		&s.StreakFreezes,
		&s.LastLogin,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
