package progress

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/TaskQuest_Go/internal/domain"
	"github.com/osse101/TaskQuest_Go/internal/event"
	"github.com/osse101/TaskQuest_Go/internal/logger"
	"github.com/osse101/TaskQuest_Go/internal/metrics"
	"github.com/osse101/TaskQuest_Go/internal/repository"
)

// LeaderboardRecorder receives a user's XP after each committed update
type LeaderboardRecorder interface {
	Record(ctx context.Context, userID string, xp int64) error
}

// Service defines the progress system business logic
type Service interface {
	UpdateProgress(ctx context.Context, actorID, userID string, xpDelta int) (*domain.ProgressResult, error)

	GetUserProgress(ctx context.Context, userID string) (*domain.UserProgress, error)
	GetAchievements(ctx context.Context, userID string) ([]domain.AchievementWithStatus, error)
	GetActivityLog(ctx context.Context, userID string, limit int) ([]domain.ActivityLogEntry, error)
	GrantStreakFreezes(ctx context.Context, userID string, count int) (*domain.UserStats, error)
}

type service struct {
	repo      repository.Progress
	catalog   repository.CatalogReader
	board     LeaderboardRecorder
	publisher event.Publisher
	loc       *time.Location
	now       func() time.Time
}

// NewService creates a new progress service. catalog may be a cache in front of repo;
// board and publisher are optional.
func NewService(repo repository.Progress, catalog repository.CatalogReader, board LeaderboardRecorder, publisher event.Publisher, loc *time.Location) Service {
	if catalog == nil {
		catalog = repo
	}
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		repo:      repo,
		catalog:   catalog,
		board:     board,
		publisher: publisher,
		loc:       loc,
		now:       time.Now,
	}
}

// txSource evaluates against the cached catalog and counts tasks inside the open transaction
type txSource struct {
	repository.CatalogReader
	repository.CompletionCounter
}

// UpdateProgress adds xpDelta to the user's XP, moves the daily streak and unlocks every
// achievement that qualifies, including ones unlocked by reward XP from earlier unlocks.
// All writes happen in one transaction.
func (s *service) UpdateProgress(ctx context.Context, actorID, userID string, xpDelta int) (*domain.ProgressResult, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUserIDRequired)
	}
	if xpDelta < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNegativeXP)
	}
	if actorID != userID && actorID != domain.SystemActorID {
		return nil, domain.ErrForbidden
	}

	started := time.Now()
	defer func() { metrics.ProgressUpdateDuration.Observe(time.Since(started).Seconds()) }()

	now := s.now().In(s.loc)
	dayStart, dayEnd := DayBounds(now, s.loc)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	stats, err := tx.GetOrCreateUserStatsForUpdate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadStatsFailed, err)
	}
	oldXP := stats.XP
	oldLevel := stats.Level
	oldStreak := stats.CurrentStreak

	streak := CalculateStreak(stats.CurrentStreak, stats.LastLogin, stats.StreakFreezes, now, s.loc)

	unlockedIDs, err := tx.GetUnlockedAchievementIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadUnlockedFailed, err)
	}
	unlockedSet := make(map[string]struct{}, len(unlockedIDs))
	for _, id := range unlockedIDs {
		unlockedSet[id] = struct{}{}
	}

	currentXP, unlocked, err := s.applyXP(ctx, txSource{s.catalog, tx}, userID, stats.XP, int64(xpDelta), streak.NewStreak, unlockedSet, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	newLevel := CalculateLevel(currentXP)
	stats.XP = currentXP
	stats.Level = newLevel
	if streak.ShouldUpdate {
		stats.CurrentStreak = streak.NewStreak
		if streak.UsedFreeze {
			stats.StreakFreezes--
		}
		stats.LastLogin = &now
	}
	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}
	stats.UpdatedAt = now

	if err := tx.UpdateUserStats(ctx, stats); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateStatsFailed, err)
	}

	if len(unlocked) > 0 {
		rows := make([]domain.UserAchievement, 0, len(unlocked))
		for _, a := range unlocked {
			rows = append(rows, domain.UserAchievement{UserID: userID, AchievementID: a.ID, UnlockedAt: now})
		}
		inserted, err := tx.InsertUserAchievements(ctx, rows)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgInsertUnlocksFailed, err)
		}
		if inserted < int64(len(rows)) {
			logger.FromContext(ctx).Warn(LogMsgDuplicateUnlockSkipped, "user_id", userID, "expected", len(rows), "inserted", inserted)
		}
	}

	entries := buildActivityLog(userID, now, unlocked, streak, oldStreak, oldLevel, newLevel)
	if len(entries) > 0 {
		if err := tx.InsertActivityLog(ctx, entries); err != nil {
			return nil, fmt.Errorf(ErrMsgInsertActivityFailed, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitFailed, err)
	}

	result := &domain.ProgressResult{
		UserID:    userID,
		XPGained:  currentXP - oldXP,
		NewXP:     currentXP,
		NewLevel:  newLevel,
		LeveledUp: newLevel > oldLevel,
		Streak: domain.StreakSummary{
			Current: stats.CurrentStreak,
			Updated: streak.ShouldUpdate,
			Frozen:  streak.UsedFreeze,
		},
		Unlocked: unlocked,
	}

	s.afterCommit(ctx, result, oldLevel, stats.StreakFreezes)
	return result, nil
}

// applyXP adds pending XP and re-evaluates achievements until nothing new qualifies.
// Each pass must unlock a new catalog id, so len(catalog)+1 passes is an upper bound.
func (s *service) applyXP(ctx context.Context, src repository.AchievementSource, userID string, startXP, pending int64, streak int, unlockedSet map[string]struct{}, dayStart, dayEnd time.Time) (int64, []domain.UnlockedAchievement, error) {
	catalog, err := src.GetAchievementCatalog(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf(ErrMsgLoadCatalogFailed, err)
	}
	maxPasses := len(catalog) + 1

	currentXP := startXP
	unlocked := make([]domain.UnlockedAchievement, 0)
	for pass := 0; ; pass++ {
		if pass >= maxPasses {
			return 0, nil, fmt.Errorf(ErrMsgEvaluationDiverged, maxPasses)
		}

		currentXP = AddXP(currentXP, pending)
		pending = 0

		res, err := EvaluateAchievements(ctx, src, userID, currentXP, streak, unlockedSet, dayStart, dayEnd)
		if err != nil {
			return 0, nil, fmt.Errorf(ErrMsgEvaluateFailed, err)
		}
		if len(res.Achievements) == 0 {
			return currentXP, unlocked, nil
		}

		for _, a := range res.Achievements {
			unlockedSet[a.ID] = struct{}{}
		}
		unlocked = append(unlocked, res.Achievements...)
		pending = res.TotalReward
	}
}

func buildActivityLog(userID string, now time.Time, unlocked []domain.UnlockedAchievement, streak StreakResult, oldStreak, oldLevel, newLevel int) []domain.ActivityLogEntry {
	var entries []domain.ActivityLogEntry
	add := func(kind domain.ActivityKind, msg string) {
		entries = append(entries, domain.ActivityLogEntry{
			ID:        uuid.New(),
			UserID:    userID,
			Kind:      kind,
			Message:   msg,
			CreatedAt: now,
		})
	}

	if streak.UsedFreeze {
		add(domain.ActivityStreakFrozen, fmt.Sprintf(ActivityMsgStreakFrozen, streak.NewStreak))
	}
	// A frozen streak keeps its value, so it never logs an increase.
	if streak.ShouldUpdate && streak.NewStreak > oldStreak {
		add(domain.ActivityStreakIncreased, fmt.Sprintf(ActivityMsgStreakIncreased, streak.NewStreak))
	}
	for _, a := range unlocked {
		add(domain.ActivityAchievementUnlocked, fmt.Sprintf(ActivityMsgAchievementUnlocked, a.Name, a.XPReward))
	}
	if newLevel > oldLevel {
		add(domain.ActivityLevelUp, fmt.Sprintf(ActivityMsgLevelUp, newLevel))
	}
	return entries
}

func (s *service) afterCommit(ctx context.Context, result *domain.ProgressResult, oldLevel, freezesLeft int) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgProgressUpdated,
		"user_id", result.UserID,
		"xp_gained", result.XPGained,
		"new_xp", result.NewXP,
		"new_level", result.NewLevel,
		"streak", result.Streak.Current,
		"frozen", result.Streak.Frozen)

	if len(result.Unlocked) > 0 {
		ids := make([]string, 0, len(result.Unlocked))
		for _, a := range result.Unlocked {
			ids = append(ids, a.ID)
		}
		log.Info(LogMsgAchievementsUnlocked, "user_id", result.UserID, "achievements", ids)
	}

	if s.publisher != nil {
		if result.Streak.Frozen {
			s.publisher.PublishWithRetry(ctx, event.NewStreakFrozenEvent(result.UserID, result.Streak.Current, freezesLeft))
		}
		for _, a := range result.Unlocked {
			s.publisher.PublishWithRetry(ctx, event.NewAchievementUnlockedEvent(result.UserID, a))
		}
		if result.LeveledUp {
			s.publisher.PublishWithRetry(ctx, event.NewLevelUpEvent(result.UserID, oldLevel, result.NewLevel, result.NewXP))
		}
		s.publisher.PublishWithRetry(ctx, event.NewProgressUpdatedEvent(result))
	}

	if s.board != nil {
		if err := s.board.Record(ctx, result.UserID, result.NewXP); err != nil {
			metrics.LeaderboardErrors.Inc()
			log.Warn(LogMsgLeaderboardFailed, "user_id", result.UserID, "error", err)
		}
	}
}

// GetUserProgress returns stored stats plus derived level information
func (s *service) GetUserProgress(ctx context.Context, userID string) (*domain.UserProgress, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUserIDRequired)
	}

	stats, err := s.repo.GetOrCreateUserStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadStatsFailed, err)
	}

	return &domain.UserProgress{
		Stats:     *stats,
		LevelInfo: LevelInfo(stats.XP),
	}, nil
}

// GetAchievements returns the full catalog annotated with the user's unlock state
func (s *service) GetAchievements(ctx context.Context, userID string) ([]domain.AchievementWithStatus, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUserIDRequired)
	}

	catalog, err := s.catalog.GetAchievementCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadCatalogFailed, err)
	}
	unlocked, err := s.repo.GetUnlockedAchievements(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadUnlockedFailed, err)
	}

	unlockedAt := make(map[string]time.Time, len(unlocked))
	for _, ua := range unlocked {
		unlockedAt[ua.AchievementID] = ua.UnlockedAt
	}

	out := make([]domain.AchievementWithStatus, 0, len(catalog))
	for _, a := range catalog {
		item := domain.AchievementWithStatus{Achievement: a}
		if at, ok := unlockedAt[a.ID]; ok {
			item.Unlocked = true
			item.UnlockedAt = &at
		}
		out = append(out, item)
	}

	// Unlocked first, then catalog order.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Unlocked && !out[j].Unlocked
	})
	return out, nil
}

// GetActivityLog returns the user's most recent activity entries, newest first
func (s *service) GetActivityLog(ctx context.Context, userID string, limit int) ([]domain.ActivityLogEntry, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUserIDRequired)
	}
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	if limit > MaxActivityLimit {
		limit = MaxActivityLimit
	}

	entries, err := s.repo.GetActivityLog(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get activity log: %w", err)
	}
	return entries, nil
}

// GrantStreakFreezes adds consumable streak freeze tokens to a user
func (s *service) GrantStreakFreezes(ctx context.Context, userID string, count int) (*domain.UserStats, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUserIDRequired)
	}
	if count < 1 || count > MaxFreezeGrant {
		return nil, fmt.Errorf("%w: "+ErrMsgFreezeCountRange, domain.ErrInvalidInput, MaxFreezeGrant)
	}

	stats, err := s.repo.AddStreakFreezes(ctx, userID, count)
	if err != nil {
		return nil, fmt.Errorf("failed to grant streak freezes: %w", err)
	}

	logger.FromContext(ctx).Info(LogMsgStreakFreezesGranted, "user_id", userID, "count", count, "total", stats.StreakFreezes)
	return stats, nil
}
