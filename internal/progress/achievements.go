package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/TaskQuest_Go/internal/domain"
	"github.com/osse101/TaskQuest_Go/internal/repository"
)

// EvaluationResult lists achievements that newly qualify and their combined reward
type EvaluationResult struct {
	Achievements []domain.UnlockedAchievement
	TotalReward  int64
}

// EvaluateAchievements returns catalog achievements not in unlocked whose condition is met.
// It only reads from src, so it is safe to call repeatedly before anything is committed.
func EvaluateAchievements(ctx context.Context, src repository.AchievementSource, userID string, currentXP int64, currentStreak int, unlocked map[string]struct{}, dayStart, dayEnd time.Time) (EvaluationResult, error) {
	catalog, err := src.GetAchievementCatalog(ctx)
	if err != nil {
		return EvaluationResult{}, fmt.Errorf(ErrMsgLoadCatalogFailed, err)
	}

	pending := make([]domain.Achievement, 0, len(catalog))
	for _, a := range catalog {
		if _, ok := unlocked[a.ID]; !ok {
			pending = append(pending, a)
		}
	}
	if len(pending) == 0 {
		return EvaluationResult{}, nil
	}

	total, daily, err := src.CountCompletedTasks(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return EvaluationResult{}, fmt.Errorf(ErrMsgCountTasksFailed, err)
	}

	var result EvaluationResult
	for _, a := range pending {
		if !qualifies(a, total, daily, currentStreak) {
			continue
		}
		result.Achievements = append(result.Achievements, domain.UnlockedAchievement{
			ID:       a.ID,
			Name:     a.Name,
			XPReward: a.XPReward,
		})
		result.TotalReward += int64(a.XPReward)
	}
	return result, nil
}

func qualifies(a domain.Achievement, total, daily, streak int) bool {
	switch a.ConditionType {
	case domain.ConditionCountTotal:
		return total >= a.ConditionValue
	case domain.ConditionCountDaily:
		return daily >= a.ConditionValue
	case domain.ConditionStreak:
		return streak >= a.ConditionValue
	default:
		return false
	}
}
