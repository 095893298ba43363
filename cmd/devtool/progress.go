package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/TaskQuest_Go/internal/database/postgres"
	"github.com/osse101/TaskQuest_Go/internal/domain"
	"github.com/osse101/TaskQuest_Go/internal/progress"
)

func progressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Inspect user progress",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show <user_id>",
		Short: "Print a user's XP, level, streak and unlocked achievements",
		Args:  cobra.ExactArgs(1),
		RunE:  runProgressShow,
	})

	return cmd
}

func runProgressShow(cmd *cobra.Command, args []string) error {
	userID := args[0]
	ctx := cmd.Context()

	pool, err := connect(ctx, cmd)
	if err != nil {
		return err
	}
	defer pool.Close()

	svc := progress.NewService(postgres.NewProgressRepository(pool), nil, nil, nil, time.UTC)

	userProgress, err := svc.GetUserProgress(ctx, userID)
	if err != nil {
		return err
	}
	achievements, err := svc.GetAchievements(ctx, userID)
	if err != nil {
		return err
	}

	printProgress(cmd.OutOrStdout(), userProgress, achievements)
	return nil
}

func printProgress(w io.Writer, p *domain.UserProgress, achievements []domain.AchievementWithStatus) {
	PrintHeader(w, "Progress for "+p.Stats.UserID)
	fmt.Fprintf(w, "  XP:        %d\n", p.Stats.XP)
	fmt.Fprintf(w, "  Level:     %d (%d%%, %d XP to next)\n", p.LevelInfo.Level, p.LevelInfo.ProgressPercent, p.LevelInfo.XPToNextLevel)
	fmt.Fprintf(w, "  Streak:    %d (longest %d)\n", p.Stats.CurrentStreak, p.Stats.LongestStreak)
	fmt.Fprintf(w, "  Freezes:   %d\n", p.Stats.StreakFreezes)
	if p.Stats.LastLogin != nil {
		fmt.Fprintf(w, "  Last seen: %s\n", p.Stats.LastLogin.Format(time.RFC3339))
	}

	unlocked := 0
	for _, a := range achievements {
		if a.Unlocked {
			unlocked++
		}
	}

	PrintHeader(w, fmt.Sprintf("Achievements (%d/%d)", unlocked, len(achievements)))
	for _, a := range achievements {
		mark := " "
		if a.Unlocked {
			mark = "x"
		}
		fmt.Fprintf(w, "  [%s] %-24s %-28s %s %d\n", mark, a.ID, a.Name, conditionLabel(a.ConditionType), a.ConditionValue)
	}
}

// conditionLabel turns "count_daily" into "Count Daily"
func conditionLabel(c domain.ConditionType) string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(c), "_", " "))
}
