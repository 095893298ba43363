package progress

import "time"

// StreakResult is the outcome of a streak transition
type StreakResult struct {
	NewStreak    int
	ShouldUpdate bool
	UsedFreeze   bool
}

// CalculateStreak decides how a daily streak moves given the last activity and now.
// Days are calendar days in loc. It has no side effects.
func CalculateStreak(currentStreak int, lastActivity *time.Time, streakFreezes int, now time.Time, loc *time.Location) StreakResult {
	if currentStreak < 0 {
		currentStreak = 0
	}
	if lastActivity == nil {
		return StreakResult{NewStreak: 1, ShouldUpdate: true}
	}

	gap := daysBetween(*lastActivity, now, loc)
	switch {
	case gap <= 0:
		if currentStreak == 0 {
			return StreakResult{NewStreak: 1, ShouldUpdate: true}
		}
		return StreakResult{NewStreak: currentStreak}
	case gap == 1:
		return StreakResult{NewStreak: currentStreak + 1, ShouldUpdate: true}
	case streakFreezes > 0 && currentStreak > 0:
		return StreakResult{NewStreak: currentStreak, ShouldUpdate: true, UsedFreeze: true}
	default:
		return StreakResult{NewStreak: 1, ShouldUpdate: true}
	}
}

// daysBetween counts calendar-day boundaries crossed from a to b in loc
func daysBetween(a, b time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.UTC
	}
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()

	// Compare as UTC midnights so DST shifts in loc do not skew the count.
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// DayBounds returns [start, end) of now's calendar day in loc
func DayBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := now.In(loc).Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}
