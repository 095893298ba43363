package progress

import (
	"math"

	"github.com/osse101/TaskQuest_Go/internal/domain"
)

// CalculateLevel maps cumulative XP to a level: floor(sqrt(xp/100)) + 1.
// Negative XP is level 1.
func CalculateLevel(xp int64) int {
	if xp <= 0 {
		return MinLevel
	}

	level := int(math.Sqrt(float64(xp)/XPPerLevelUnit)) + 1
	if level > MaxLevel {
		level = MaxLevel
	}

	// Correct float rounding near exact squares.
	for level > MinLevel && XPForLevel(level) > xp {
		level--
	}
	for level < MaxLevel && XPForLevel(level+1) <= xp {
		level++
	}
	return level
}

// XPForLevel returns the minimum XP at which level is first reached.
// Levels past MaxLevel saturate at math.MaxInt64.
func XPForLevel(level int) int64 {
	if level <= MinLevel {
		return 0
	}
	n := int64(level - 1)
	if n > maxLevelUnits {
		return math.MaxInt64
	}
	return n * n * XPPerLevelUnit
}

// AddXP adds delta to xp, saturating at math.MaxInt64
func AddXP(xp, delta int64) int64 {
	if delta > 0 && xp > math.MaxInt64-delta {
		return math.MaxInt64
	}
	return xp + delta
}

// ProgressWithinLevel returns 0-100 percent progress from level's threshold toward the next one.
// Always clamped, even when level does not match xp.
func ProgressWithinLevel(xp int64, level int) int {
	if level < MinLevel {
		level = MinLevel
	}
	start := XPForLevel(level)
	next := XPForLevel(level + 1)

	switch {
	case xp <= start:
		return 0
	case xp >= next:
		return 100
	}
	// next-start <= (2*maxLevelUnits+1)*XPPerLevelUnit, so the product fits in int64.
	return int((xp - start) * 100 / (next - start))
}

// LevelInfo describes where xp sits on the level curve
func LevelInfo(xp int64) domain.LevelInfo {
	if xp < 0 {
		xp = 0
	}
	level := CalculateLevel(xp)
	next := XPForLevel(level + 1)
	return domain.LevelInfo{
		Level:           level,
		XP:              xp,
		LevelStartXP:    XPForLevel(level),
		NextLevelXP:     next,
		XPToNextLevel:   next - xp,
		ProgressPercent: ProgressWithinLevel(xp, level),
	}
}
