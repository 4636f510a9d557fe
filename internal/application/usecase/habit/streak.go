// Package habit contains habit-related use cases.
package habit

import (
	"time"

	"github.com/lifeos/backend/internal/domain/entity"
)

// Streak derives the current streak from a habit's completion log. The
// walk starts at today and steps back one day at a time; a day counts
// only when an explicit completed record exists for it. Missing today is
// forgiven, so an unbroken run ending yesterday still counts until the
// day is over.
func Streak(completions []entity.HabitCompletion, today time.Time) int {
	done := make(map[string]bool, len(completions))
	for _, c := range completions {
		if c.Completed {
			done[dayKey(c.Date)] = true
		}
	}

	day := today.UTC().Truncate(24 * time.Hour)
	if !done[dayKey(day)] {
		day = day.Add(-24 * time.Hour)
	}

	streak := 0
	for done[dayKey(day)] {
		streak++
		day = day.Add(-24 * time.Hour)
	}

	return streak
}

// CompletedOn reports whether the log holds a completed record for the
// given day.
func CompletedOn(completions []entity.HabitCompletion, day time.Time) bool {
	key := dayKey(day)
	for _, c := range completions {
		if c.Completed && dayKey(c.Date) == key {
			return true
		}
	}
	return false
}

// ComputeStats derives habit counters for a user's habit collection.
func ComputeStats(habits []*entity.Habit, today time.Time) entity.HabitStats {
	stats := entity.HabitStats{TotalCount: len(habits)}
	if len(habits) == 0 {
		return stats
	}

	totalStreak := 0
	for _, h := range habits {
		streak := Streak(h.Completions, today)
		totalStreak += streak
		if streak > stats.LongestStreak {
			stats.LongestStreak = streak
		}
		if CompletedOn(h.Completions, today) {
			stats.CompletedTodayCount++
		}
	}

	stats.AverageStreak = float64(totalStreak) / float64(len(habits))

	return stats
}

func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
