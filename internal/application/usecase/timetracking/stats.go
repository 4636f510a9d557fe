// Package timetracking contains time entry use cases.
package timetracking

import (
	"math"
	"time"

	"github.com/lifeos/backend/internal/domain/entity"
)

// ComputeStats aggregates minutes over entries whose start time falls in
// [start, end). Deep focus counts every entry logged with deep focus
// quality regardless of its category. When weekly is set,
// AvgDailyMinutes divides the total by a full seven days no matter how
// many were actually logged.
func ComputeStats(entries []*entity.TimeEntry, start, end time.Time, weekly bool) entity.TimeStats {
	stats := entity.TimeStats{
		ByCategory: map[entity.TimeCategory]int{},
	}

	for _, e := range entries {
		if e.StartTime.Before(start) || !e.StartTime.Before(end) {
			continue
		}

		stats.EntryCount++
		stats.TotalMinutes += e.DurationMinutes
		stats.ByCategory[e.Category] += e.DurationMinutes

		if e.FocusQuality == entity.FocusQualityDeep {
			stats.DeepFocusMinutes += e.DurationMinutes
		}
	}

	if weekly {
		stats.AvgDailyMinutes = int(math.Round(float64(stats.TotalMinutes) / 7))
	}

	return stats
}

// DayBounds returns the UTC midnight bounds of the day containing t.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := t.UTC().Truncate(24 * time.Hour)
	return start, start.Add(24 * time.Hour)
}

// WeekBounds returns the rolling seven-day window ending just after t.
func WeekBounds(t time.Time) (time.Time, time.Time) {
	_, end := DayBounds(t)
	return end.Add(-7 * 24 * time.Hour), end
}
