package timetracking

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/domain/entity"
)

func entry(category entity.TimeCategory, minutes int, start time.Time, quality entity.FocusQuality) *entity.TimeEntry {
	return &entity.TimeEntry{
		ID:              uuid.New(),
		Category:        category,
		DurationMinutes: minutes,
		StartTime:       start,
		EndTime:         start.Add(time.Duration(minutes) * time.Minute),
		FocusQuality:    quality,
	}
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("deep focus counts deep quality across all categories", func(t *testing.T) {
		start, end := DayBounds(now)
		entries := []*entity.TimeEntry{
			entry(entity.TimeCategoryDeepWork, 90, now, entity.FocusQualityDeep),
			entry(entity.TimeCategoryDeepWork, 30, now, entity.FocusQualityDistracted),
			entry(entity.TimeCategoryMeetings, 60, now, entity.FocusQualityDeep),
		}

		stats := ComputeStats(entries, start, end, false)

		if stats.TotalMinutes != 180 {
			t.Errorf("expected total 180, got %d", stats.TotalMinutes)
		}
		if stats.DeepFocusMinutes != 150 {
			t.Errorf("expected deep focus 150, got %d", stats.DeepFocusMinutes)
		}
		if stats.ByCategory[entity.TimeCategoryDeepWork] != 120 {
			t.Errorf("expected deep_work 120, got %d", stats.ByCategory[entity.TimeCategoryDeepWork])
		}
	})

	t.Run("a deep learning session is all deep focus", func(t *testing.T) {
		start, end := DayBounds(now)
		entries := []*entity.TimeEntry{
			entry(entity.TimeCategoryLearning, 90, now, entity.FocusQualityDeep),
		}

		stats := ComputeStats(entries, start, end, false)

		if stats.DeepFocusMinutes != 90 {
			t.Errorf("expected deep focus 90, got %d", stats.DeepFocusMinutes)
		}
	})

	t.Run("window excludes entries outside bounds", func(t *testing.T) {
		start, end := DayBounds(now)
		entries := []*entity.TimeEntry{
			entry(entity.TimeCategoryAdmin, 45, now, entity.FocusQualityShallow),
			entry(entity.TimeCategoryAdmin, 45, now.Add(-48*time.Hour), entity.FocusQualityShallow),
		}

		stats := ComputeStats(entries, start, end, false)

		if stats.EntryCount != 1 {
			t.Errorf("expected 1 entry in window, got %d", stats.EntryCount)
		}
	})

	t.Run("weekly average always divides by seven", func(t *testing.T) {
		start, end := WeekBounds(now)
		// Only two days carry entries; the average still spreads over 7.
		entries := []*entity.TimeEntry{
			entry(entity.TimeCategoryDeepWork, 350, now, entity.FocusQualityDeep),
			entry(entity.TimeCategoryLearning, 350, now.Add(-24*time.Hour), entity.FocusQualityShallow),
		}

		stats := ComputeStats(entries, start, end, true)

		if stats.AvgDailyMinutes != 100 {
			t.Errorf("expected avg daily 100, got %d", stats.AvgDailyMinutes)
		}
	})
}
