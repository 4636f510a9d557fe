package habit

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/domain/entity"
)

func day(offset int) time.Time {
	base := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(offset) * 24 * time.Hour)
}

func completions(offsets ...int) []entity.HabitCompletion {
	var out []entity.HabitCompletion
	for _, o := range offsets {
		out = append(out, entity.HabitCompletion{
			ID:        uuid.New(),
			Date:      day(o),
			Completed: true,
		})
	}
	return out
}

func TestStreak(t *testing.T) {
	today := day(0)

	tests := []struct {
		name        string
		completions []entity.HabitCompletion
		want        int
	}{
		{
			name:        "no completions",
			completions: nil,
			want:        0,
		},
		{
			name:        "completed today only",
			completions: completions(0),
			want:        1,
		},
		{
			name:        "three consecutive days ending today",
			completions: completions(-2, -1, 0),
			want:        3,
		},
		{
			name:        "today missing preserves run ending yesterday",
			completions: completions(-3, -2, -1),
			want:        3,
		},
		{
			name:        "gap two days ago breaks the run",
			completions: completions(-4, -3, -1, 0),
			want:        2,
		},
		{
			name:        "run ended before yesterday counts as zero",
			completions: completions(-5, -4, -3),
			want:        0,
		},
		{
			name: "uncompleted record does not extend the run",
			completions: append(completions(0), entity.HabitCompletion{
				ID:        uuid.New(),
				Date:      day(-1),
				Completed: false,
			}),
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Streak(tt.completions, today); got != tt.want {
				t.Errorf("Streak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestComputeStats(t *testing.T) {
	today := day(0)

	t.Run("empty collection", func(t *testing.T) {
		stats := ComputeStats(nil, today)
		if stats.TotalCount != 0 || stats.AverageStreak != 0 {
			t.Errorf("expected zero stats, got %+v", stats)
		}
	})

	t.Run("averages streaks across habits", func(t *testing.T) {
		habits := []*entity.Habit{
			{ID: uuid.New(), Completions: completions(-2, -1, 0)},
			{ID: uuid.New(), Completions: completions(0)},
			{ID: uuid.New(), Completions: nil},
		}

		stats := ComputeStats(habits, today)

		if stats.TotalCount != 3 {
			t.Errorf("expected total 3, got %d", stats.TotalCount)
		}
		if stats.CompletedTodayCount != 2 {
			t.Errorf("expected completed today 2, got %d", stats.CompletedTodayCount)
		}
		if stats.LongestStreak != 3 {
			t.Errorf("expected longest 3, got %d", stats.LongestStreak)
		}
		want := 4.0 / 3.0
		if stats.AverageStreak != want {
			t.Errorf("expected average %.4f, got %.4f", want, stats.AverageStreak)
		}
	})
}
