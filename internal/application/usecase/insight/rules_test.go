package insight

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeos/backend/internal/domain/entity"
)

func TestGenerate(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("no data produces no insights", func(t *testing.T) {
		insights := Generate(Aggregates{WeeklyExpenses: decimal.Zero}, RuleConfig{}, now)
		if len(insights) != 0 {
			t.Errorf("expected none, got %d", len(insights))
		}
	})

	t.Run("streak over seven days fires per qualifying habit", func(t *testing.T) {
		agg := Aggregates{
			WeeklyExpenses: decimal.Zero,
			Habits: []entity.HabitWithStreak{
				{Habit: &entity.Habit{ID: uuid.New(), Name: "meditation"}, Streak: 8},
				{Habit: &entity.Habit{ID: uuid.New(), Name: "running"}, Streak: 12},
				{Habit: &entity.Habit{ID: uuid.New(), Name: "reading"}, Streak: 7},
			},
		}

		insights := Generate(agg, RuleConfig{}, now)

		if len(insights) != 2 {
			t.Fatalf("expected 2 streak insights, got %d", len(insights))
		}
		for _, in := range insights {
			if in.Type != entity.InsightTypeAchievement {
				t.Errorf("expected achievement, got %s", in.Type)
			}
		}
	})

	t.Run("exactly ten completed tasks does not fire the sprint", func(t *testing.T) {
		agg := Aggregates{WeeklyExpenses: decimal.Zero, CompletedTasks: 10}
		if got := Generate(agg, RuleConfig{}, now); len(got) != 0 {
			t.Errorf("expected none at the threshold, got %d", len(got))
		}

		agg.CompletedTasks = 11
		insights := Generate(agg, RuleConfig{}, now)
		if len(insights) != 1 || insights[0].Title != "Productive Sprint" {
			t.Fatalf("expected the sprint insight, got %+v", insights)
		}
	})

	t.Run("spending over 500 in the week warns", func(t *testing.T) {
		agg := Aggregates{WeeklyExpenses: decimal.NewFromFloat(520.50)}
		insights := Generate(agg, RuleConfig{}, now)
		if len(insights) != 1 || insights[0].Severity != entity.InsightSeverityWarning {
			t.Fatalf("expected one spending warning, got %+v", insights)
		}
	})

	t.Run("stalled active goal recommends once", func(t *testing.T) {
		agg := Aggregates{
			WeeklyExpenses: decimal.Zero,
			Goals: []*entity.Goal{
				{ID: uuid.New(), Title: "learn piano", Status: entity.GoalStatusActive, Progress: 10},
				{ID: uuid.New(), Title: "run marathon", Status: entity.GoalStatusActive, Progress: 5},
				{ID: uuid.New(), Title: "paused thing", Status: entity.GoalStatusPaused, Progress: 0},
			},
		}

		insights := Generate(agg, RuleConfig{}, now)
		if len(insights) != 1 || insights[0].Type != entity.InsightTypeRecommendation {
			t.Fatalf("expected one recommendation, got %+v", insights)
		}
	})

	t.Run("low mood needs seven entries", func(t *testing.T) {
		agg := Aggregates{
			WeeklyExpenses:      decimal.Zero,
			JournalEntriesTotal: 6,
			RecentMoodAverage:   3.5,
		}
		if got := Generate(agg, RuleConfig{}, now); len(got) != 0 {
			t.Errorf("expected none with only 6 entries, got %d", len(got))
		}

		agg.JournalEntriesTotal = 7
		insights := Generate(agg, RuleConfig{}, now)
		if len(insights) != 1 || insights[0].Type != entity.InsightTypeWellbeing {
			t.Fatalf("expected one wellbeing warning, got %+v", insights)
		}
	})

	t.Run("regeneration over unchanged data yields identical IDs", func(t *testing.T) {
		agg := Aggregates{
			WeeklyExpenses: decimal.NewFromInt(600),
			CompletedTasks: 15,
		}

		first := Generate(agg, RuleConfig{}, now)
		second := Generate(agg, RuleConfig{}, now.Add(time.Hour))

		if len(first) != len(second) {
			t.Fatalf("expected same length, got %d vs %d", len(first), len(second))
		}
		for i := range first {
			if first[i].ID != second[i].ID {
				t.Errorf("expected stable ID at %d, got %s vs %s", i, first[i].ID, second[i].ID)
			}
		}
	})
}
