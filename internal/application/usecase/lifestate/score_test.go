package lifestate

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/lifeos/backend/internal/domain/entity"
)

func TestComputeScore(t *testing.T) {
	t.Run("all-empty input lands exactly on 50", func(t *testing.T) {
		score, breakdown := ComputeScore(ScoreInputs{})
		if score != 50 {
			t.Errorf("expected 50, got %d", score)
		}
		if breakdown.TaskScore != 50 || breakdown.HabitScore != 50 ||
			breakdown.FinanceScore != 50 || breakdown.WellbeingScore != 50 {
			t.Errorf("expected all neutral sub-scores, got %+v", breakdown)
		}
		if breakdown.StreakBonus != 0 {
			t.Errorf("expected zero streak bonus, got %v", breakdown.StreakBonus)
		}
	})

	t.Run("two of three habits done contributes 16.67 points", func(t *testing.T) {
		_, breakdown := ComputeScore(ScoreInputs{
			TotalHabits:     3,
			HabitsDoneToday: 2,
		})
		want := 2.0 / 3.0 * 100
		if diff := breakdown.HabitScore - want; diff > 0.01 || diff < -0.01 {
			t.Errorf("expected habit score %.2f, got %.2f", want, breakdown.HabitScore)
		}
	})

	t.Run("streak bonus caps at 20", func(t *testing.T) {
		_, breakdown := ComputeScore(ScoreInputs{AverageStreak: 30})
		if breakdown.StreakBonus != 20 {
			t.Errorf("expected cap 20, got %v", breakdown.StreakBonus)
		}
	})

	t.Run("negative savings drags the finance score below 50", func(t *testing.T) {
		_, breakdown := ComputeScore(ScoreInputs{
			Income:   decimal.NewFromInt(1000),
			Expenses: decimal.NewFromInt(1500),
		})
		if breakdown.FinanceScore != 0 {
			t.Errorf("expected finance score clamped to 0, got %v", breakdown.FinanceScore)
		}
	})

	t.Run("score never leaves the 0-100 range", func(t *testing.T) {
		score, _ := ComputeScore(ScoreInputs{
			TotalTasks:      10,
			CompletedTasks:  10,
			TotalHabits:     5,
			HabitsDoneToday: 5,
			AverageStreak:   50,
			Income:          decimal.NewFromInt(5000),
			Expenses:        decimal.Zero,
			MoodAverage:     10,
		})
		if score != 100 {
			t.Errorf("expected ceiling 100, got %d", score)
		}
	})
}

func TestStateFor(t *testing.T) {
	tests := []struct {
		score int
		want  entity.LifeStateName
	}{
		{100, entity.LifeStateHighMomentum},
		{80, entity.LifeStateHighMomentum},
		{79, entity.LifeStateOnTrack},
		{60, entity.LifeStateOnTrack},
		{59, entity.LifeStateDrifting},
		{40, entity.LifeStateDrifting},
		{39, entity.LifeStateOverloaded},
		{0, entity.LifeStateOverloaded},
	}

	for _, tt := range tests {
		if got, _, _ := StateFor(tt.score); got != tt.want {
			t.Errorf("StateFor(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestTrendFor(t *testing.T) {
	tests := []struct {
		name             string
		recent, previous int
		want             entity.TrendDirection
	}{
		{"clear increase", 13, 10, entity.TrendUp},
		{"clear decrease", 7, 10, entity.TrendDown},
		{"within band", 10, 10, entity.TrendStable},
		{"exactly 1.2 stays stable", 12, 10, entity.TrendStable},
		{"exactly 0.8 stays stable", 8, 10, entity.TrendStable},
		{"fresh start counts as up", 3, 0, entity.TrendUp},
		{"nothing either week", 0, 0, entity.TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrendFor(tt.recent, tt.previous); got != tt.want {
				t.Errorf("TrendFor(%d, %d) = %s, want %s", tt.recent, tt.previous, got, tt.want)
			}
		})
	}
}
