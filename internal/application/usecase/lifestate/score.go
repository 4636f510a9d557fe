// Package lifestate derives the cross-domain life score.
package lifestate

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/lifeos/backend/internal/domain/entity"
)

// ScoreInputs carries the aggregates the scorer reads. Zero values mean
// "no data" and pull the matching sub-score to its neutral 50.
type ScoreInputs struct {
	TotalTasks      int
	CompletedTasks  int
	TotalHabits     int
	HabitsDoneToday int
	AverageStreak   float64
	Income          decimal.Decimal
	Expenses        decimal.Decimal
	// MoodAverage is the mean mood of recent journal entries, 0 when the
	// journal is empty.
	MoodAverage float64
}

// ComputeScore derives the weighted 0-100 life score. Each sub-score
// defaults to a neutral 50 when its domain holds no data, so a brand-new
// account lands exactly in the middle.
func ComputeScore(in ScoreInputs) (int, entity.ScoreBreakdown) {
	taskScore := 50.0
	if in.TotalTasks > 0 {
		taskScore = float64(in.CompletedTasks) / float64(in.TotalTasks) * 100
	}

	habitScore := 50.0
	if in.TotalHabits > 0 {
		habitScore = float64(in.HabitsDoneToday) / float64(in.TotalHabits) * 100
	}

	streakBonus := math.Min(in.AverageStreak*2, 20)

	financeScore := 50.0
	if in.Income.IsPositive() {
		savingsRate, _ := in.Income.Sub(in.Expenses).Div(in.Income).Mul(decimal.NewFromInt(100)).Float64()
		financeScore = clamp(savingsRate+50, 0, 100)
	}

	mood := in.MoodAverage
	if mood == 0 {
		mood = 5
	}
	wellbeingScore := mood * 10

	score := math.Round(0.25*(taskScore+habitScore+financeScore+wellbeingScore) + streakBonus)

	return int(clamp(score, 0, 100)), entity.ScoreBreakdown{
		TaskScore:      taskScore,
		HabitScore:     habitScore,
		FinanceScore:   financeScore,
		WellbeingScore: wellbeingScore,
		StreakBonus:    streakBonus,
	}
}

// StateFor maps a score to its categorical band with fixed presentation
// strings.
func StateFor(score int) (entity.LifeStateName, string, string) {
	switch {
	case score >= 80:
		return entity.LifeStateHighMomentum, "#22c55e", "Everything is clicking. Keep riding the wave."
	case score >= 60:
		return entity.LifeStateOnTrack, "#3b82f6", "Solid progress across the board."
	case score >= 40:
		return entity.LifeStateDrifting, "#f59e0b", "A few areas need attention before they slip."
	default:
		return entity.LifeStateOverloaded, "#ef4444", "Too much is falling behind. Time to reset."
	}
}

// TrendFor compares tasks completed in the last seven days against the
// seven before. A previous window of zero reads as up when anything was
// completed recently, stable otherwise.
func TrendFor(recent, previous int) entity.TrendDirection {
	if previous == 0 {
		if recent > 0 {
			return entity.TrendUp
		}
		return entity.TrendStable
	}

	ratio := float64(recent) / float64(previous)
	switch {
	case ratio > 1.2:
		return entity.TrendUp
	case ratio < 0.8:
		return entity.TrendDown
	default:
		return entity.TrendStable
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
