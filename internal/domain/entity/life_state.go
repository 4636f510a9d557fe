// Package entity defines the core business entities for the domain layer.
package entity

// LifeStateName labels the categorical band a life score falls in.
type LifeStateName string

const (
	LifeStateHighMomentum LifeStateName = "High Momentum"
	LifeStateOnTrack      LifeStateName = "On Track"
	LifeStateDrifting     LifeStateName = "Drifting"
	LifeStateOverloaded   LifeStateName = "Overloaded"
)

// TrendDirection is a coarse momentum indicator comparing the last seven
// days of completed tasks against the seven days before.
type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

// ScoreBreakdown exposes the sub-scores feeding the weighted life score.
type ScoreBreakdown struct {
	TaskScore      float64 `json:"task_score"`
	HabitScore     float64 `json:"habit_score"`
	FinanceScore   float64 `json:"finance_score"`
	WellbeingScore float64 `json:"wellbeing_score"`
	StreakBonus    float64 `json:"streak_bonus"`
}

// LifeState is the derived 0-100 aggregate across four domains plus a
// streak bonus, mapped to a categorical band with fixed presentation
// strings.
type LifeState struct {
	Score       int            `json:"score"`
	State       LifeStateName  `json:"state"`
	Color       string         `json:"color"`
	Description string         `json:"description"`
	Trend       TrendDirection `json:"trend"`
	Breakdown   ScoreBreakdown `json:"breakdown"`
}
