// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/lifeos/backend/internal/domain/entity"

// ScoreBreakdownResponse exposes the sub-scores behind the life score.
type ScoreBreakdownResponse struct {
	TaskScore      float64 `json:"task_score"`
	HabitScore     float64 `json:"habit_score"`
	FinanceScore   float64 `json:"finance_score"`
	WellbeingScore float64 `json:"wellbeing_score"`
	StreakBonus    float64 `json:"streak_bonus"`
}

// LifeStateResponse represents the derived life state in API responses.
type LifeStateResponse struct {
	Score       int                    `json:"score"`
	State       string                 `json:"state"`
	Color       string                 `json:"color"`
	Description string                 `json:"description"`
	Trend       string                 `json:"trend"`
	Breakdown   ScoreBreakdownResponse `json:"breakdown"`
}

// ToLifeStateResponse converts a domain LifeState to a LifeStateResponse DTO.
func ToLifeStateResponse(state *entity.LifeState) LifeStateResponse {
	return LifeStateResponse{
		Score:       state.Score,
		State:       string(state.State),
		Color:       state.Color,
		Description: state.Description,
		Trend:       string(state.Trend),
		Breakdown: ScoreBreakdownResponse{
			TaskScore:      state.Breakdown.TaskScore,
			HabitScore:     state.Breakdown.HabitScore,
			FinanceScore:   state.Breakdown.FinanceScore,
			WellbeingScore: state.Breakdown.WellbeingScore,
			StreakBonus:    state.Breakdown.StreakBonus,
		},
	}
}
