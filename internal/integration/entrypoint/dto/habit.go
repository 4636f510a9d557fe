// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/lifeos/backend/internal/domain/entity"
)

// CreateHabitRequest represents the request body for habit creation.
type CreateHabitRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=255"`
	Category  string `json:"category,omitempty"`
	Frequency string `json:"frequency,omitempty" binding:"omitempty,oneof=daily weekly"`
}

// ToggleHabitRequest represents the request body for toggling a habit day.
// Date defaults to today when omitted.
type ToggleHabitRequest struct {
	Date *string `json:"date,omitempty"` // YYYY-MM-DD
}

// HabitResponse represents a single habit in API responses.
type HabitResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Frequency      string    `json:"frequency"`
	Streak         int       `json:"streak"`
	CompletedToday bool      `json:"completed_today"`
	CreatedAt      time.Time `json:"created_at"`
}

// HabitStatsResponse represents derived habit counters in API responses.
type HabitStatsResponse struct {
	Total          int     `json:"total"`
	CompletedToday int     `json:"completed_today"`
	AverageStreak  float64 `json:"average_streak"`
	LongestStreak  int     `json:"longest_streak"`
}

// HabitListResponse represents the response for listing habits.
type HabitListResponse struct {
	Habits []HabitResponse    `json:"habits"`
	Stats  HabitStatsResponse `json:"stats"`
}

// ToggleHabitResponse represents the response for toggling a habit day.
type ToggleHabitResponse struct {
	Habit  HabitResponse `json:"habit"`
	Marked bool          `json:"marked"`
}

// ToHabitResponse converts a HabitWithStreak to a HabitResponse DTO.
func ToHabitResponse(hws entity.HabitWithStreak) HabitResponse {
	return HabitResponse{
		ID:             hws.Habit.ID.String(),
		Name:           hws.Habit.Name,
		Category:       hws.Habit.Category,
		Frequency:      string(hws.Habit.Frequency),
		Streak:         hws.Streak,
		CompletedToday: hws.CompletedToday,
		CreatedAt:      hws.Habit.CreatedAt,
	}
}

// ToHabitListResponse converts habits with streaks and stats to a
// HabitListResponse DTO.
func ToHabitListResponse(habits []entity.HabitWithStreak, stats entity.HabitStats) HabitListResponse {
	out := make([]HabitResponse, len(habits))
	for i, h := range habits {
		out[i] = ToHabitResponse(h)
	}
	return HabitListResponse{
		Habits: out,
		Stats: HabitStatsResponse{
			Total:          stats.TotalCount,
			CompletedToday: stats.CompletedTodayCount,
			AverageStreak:  stats.AverageStreak,
			LongestStreak:  stats.LongestStreak,
		},
	}
}
