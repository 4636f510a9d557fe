// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/lifeos/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Title      string     `json:"title" binding:"required,min=1,max=255"`
	Category   string     `json:"category,omitempty"`
	Priority   string     `json:"priority,omitempty" binding:"omitempty,oneof=low medium high"`
	TargetDate *time.Time `json:"target_date,omitempty"`
	Milestones []string   `json:"milestones,omitempty"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Title      *string    `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
	Category   *string    `json:"category,omitempty"`
	Status     *string    `json:"status,omitempty" binding:"omitempty,oneof=active paused completed"`
	Progress   *int       `json:"progress,omitempty" binding:"omitempty,gte=0,lte=100"`
	TargetDate *time.Time `json:"target_date,omitempty"`
}

// MilestoneResponse represents a milestone in API responses.
type MilestoneResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID         string              `json:"id"`
	Title      string              `json:"title"`
	Category   string              `json:"category"`
	Priority   string              `json:"priority"`
	Progress   int                 `json:"progress"`
	Status     string              `json:"status"`
	TargetDate *time.Time          `json:"target_date,omitempty"`
	Milestones []MilestoneResponse `json:"milestones"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// GoalStatsResponse represents derived goal counters in API responses.
type GoalStatsResponse struct {
	Total          int            `json:"total"`
	AvgProgress    int            `json:"avg_progress"`
	CountsByStatus map[string]int `json:"counts_by_status"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse    `json:"goals"`
	Stats GoalStatsResponse `json:"stats"`
}

// ToGoalResponse converts a domain Goal to a GoalResponse DTO.
func ToGoalResponse(goal *entity.Goal) GoalResponse {
	milestones := make([]MilestoneResponse, len(goal.Milestones))
	for i, m := range goal.Milestones {
		milestones[i] = MilestoneResponse{
			ID:        m.ID.String(),
			Title:     m.Title,
			Completed: m.Completed,
		}
	}

	return GoalResponse{
		ID:         goal.ID.String(),
		Title:      goal.Title,
		Category:   goal.Category,
		Priority:   string(goal.Priority),
		Progress:   goal.Progress,
		Status:     string(goal.Status),
		TargetDate: goal.TargetDate,
		Milestones: milestones,
		CreatedAt:  goal.CreatedAt,
		UpdatedAt:  goal.UpdatedAt,
	}
}

// ToGoalListResponse converts goals and stats to a GoalListResponse DTO.
func ToGoalListResponse(goals []*entity.Goal, stats entity.GoalStats) GoalListResponse {
	out := make([]GoalResponse, len(goals))
	for i, g := range goals {
		out[i] = ToGoalResponse(g)
	}

	countsByStatus := make(map[string]int, len(stats.CountsByStatus))
	for status, count := range stats.CountsByStatus {
		countsByStatus[string(status)] = count
	}

	return GoalListResponse{
		Goals: out,
		Stats: GoalStatsResponse{
			Total:          stats.TotalCount,
			AvgProgress:    stats.AvgProgress,
			CountsByStatus: countsByStatus,
		},
	}
}
