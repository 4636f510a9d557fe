// Package entity defines the core business entities for the domain layer.
package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// GoalStatus represents the lifecycle state of a goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusPaused    GoalStatus = "paused"
	GoalStatusCompleted GoalStatus = "completed"
)

// Goal represents a long-running objective with optional milestones.
// When milestones are present, Progress is always derived from them:
// round(completed/total*100).
type Goal struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Title      string
	Category   string
	Priority   TaskPriority
	Progress   int // 0-100
	Status     GoalStatus
	TargetDate *time.Time
	Milestones []Milestone
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time // Soft-delete support
}

// Milestone represents a discrete step toward a goal.
type Milestone struct {
	ID        uuid.UUID
	GoalID    uuid.UUID
	Title     string
	Completed bool
	CreatedAt time.Time
}

// NewGoal creates a new Goal entity in the active state.
func NewGoal(userID uuid.UUID, title, category string, priority TaskPriority, targetDate *time.Time) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:         uuid.New(),
		UserID:     userID,
		Title:      title,
		Category:   category,
		Priority:   priority,
		Status:     GoalStatusActive,
		TargetDate: targetDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// RecalculateProgress derives Progress from the milestone list. Goals
// without milestones keep their manually-set progress.
func (g *Goal) RecalculateProgress() {
	if len(g.Milestones) == 0 {
		return
	}

	completed := 0
	for _, m := range g.Milestones {
		if m.Completed {
			completed++
		}
	}

	g.Progress = int(math.Round(float64(completed) / float64(len(g.Milestones)) * 100))
}

// GoalStats represents derived counters over a user's goal collection.
type GoalStats struct {
	TotalCount     int
	AvgProgress    int
	CountsByStatus map[GoalStatus]int
}
