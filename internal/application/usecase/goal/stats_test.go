package goal

import (
	"testing"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/domain/entity"
)

func TestComputeStats(t *testing.T) {
	t.Run("empty collection", func(t *testing.T) {
		stats := ComputeStats(nil)
		if stats.TotalCount != 0 || stats.AvgProgress != 0 {
			t.Errorf("expected zero stats, got %+v", stats)
		}
	})

	t.Run("averages progress and counts statuses", func(t *testing.T) {
		goals := []*entity.Goal{
			{ID: uuid.New(), Progress: 100, Status: entity.GoalStatusCompleted},
			{ID: uuid.New(), Progress: 50, Status: entity.GoalStatusActive},
			{ID: uuid.New(), Progress: 0, Status: entity.GoalStatusPaused},
		}

		stats := ComputeStats(goals)

		if stats.AvgProgress != 50 {
			t.Errorf("expected avg 50, got %d", stats.AvgProgress)
		}
		if stats.CountsByStatus[entity.GoalStatusActive] != 1 {
			t.Errorf("expected 1 active goal, got %d", stats.CountsByStatus[entity.GoalStatusActive])
		}
	})
}

func TestRecalculateProgress(t *testing.T) {
	t.Run("no milestones keeps manual progress", func(t *testing.T) {
		g := &entity.Goal{Progress: 40}
		g.RecalculateProgress()
		if g.Progress != 40 {
			t.Errorf("expected 40, got %d", g.Progress)
		}
	})

	t.Run("one of three milestones rounds to 33", func(t *testing.T) {
		g := &entity.Goal{Milestones: []entity.Milestone{
			{Completed: true},
			{Completed: false},
			{Completed: false},
		}}
		g.RecalculateProgress()
		if g.Progress != 33 {
			t.Errorf("expected 33, got %d", g.Progress)
		}
	})

	t.Run("two of three milestones rounds to 67", func(t *testing.T) {
		g := &entity.Goal{Milestones: []entity.Milestone{
			{Completed: true},
			{Completed: true},
			{Completed: false},
		}}
		g.RecalculateProgress()
		if g.Progress != 67 {
			t.Errorf("expected 67, got %d", g.Progress)
		}
	})
}
