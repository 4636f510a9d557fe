package task

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/domain/entity"
)

func TestComputeStats(t *testing.T) {
	now := time.Date(2025, 3, 15, 14, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	makeTask := func(status entity.TaskStatus, due, completedAt *time.Time) *entity.Task {
		return &entity.Task{
			ID:          uuid.New(),
			Status:      status,
			DueDate:     due,
			CompletedAt: completedAt,
		}
	}

	t.Run("empty collection yields zero stats", func(t *testing.T) {
		stats := ComputeStats(nil, now)
		if stats.TotalCount != 0 || stats.PendingCount != 0 || stats.OverdueCount != 0 {
			t.Errorf("expected zero stats, got %+v", stats)
		}
	})

	t.Run("counts overdue only for pending tasks past due", func(t *testing.T) {
		tasks := []*entity.Task{
			makeTask(entity.TaskStatusTodo, &yesterday, nil),
			makeTask(entity.TaskStatusTodo, &tomorrow, nil),
			makeTask(entity.TaskStatusInProgress, nil, nil),
			makeTask(entity.TaskStatusCompleted, &yesterday, &yesterday),
		}

		stats := ComputeStats(tasks, now)

		if stats.TotalCount != 4 {
			t.Errorf("expected total 4, got %d", stats.TotalCount)
		}
		if stats.PendingCount != 3 {
			t.Errorf("expected pending 3, got %d", stats.PendingCount)
		}
		if stats.OverdueCount != 1 {
			t.Errorf("expected overdue 1, got %d", stats.OverdueCount)
		}
		if stats.CompletedCount != 1 {
			t.Errorf("expected completed 1, got %d", stats.CompletedCount)
		}
	})

	t.Run("due today is not overdue for the whole day", func(t *testing.T) {
		dueMidnight := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
		tasks := []*entity.Task{
			makeTask(entity.TaskStatusTodo, &dueMidnight, nil),
		}

		stats := ComputeStats(tasks, now)

		if stats.OverdueCount != 0 {
			t.Errorf("expected overdue 0 for a task due today, got %d", stats.OverdueCount)
		}
	})

	t.Run("completed today counts same UTC day only", func(t *testing.T) {
		earlierToday := time.Date(2025, 3, 15, 1, 0, 0, 0, time.UTC)
		tasks := []*entity.Task{
			makeTask(entity.TaskStatusCompleted, nil, &earlierToday),
			makeTask(entity.TaskStatusCompleted, nil, &yesterday),
		}

		stats := ComputeStats(tasks, now)

		if stats.CompletedTodayCount != 1 {
			t.Errorf("expected completed today 1, got %d", stats.CompletedTodayCount)
		}
	})
}
