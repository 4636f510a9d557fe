// Package task contains task-related use cases.
package task

import (
	"time"

	"github.com/lifeos/backend/internal/domain/entity"
)

// ComputeStats derives task counters from a full task collection.
// A task is overdue when it has a due date before the start of today
// and is not completed, so a task due today stays on time all day.
// CompletedToday compares calendar days in UTC.
func ComputeStats(tasks []*entity.Task, now time.Time) entity.TaskStats {
	stats := entity.TaskStats{TotalCount: len(tasks)}

	today := now.UTC().Truncate(24 * time.Hour)

	for _, t := range tasks {
		if t.Status == entity.TaskStatusCompleted {
			stats.CompletedCount++
			if t.CompletedAt != nil && !t.CompletedAt.UTC().Truncate(24*time.Hour).Before(today) {
				stats.CompletedTodayCount++
			}
			continue
		}

		stats.PendingCount++
		if t.DueDate != nil && t.DueDate.Before(today) {
			stats.OverdueCount++
		}
	}

	return stats
}
