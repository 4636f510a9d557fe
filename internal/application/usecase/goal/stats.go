// Package goal contains goal and milestone use cases.
package goal

import (
	"math"

	"github.com/lifeos/backend/internal/domain/entity"
)

// ComputeStats derives counters over a user's goal collection.
// AvgProgress is the rounded mean across all goals regardless of status.
func ComputeStats(goals []*entity.Goal) entity.GoalStats {
	stats := entity.GoalStats{
		TotalCount:     len(goals),
		CountsByStatus: map[entity.GoalStatus]int{},
	}
	if len(goals) == 0 {
		return stats
	}

	total := 0
	for _, g := range goals {
		total += g.Progress
		stats.CountsByStatus[g.Status]++
	}

	stats.AvgProgress = int(math.Round(float64(total) / float64(len(goals))))

	return stats
}
