package task

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/domain/entity"
)

// GetTaskStatsInput represents the input for task stats retrieval.
type GetTaskStatsInput struct {
	UserID uuid.UUID
}

// GetTaskStatsOutput represents the output of task stats retrieval.
type GetTaskStatsOutput struct {
	Stats entity.TaskStats
}

// GetTaskStatsUseCase derives counters over the user's task collection.
type GetTaskStatsUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewGetTaskStatsUseCase creates a new GetTaskStatsUseCase instance.
func NewGetTaskStatsUseCase(taskRepo adapter.TaskRepository) *GetTaskStatsUseCase {
	return &GetTaskStatsUseCase{taskRepo: taskRepo}
}

// Execute computes task stats for the user.
func (uc *GetTaskStatsUseCase) Execute(ctx context.Context, input GetTaskStatsInput) (*GetTaskStatsOutput, error) {
	tasks, err := uc.taskRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	return &GetTaskStatsOutput{Stats: ComputeStats(tasks, time.Now().UTC())}, nil
}
