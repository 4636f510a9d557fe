package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/domain/entity"
)

// ListTasksInput represents the input for listing tasks.
type ListTasksInput struct {
	UserID uuid.UUID
	Domain string
	Status *entity.TaskStatus
}

// ListTasksOutput represents the output of listing tasks.
type ListTasksOutput struct {
	Tasks []*entity.Task
}

// ListTasksUseCase handles task listing logic.
type ListTasksUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewListTasksUseCase creates a new ListTasksUseCase instance.
func NewListTasksUseCase(taskRepo adapter.TaskRepository) *ListTasksUseCase {
	return &ListTasksUseCase{taskRepo: taskRepo}
}

// Execute lists tasks matching the optional domain and status filters.
func (uc *ListTasksUseCase) Execute(ctx context.Context, input ListTasksInput) (*ListTasksOutput, error) {
	tasks, err := uc.taskRepo.FindByFilter(ctx, adapter.TaskFilter{
		UserID: input.UserID,
		Domain: input.Domain,
		Status: input.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return &ListTasksOutput{Tasks: tasks}, nil
}
