package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/adapter"
	domainerror "github.com/lifeos/backend/internal/domain/error"
)

// DeleteTaskInput represents the input for task deletion.
type DeleteTaskInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteTaskUseCase handles task deletion logic.
type DeleteTaskUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewDeleteTaskUseCase creates a new DeleteTaskUseCase instance.
func NewDeleteTaskUseCase(taskRepo adapter.TaskRepository) *DeleteTaskUseCase {
	return &DeleteTaskUseCase{taskRepo: taskRepo}
}

// Execute performs the task deletion.
func (uc *DeleteTaskUseCase) Execute(ctx context.Context, input DeleteTaskInput) error {
	task, err := uc.taskRepo.FindByID(ctx, input.ID)
	if err != nil || task.UserID != input.UserID {
		return domainerror.NewTaskError(
			domainerror.ErrCodeTaskNotFound,
			"task not found",
			domainerror.ErrTaskNotFound,
		)
	}

	if err := uc.taskRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}
