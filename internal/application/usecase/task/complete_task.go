package task

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/domain/entity"
	domainerror "github.com/lifeos/backend/internal/domain/error"
)

// CompleteTaskInput represents the input for completing a task.
type CompleteTaskInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// CompleteTaskOutput represents the output of completing a task.
type CompleteTaskOutput struct {
	Task *entity.Task
}

// CompleteTaskUseCase toggles a task between completed and todo.
type CompleteTaskUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewCompleteTaskUseCase creates a new CompleteTaskUseCase instance.
func NewCompleteTaskUseCase(taskRepo adapter.TaskRepository) *CompleteTaskUseCase {
	return &CompleteTaskUseCase{taskRepo: taskRepo}
}

// Execute toggles the completion state. Completing an already completed
// task reopens it.
func (uc *CompleteTaskUseCase) Execute(ctx context.Context, input CompleteTaskInput) (*CompleteTaskOutput, error) {
	task, err := uc.taskRepo.FindByID(ctx, input.ID)
	if err != nil || task.UserID != input.UserID {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeTaskNotFound,
			"task not found",
			domainerror.ErrTaskNotFound,
		)
	}

	now := time.Now().UTC()
	if task.Status == entity.TaskStatusCompleted {
		task.Reopen(now)
	} else {
		task.Complete(now)
	}

	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return &CompleteTaskOutput{Task: task}, nil
}
