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

// UpdateTaskInput represents the input for task update. Nil fields are
// left unchanged.
type UpdateTaskInput struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Title    *string
	Domain   *string
	Priority *entity.TaskPriority
	Status   *entity.TaskStatus
	DueDate  *time.Time
}

// UpdateTaskOutput represents the output of task update.
type UpdateTaskOutput struct {
	Task *entity.Task
}

// UpdateTaskUseCase handles task update logic.
type UpdateTaskUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewUpdateTaskUseCase creates a new UpdateTaskUseCase instance.
func NewUpdateTaskUseCase(taskRepo adapter.TaskRepository) *UpdateTaskUseCase {
	return &UpdateTaskUseCase{taskRepo: taskRepo}
}

// Execute performs the task update. Setting status to completed stamps
// CompletedAt; moving away from completed clears it.
func (uc *UpdateTaskUseCase) Execute(ctx context.Context, input UpdateTaskInput) (*UpdateTaskOutput, error) {
	task, err := uc.taskRepo.FindByID(ctx, input.ID)
	if err != nil || task.UserID != input.UserID {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeTaskNotFound,
			"task not found",
			domainerror.ErrTaskNotFound,
		)
	}

	now := time.Now().UTC()

	if input.Title != nil {
		if *input.Title == "" {
			return nil, domainerror.NewTaskError(
				domainerror.ErrCodeEmptyTaskTitle,
				"task title cannot be empty",
				domainerror.ErrEmptyTaskTitle,
			)
		}
		task.Title = *input.Title
	}
	if input.Domain != nil {
		task.Domain = *input.Domain
	}
	if input.Priority != nil {
		if !isValidPriority(*input.Priority) {
			return nil, domainerror.NewTaskError(
				domainerror.ErrCodeInvalidTaskPriority,
				"priority must be 'low', 'medium' or 'high'",
				domainerror.ErrInvalidTaskPriority,
			)
		}
		task.Priority = *input.Priority
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.Status != nil {
		switch *input.Status {
		case entity.TaskStatusCompleted:
			task.Complete(now)
		case entity.TaskStatusTodo, entity.TaskStatusInProgress:
			task.Status = *input.Status
			task.CompletedAt = nil
		default:
			return nil, domainerror.NewTaskError(
				domainerror.ErrCodeInvalidTaskStatus,
				"status must be 'todo', 'in_progress' or 'completed'",
				domainerror.ErrInvalidTaskStatus,
			)
		}
	}

	task.UpdatedAt = now

	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return &UpdateTaskOutput{Task: task}, nil
}
