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

// CreateTaskInput represents the input for task creation.
type CreateTaskInput struct {
	UserID   uuid.UUID
	Title    string
	Domain   string
	Priority entity.TaskPriority
	DueDate  *time.Time
	Subtasks []string
}

// CreateTaskOutput represents the output of task creation.
type CreateTaskOutput struct {
	Task *entity.Task
}

// CreateTaskUseCase handles task creation logic.
type CreateTaskUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewCreateTaskUseCase creates a new CreateTaskUseCase instance.
func NewCreateTaskUseCase(taskRepo adapter.TaskRepository) *CreateTaskUseCase {
	return &CreateTaskUseCase{taskRepo: taskRepo}
}

// Execute performs the task creation.
func (uc *CreateTaskUseCase) Execute(ctx context.Context, input CreateTaskInput) (*CreateTaskOutput, error) {
	if input.Title == "" {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeEmptyTaskTitle,
			"task title cannot be empty",
			domainerror.ErrEmptyTaskTitle,
		)
	}

	if input.Priority == "" {
		input.Priority = entity.TaskPriorityMedium
	}
	if !isValidPriority(input.Priority) {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeInvalidTaskPriority,
			"priority must be 'low', 'medium' or 'high'",
			domainerror.ErrInvalidTaskPriority,
		)
	}

	if input.Domain == "" {
		input.Domain = "personal"
	}

	task := entity.NewTask(input.UserID, input.Title, input.Domain, input.Priority, input.DueDate)

	for _, title := range input.Subtasks {
		if title == "" {
			continue
		}
		task.Subtasks = append(task.Subtasks, entity.Subtask{
			ID:        uuid.New(),
			TaskID:    task.ID,
			Title:     title,
			CreatedAt: task.CreatedAt,
		})
	}

	if err := uc.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return &CreateTaskOutput{Task: task}, nil
}

// isValidPriority validates the task priority.
func isValidPriority(p entity.TaskPriority) bool {
	return p == entity.TaskPriorityLow || p == entity.TaskPriorityMedium || p == entity.TaskPriorityHigh
}
