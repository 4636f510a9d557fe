// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/domain/entity"
)

// TaskFilter defines filter options for listing tasks.
type TaskFilter struct {
	UserID uuid.UUID
	Domain string
	Status *entity.TaskStatus
}

// TaskRepository defines the interface for task persistence operations.
type TaskRepository interface {
	// Create creates a new task with its subtasks.
	Create(ctx context.Context, task *entity.Task) error

	// FindByID retrieves a task by its ID, including subtasks.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)

	// FindByFilter retrieves tasks matching the filter, newest first.
	FindByFilter(ctx context.Context, filter TaskFilter) ([]*entity.Task, error)

	// FindByUser retrieves all tasks for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error)

	// CountCompletedSince counts tasks completed at or after the given time.
	CountCompletedSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)

	// CountCompletedBetween counts tasks completed in [from, to).
	CountCompletedBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error)

	// Update updates an existing task.
	Update(ctx context.Context, task *entity.Task) error

	// Delete soft-deletes a task.
	Delete(ctx context.Context, id uuid.UUID) error
}
