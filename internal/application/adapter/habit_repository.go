// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/domain/entity"
)

// HabitRepository defines the interface for habit persistence operations.
type HabitRepository interface {
	// Create creates a new habit.
	Create(ctx context.Context, habit *entity.Habit) error

	// FindByID retrieves a habit by its ID, including its completion log.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)

	// FindByUser retrieves all habits for a user, completion logs included.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Habit, error)

	// UpsertCompletion records or flips the completion state for a single
	// day, keeping at most one record per (habit, date).
	UpsertCompletion(ctx context.Context, habitID uuid.UUID, date time.Time, completed bool) error

	// Delete soft-deletes a habit and its completion log.
	Delete(ctx context.Context, id uuid.UUID) error
}
