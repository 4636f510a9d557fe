// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Create creates a new goal with its milestones.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID, milestones included.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByUser retrieves all goals for a user, milestones included.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// Update updates a goal and replaces its milestone rows.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete soft-deletes a goal and its milestones.
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}
