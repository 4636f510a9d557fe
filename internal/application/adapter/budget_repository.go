// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Upsert creates a budget for a (user, category) pair or replaces the
	// limit of an existing one.
	Upsert(ctx context.Context, budget *entity.Budget) error

	// FindByUser retrieves all budgets for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)

	// Delete removes a budget scoped to the given user.
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}
