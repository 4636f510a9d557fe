// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	UserID    uuid.UUID
	StartDate *time.Time
	Type      *entity.TransactionType
	Category  string
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the filter, newest first.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// FindByUserSince retrieves all transactions for a user dated at or
	// after the given time.
	FindByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*entity.Transaction, error)

	// Delete soft-deletes a transaction scoped to the given user.
	// Returns entity not-found when no row matches.
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}
