// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/domain/entity"
)

// JournalFilter defines filter options for listing journal entries.
type JournalFilter struct {
	UserID    uuid.UUID
	StartDate *time.Time
	Limit     int
}

// JournalRepository defines the interface for journal persistence operations.
type JournalRepository interface {
	// Create creates a new journal entry.
	Create(ctx context.Context, entry *entity.JournalEntry) error

	// FindByFilter retrieves journal entries matching the filter, newest first.
	FindByFilter(ctx context.Context, filter JournalFilter) ([]*entity.JournalEntry, error)

	// FindRecent retrieves the most recent entries for a user, newest first.
	FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.JournalEntry, error)

	// Delete soft-deletes a journal entry scoped to the given user.
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}
