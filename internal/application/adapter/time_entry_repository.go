// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/domain/entity"
)

// TimeEntryFilter defines filter options for listing time entries.
type TimeEntryFilter struct {
	UserID    uuid.UUID
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
}

// TimeEntryRepository defines the interface for time entry persistence operations.
type TimeEntryRepository interface {
	// Create creates a new time entry.
	Create(ctx context.Context, entry *entity.TimeEntry) error

	// FindByID retrieves a time entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TimeEntry, error)

	// FindByFilter retrieves time entries matching the filter, newest first.
	FindByFilter(ctx context.Context, filter TimeEntryFilter) ([]*entity.TimeEntry, error)

	// Delete soft-deletes a time entry scoped to the given user.
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}
