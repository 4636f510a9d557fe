package timetracking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/domain/entity"
)

// ListTimeEntriesInput represents the input for listing time entries.
type ListTimeEntriesInput struct {
	UserID    uuid.UUID
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
}

// ListTimeEntriesOutput represents the output of listing time entries.
type ListTimeEntriesOutput struct {
	Entries []*entity.TimeEntry
}

// ListTimeEntriesUseCase handles time entry listing logic.
type ListTimeEntriesUseCase struct {
	timeEntryRepo adapter.TimeEntryRepository
}

// NewListTimeEntriesUseCase creates a new ListTimeEntriesUseCase instance.
func NewListTimeEntriesUseCase(timeEntryRepo adapter.TimeEntryRepository) *ListTimeEntriesUseCase {
	return &ListTimeEntriesUseCase{timeEntryRepo: timeEntryRepo}
}

// Execute lists time entries matching the optional filters, newest first.
func (uc *ListTimeEntriesUseCase) Execute(ctx context.Context, input ListTimeEntriesInput) (*ListTimeEntriesOutput, error) {
	entries, err := uc.timeEntryRepo.FindByFilter(ctx, adapter.TimeEntryFilter{
		UserID:    input.UserID,
		Category:  input.Category,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}

	return &ListTimeEntriesOutput{Entries: entries}, nil
}
