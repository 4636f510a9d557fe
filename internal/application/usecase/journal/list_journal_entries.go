package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/domain/entity"
)

// ListJournalEntriesInput represents the input for listing journal entries.
type ListJournalEntriesInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	Limit     int
}

// ListJournalEntriesOutput represents the output of listing journal entries.
type ListJournalEntriesOutput struct {
	Entries     []*entity.JournalEntry
	MoodAverage float64
}

// ListJournalEntriesUseCase handles journal entry listing logic.
type ListJournalEntriesUseCase struct {
	journalRepo adapter.JournalRepository
}

// NewListJournalEntriesUseCase creates a new ListJournalEntriesUseCase instance.
func NewListJournalEntriesUseCase(journalRepo adapter.JournalRepository) *ListJournalEntriesUseCase {
	return &ListJournalEntriesUseCase{journalRepo: journalRepo}
}

// Execute lists journal entries newest first with the mean mood over the
// returned page.
func (uc *ListJournalEntriesUseCase) Execute(ctx context.Context, input ListJournalEntriesInput) (*ListJournalEntriesOutput, error) {
	entries, err := uc.journalRepo.FindByFilter(ctx, adapter.JournalFilter{
		UserID:    input.UserID,
		StartDate: input.StartDate,
		Limit:     input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}

	return &ListJournalEntriesOutput{
		Entries:     entries,
		MoodAverage: RecentMoodAverage(entries),
	}, nil
}
