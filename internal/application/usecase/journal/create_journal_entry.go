package journal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/domain/entity"
	domainerror "github.com/lifeos/backend/internal/domain/error"
)

// CreateJournalEntryInput represents the input for journal entry creation.
type CreateJournalEntryInput struct {
	UserID  uuid.UUID
	Title   string
	Content string
	Mood    int
	Energy  int
	Tags    []string
}

// CreateJournalEntryOutput represents the output of journal entry creation.
type CreateJournalEntryOutput struct {
	Entry *entity.JournalEntry
}

// CreateJournalEntryUseCase handles journal entry creation logic.
type CreateJournalEntryUseCase struct {
	journalRepo adapter.JournalRepository
}

// NewCreateJournalEntryUseCase creates a new CreateJournalEntryUseCase instance.
func NewCreateJournalEntryUseCase(journalRepo adapter.JournalRepository) *CreateJournalEntryUseCase {
	return &CreateJournalEntryUseCase{journalRepo: journalRepo}
}

// Execute performs the journal entry creation. Mood and energy must sit
// inside the 1-10 scale.
func (uc *CreateJournalEntryUseCase) Execute(ctx context.Context, input CreateJournalEntryInput) (*CreateJournalEntryOutput, error) {
	if input.Content == "" {
		return nil, domainerror.NewJournalError(
			domainerror.ErrCodeEmptyJournalContent,
			"journal content cannot be empty",
			domainerror.ErrEmptyJournalContent,
		)
	}

	if input.Mood < entity.MoodMin || input.Mood > entity.MoodMax {
		return nil, domainerror.NewJournalError(
			domainerror.ErrCodeMoodOutOfRange,
			fmt.Sprintf("mood must be between %d and %d", entity.MoodMin, entity.MoodMax),
			domainerror.ErrMoodOutOfRange,
		)
	}

	if input.Energy < entity.EnergyMin || input.Energy > entity.EnergyMax {
		return nil, domainerror.NewJournalError(
			domainerror.ErrCodeEnergyOutOfRange,
			fmt.Sprintf("energy must be between %d and %d", entity.EnergyMin, entity.EnergyMax),
			domainerror.ErrEnergyOutOfRange,
		)
	}

	entry := entity.NewJournalEntry(input.UserID, input.Title, input.Content, input.Mood, input.Energy, input.Tags)

	if err := uc.journalRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create journal entry: %w", err)
	}

	return &CreateJournalEntryOutput{Entry: entry}, nil
}
