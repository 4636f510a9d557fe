package journal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/adapter"
	domainerror "github.com/lifeos/backend/internal/domain/error"
)

// DeleteJournalEntryInput represents the input for journal entry deletion.
type DeleteJournalEntryInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteJournalEntryUseCase handles journal entry deletion logic.
type DeleteJournalEntryUseCase struct {
	journalRepo adapter.JournalRepository
}

// NewDeleteJournalEntryUseCase creates a new DeleteJournalEntryUseCase instance.
func NewDeleteJournalEntryUseCase(journalRepo adapter.JournalRepository) *DeleteJournalEntryUseCase {
	return &DeleteJournalEntryUseCase{journalRepo: journalRepo}
}

// Execute performs the journal entry deletion.
func (uc *DeleteJournalEntryUseCase) Execute(ctx context.Context, input DeleteJournalEntryInput) error {
	if err := uc.journalRepo.Delete(ctx, input.ID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrJournalEntryNotFound) {
			return domainerror.NewJournalError(
				domainerror.ErrCodeJournalEntryNotFound,
				"journal entry not found",
				domainerror.ErrJournalEntryNotFound,
			)
		}
		return fmt.Errorf("failed to delete journal entry: %w", err)
	}

	return nil
}
