package timetracking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/adapter"
	domainerror "github.com/lifeos/backend/internal/domain/error"
)

// DeleteTimeEntryInput represents the input for time entry deletion.
type DeleteTimeEntryInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteTimeEntryUseCase handles time entry deletion logic.
type DeleteTimeEntryUseCase struct {
	timeEntryRepo adapter.TimeEntryRepository
}

// NewDeleteTimeEntryUseCase creates a new DeleteTimeEntryUseCase instance.
func NewDeleteTimeEntryUseCase(timeEntryRepo adapter.TimeEntryRepository) *DeleteTimeEntryUseCase {
	return &DeleteTimeEntryUseCase{timeEntryRepo: timeEntryRepo}
}

// Execute performs the time entry deletion.
func (uc *DeleteTimeEntryUseCase) Execute(ctx context.Context, input DeleteTimeEntryInput) error {
	if err := uc.timeEntryRepo.Delete(ctx, input.ID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrTimeEntryNotFound) {
			return domainerror.NewTimeError(
				domainerror.ErrCodeTimeEntryNotFound,
				"time entry not found",
				domainerror.ErrTimeEntryNotFound,
			)
		}
		return fmt.Errorf("failed to delete time entry: %w", err)
	}

	return nil
}
