package habit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/adapter"
	domainerror "github.com/lifeos/backend/internal/domain/error"
)

// DeleteHabitInput represents the input for habit deletion.
type DeleteHabitInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteHabitUseCase handles habit deletion logic.
type DeleteHabitUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewDeleteHabitUseCase creates a new DeleteHabitUseCase instance.
func NewDeleteHabitUseCase(habitRepo adapter.HabitRepository) *DeleteHabitUseCase {
	return &DeleteHabitUseCase{habitRepo: habitRepo}
}

// Execute performs the habit deletion, completion log included.
func (uc *DeleteHabitUseCase) Execute(ctx context.Context, input DeleteHabitInput) error {
	habit, err := uc.habitRepo.FindByID(ctx, input.ID)
	if err != nil || habit.UserID != input.UserID {
		return domainerror.NewHabitError(
			domainerror.ErrCodeHabitNotFound,
			"habit not found",
			domainerror.ErrHabitNotFound,
		)
	}

	if err := uc.habitRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}

	return nil
}
