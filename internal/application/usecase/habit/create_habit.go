package habit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/domain/entity"
	domainerror "github.com/lifeos/backend/internal/domain/error"
)

// CreateHabitInput represents the input for habit creation.
type CreateHabitInput struct {
	UserID    uuid.UUID
	Name      string
	Category  string
	Frequency entity.HabitFrequency
}

// CreateHabitOutput represents the output of habit creation.
type CreateHabitOutput struct {
	Habit *entity.Habit
}

// CreateHabitUseCase handles habit creation logic.
type CreateHabitUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewCreateHabitUseCase creates a new CreateHabitUseCase instance.
func NewCreateHabitUseCase(habitRepo adapter.HabitRepository) *CreateHabitUseCase {
	return &CreateHabitUseCase{habitRepo: habitRepo}
}

// Execute performs the habit creation.
func (uc *CreateHabitUseCase) Execute(ctx context.Context, input CreateHabitInput) (*CreateHabitOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeEmptyHabitName,
			"habit name cannot be empty",
			domainerror.ErrEmptyHabitName,
		)
	}

	if input.Frequency == "" {
		input.Frequency = entity.HabitFrequencyDaily
	}
	if input.Frequency != entity.HabitFrequencyDaily && input.Frequency != entity.HabitFrequencyWeekly {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeInvalidHabitFrequency,
			"frequency must be 'daily' or 'weekly'",
			domainerror.ErrInvalidHabitFrequency,
		)
	}

	habit := entity.NewHabit(input.UserID, input.Name, input.Category, input.Frequency)

	if err := uc.habitRepo.Create(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return &CreateHabitOutput{Habit: habit}, nil
}
