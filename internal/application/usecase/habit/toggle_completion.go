package habit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/domain/entity"
	domainerror "github.com/lifeos/backend/internal/domain/error"
)

// ToggleCompletionInput represents the input for toggling a habit day.
// Date defaults to today when zero.
type ToggleCompletionInput struct {
	HabitID uuid.UUID
	UserID  uuid.UUID
	Date    time.Time
}

// ToggleCompletionOutput represents the output of toggling a habit day.
type ToggleCompletionOutput struct {
	Habit  *entity.HabitWithStreak
	Marked bool // true when the day is now completed
}

// ToggleCompletionUseCase flips the completion state of one habit day.
type ToggleCompletionUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewToggleCompletionUseCase creates a new ToggleCompletionUseCase instance.
func NewToggleCompletionUseCase(habitRepo adapter.HabitRepository) *ToggleCompletionUseCase {
	return &ToggleCompletionUseCase{habitRepo: habitRepo}
}

// Execute flips the day's completion state and returns the habit with a
// freshly derived streak. Future dates are rejected.
func (uc *ToggleCompletionUseCase) Execute(ctx context.Context, input ToggleCompletionInput) (*ToggleCompletionOutput, error) {
	habit, err := uc.habitRepo.FindByID(ctx, input.HabitID)
	if err != nil || habit.UserID != input.UserID {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeHabitNotFound,
			"habit not found",
			domainerror.ErrHabitNotFound,
		)
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	date := input.Date
	if date.IsZero() {
		date = today
	}
	date = date.UTC().Truncate(24 * time.Hour)

	if date.After(today) {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeInvalidCompletionDate,
			"completion date cannot be in the future",
			domainerror.ErrInvalidCompletionDate,
		)
	}

	marked := !CompletedOn(habit.Completions, date)

	if err := uc.habitRepo.UpsertCompletion(ctx, habit.ID, date, marked); err != nil {
		return nil, fmt.Errorf("failed to record completion: %w", err)
	}

	// Reload so the derived streak reflects the flip.
	habit, err = uc.habitRepo.FindByID(ctx, input.HabitID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload habit: %w", err)
	}

	return &ToggleCompletionOutput{
		Habit: &entity.HabitWithStreak{
			Habit:          habit,
			Streak:         Streak(habit.Completions, today),
			CompletedToday: CompletedOn(habit.Completions, today),
		},
		Marked: marked,
	}, nil
}
