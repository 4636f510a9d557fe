package habit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/domain/entity"
)

// ListHabitsInput represents the input for listing habits.
type ListHabitsInput struct {
	UserID uuid.UUID
}

// ListHabitsOutput represents the output of listing habits, each paired
// with its derived streak.
type ListHabitsOutput struct {
	Habits []entity.HabitWithStreak
	Stats  entity.HabitStats
}

// ListHabitsUseCase handles habit listing logic.
type ListHabitsUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewListHabitsUseCase creates a new ListHabitsUseCase instance.
func NewListHabitsUseCase(habitRepo adapter.HabitRepository) *ListHabitsUseCase {
	return &ListHabitsUseCase{habitRepo: habitRepo}
}

// Execute lists habits with streaks derived from the completion log.
func (uc *ListHabitsUseCase) Execute(ctx context.Context, input ListHabitsInput) (*ListHabitsOutput, error) {
	habits, err := uc.habitRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}

	today := time.Now().UTC()

	out := &ListHabitsOutput{
		Habits: make([]entity.HabitWithStreak, 0, len(habits)),
		Stats:  ComputeStats(habits, today),
	}
	for _, h := range habits {
		out.Habits = append(out.Habits, entity.HabitWithStreak{
			Habit:          h,
			Streak:         Streak(h.Completions, today),
			CompletedToday: CompletedOn(h.Completions, today),
		})
	}

	return out, nil
}
