package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/domain/entity"
	domainerror "github.com/lifeos/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for goal update. Nil fields are
// left unchanged. Progress is accepted only for goals without
// milestones; otherwise it is derived.
type UpdateGoalInput struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Title      *string
	Category   *string
	Status     *entity.GoalStatus
	Progress   *int
	TargetDate *time.Time
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{goalRepo: goalRepo}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.ID)
	if err != nil || goal.UserID != input.UserID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeEmptyGoalTitle,
				"goal title cannot be empty",
				domainerror.ErrEmptyGoalTitle,
			)
		}
		goal.Title = *input.Title
	}
	if input.Category != nil {
		goal.Category = *input.Category
	}
	if input.Status != nil {
		switch *input.Status {
		case entity.GoalStatusActive, entity.GoalStatusPaused, entity.GoalStatusCompleted:
			goal.Status = *input.Status
		default:
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalStatus,
				"status must be 'active', 'paused' or 'completed'",
				domainerror.ErrInvalidGoalStatus,
			)
		}
	}
	if input.Progress != nil {
		if *input.Progress < 0 || *input.Progress > 100 {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalProgress,
				"progress must be between 0 and 100",
				domainerror.ErrInvalidGoalProgress,
			)
		}
		if len(goal.Milestones) == 0 {
			goal.Progress = *input.Progress
		}
	}
	if input.TargetDate != nil {
		goal.TargetDate = input.TargetDate
	}

	goal.RecalculateProgress()
	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{Goal: goal}, nil
}
