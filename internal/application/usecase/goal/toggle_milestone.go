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

// ToggleMilestoneInput represents the input for milestone toggling.
type ToggleMilestoneInput struct {
	GoalID      uuid.UUID
	MilestoneID uuid.UUID
	UserID      uuid.UUID
}

// ToggleMilestoneOutput represents the output of milestone toggling.
type ToggleMilestoneOutput struct {
	Goal *entity.Goal
}

// ToggleMilestoneUseCase flips one milestone and rederives the goal's
// progress from the milestone list.
type ToggleMilestoneUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewToggleMilestoneUseCase creates a new ToggleMilestoneUseCase instance.
func NewToggleMilestoneUseCase(goalRepo adapter.GoalRepository) *ToggleMilestoneUseCase {
	return &ToggleMilestoneUseCase{goalRepo: goalRepo}
}

// Execute flips the milestone's completion state.
func (uc *ToggleMilestoneUseCase) Execute(ctx context.Context, input ToggleMilestoneInput) (*ToggleMilestoneOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil || goal.UserID != input.UserID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	found := false
	for i := range goal.Milestones {
		if goal.Milestones[i].ID == input.MilestoneID {
			goal.Milestones[i].Completed = !goal.Milestones[i].Completed
			found = true
			break
		}
	}
	if !found {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMilestoneNotFound,
			"milestone not found",
			domainerror.ErrMilestoneNotFound,
		)
	}

	goal.RecalculateProgress()
	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &ToggleMilestoneOutput{Goal: goal}, nil
}
