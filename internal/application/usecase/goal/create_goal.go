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

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID     uuid.UUID
	Title      string
	Category   string
	Priority   entity.TaskPriority
	TargetDate *time.Time
	Milestones []string
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{goalRepo: goalRepo}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if input.Title == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeEmptyGoalTitle,
			"goal title cannot be empty",
			domainerror.ErrEmptyGoalTitle,
		)
	}

	if input.Priority == "" {
		input.Priority = entity.TaskPriorityMedium
	}

	goal := entity.NewGoal(input.UserID, input.Title, input.Category, input.Priority, input.TargetDate)

	for _, title := range input.Milestones {
		if title == "" {
			continue
		}
		goal.Milestones = append(goal.Milestones, entity.Milestone{
			ID:        uuid.New(),
			GoalID:    goal.ID,
			Title:     title,
			CreatedAt: goal.CreatedAt,
		})
	}
	goal.RecalculateProgress()

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{Goal: goal}, nil
}
