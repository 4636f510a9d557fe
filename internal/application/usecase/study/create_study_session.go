// Package study contains study session use cases.
package study

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/domain/entity"
	domainerror "github.com/lifeos/backend/internal/domain/error"
)

// CreateStudySessionInput represents the input for study session creation.
type CreateStudySessionInput struct {
	UserID          uuid.UUID
	Subject         string
	DurationMinutes int
	Difficulty      entity.StudyDifficulty
	Pomodoros       int
}

// CreateStudySessionOutput represents the output of study session creation.
type CreateStudySessionOutput struct {
	Session *entity.StudySession
}

// CreateStudySessionUseCase handles study session creation logic.
type CreateStudySessionUseCase struct {
	studyRepo adapter.StudySessionRepository
}

// NewCreateStudySessionUseCase creates a new CreateStudySessionUseCase instance.
func NewCreateStudySessionUseCase(studyRepo adapter.StudySessionRepository) *CreateStudySessionUseCase {
	return &CreateStudySessionUseCase{studyRepo: studyRepo}
}

// Execute performs the study session creation.
func (uc *CreateStudySessionUseCase) Execute(ctx context.Context, input CreateStudySessionInput) (*CreateStudySessionOutput, error) {
	if input.Subject == "" {
		return nil, domainerror.NewStudyError(
			domainerror.ErrCodeEmptySubject,
			"subject cannot be empty",
			domainerror.ErrEmptySubject,
		)
	}

	if input.Difficulty == "" {
		input.Difficulty = entity.StudyDifficultyMedium
	}
	switch input.Difficulty {
	case entity.StudyDifficultyEasy, entity.StudyDifficultyMedium, entity.StudyDifficultyHard:
	default:
		return nil, domainerror.NewStudyError(
			domainerror.ErrCodeInvalidDifficulty,
			"difficulty must be 'easy', 'medium' or 'hard'",
			domainerror.ErrInvalidDifficulty,
		)
	}

	session := entity.NewStudySession(
		input.UserID,
		input.Subject,
		input.DurationMinutes,
		input.Difficulty,
		input.Pomodoros,
	)

	if err := uc.studyRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create study session: %w", err)
	}

	return &CreateStudySessionOutput{Session: session}, nil
}
