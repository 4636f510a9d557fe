package study

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/adapter"
	domainerror "github.com/lifeos/backend/internal/domain/error"
)

// DeleteStudySessionInput represents the input for study session deletion.
type DeleteStudySessionInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteStudySessionUseCase handles study session deletion logic.
type DeleteStudySessionUseCase struct {
	studyRepo adapter.StudySessionRepository
}

// NewDeleteStudySessionUseCase creates a new DeleteStudySessionUseCase instance.
func NewDeleteStudySessionUseCase(studyRepo adapter.StudySessionRepository) *DeleteStudySessionUseCase {
	return &DeleteStudySessionUseCase{studyRepo: studyRepo}
}

// Execute performs the study session deletion.
func (uc *DeleteStudySessionUseCase) Execute(ctx context.Context, input DeleteStudySessionInput) error {
	if err := uc.studyRepo.Delete(ctx, input.ID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrStudySessionNotFound) {
			return domainerror.NewStudyError(
				domainerror.ErrCodeStudySessionNotFound,
				"study session not found",
				domainerror.ErrStudySessionNotFound,
			)
		}
		return fmt.Errorf("failed to delete study session: %w", err)
	}

	return nil
}
