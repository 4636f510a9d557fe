package study

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/domain/entity"
)

// ListStudySessionsInput represents the input for listing study sessions.
type ListStudySessionsInput struct {
	UserID    uuid.UUID
	Subject   string
	StartDate *time.Time
}

// ListStudySessionsOutput represents the output of listing study sessions.
type ListStudySessionsOutput struct {
	Sessions     []*entity.StudySession
	TotalMinutes int
}

// ListStudySessionsUseCase handles study session listing logic.
type ListStudySessionsUseCase struct {
	studyRepo adapter.StudySessionRepository
}

// NewListStudySessionsUseCase creates a new ListStudySessionsUseCase instance.
func NewListStudySessionsUseCase(studyRepo adapter.StudySessionRepository) *ListStudySessionsUseCase {
	return &ListStudySessionsUseCase{studyRepo: studyRepo}
}

// Execute lists study sessions with a summed duration.
func (uc *ListStudySessionsUseCase) Execute(ctx context.Context, input ListStudySessionsInput) (*ListStudySessionsOutput, error) {
	sessions, err := uc.studyRepo.FindByFilter(ctx, adapter.StudySessionFilter{
		UserID:    input.UserID,
		Subject:   input.Subject,
		StartDate: input.StartDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list study sessions: %w", err)
	}

	total := 0
	for _, s := range sessions {
		total += s.DurationMinutes
	}

	return &ListStudySessionsOutput{Sessions: sessions, TotalMinutes: total}, nil
}
