// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/domain/entity"
)

// StudySessionFilter defines filter options for listing study sessions.
type StudySessionFilter struct {
	UserID    uuid.UUID
	Subject   string
	StartDate *time.Time
}

// StudySessionRepository defines the interface for study session persistence operations.
type StudySessionRepository interface {
	// Create creates a new study session.
	Create(ctx context.Context, session *entity.StudySession) error

	// FindByFilter retrieves study sessions matching the filter, newest first.
	FindByFilter(ctx context.Context, filter StudySessionFilter) ([]*entity.StudySession, error)

	// Delete soft-deletes a study session scoped to the given user.
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}
