package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/domain/entity"
	domainerror "github.com/lifeos/backend/internal/domain/error"
	"github.com/lifeos/backend/internal/integration/persistence/model"
)

// studySessionRepository implements the adapter.StudySessionRepository interface.
type studySessionRepository struct {
	db *gorm.DB
}

// NewStudySessionRepository creates a new study session repository instance.
func NewStudySessionRepository(db *gorm.DB) adapter.StudySessionRepository {
	return &studySessionRepository{db: db}
}

// Create creates a new study session.
func (r *studySessionRepository) Create(ctx context.Context, session *entity.StudySession) error {
	sessionModel := model.StudySessionFromEntity(session)
	return r.db.WithContext(ctx).Create(sessionModel).Error
}

// FindByFilter retrieves study sessions matching the filter, newest first.
func (r *studySessionRepository) FindByFilter(ctx context.Context, filter adapter.StudySessionFilter) ([]*entity.StudySession, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", filter.UserID)

	if filter.Subject != "" {
		query = query.Where("subject = ?", filter.Subject)
	}
	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", filter.StartDate)
	}

	var sessionModels []model.StudySessionModel
	if err := query.Order("created_at DESC").Find(&sessionModels).Error; err != nil {
		return nil, err
	}

	sessions := make([]*entity.StudySession, len(sessionModels))
	for i, sm := range sessionModels {
		sessions[i] = sm.ToEntity()
	}
	return sessions, nil
}

// Delete soft-deletes a study session scoped to the given user.
func (r *studySessionRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.StudySessionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrStudySessionNotFound
	}
	return nil
}
