package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lifeos/backend/internal/domain/entity"
)

// StudySessionModel represents the study_sessions table in the database.
type StudySessionModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index"`
	Subject         string         `gorm:"type:varchar(255);not null;index"`
	DurationMinutes int            `gorm:"not null"`
	Difficulty      string         `gorm:"type:varchar(10);not null"`
	Pomodoros       int            `gorm:"not null;default:0"`
	CreatedAt       time.Time      `gorm:"not null"`
	DeletedAt       gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the StudySessionModel.
func (StudySessionModel) TableName() string {
	return "study_sessions"
}

// ToEntity converts a StudySessionModel to a domain StudySession entity.
func (m *StudySessionModel) ToEntity() *entity.StudySession {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.StudySession{
		ID:              m.ID,
		UserID:          m.UserID,
		Subject:         m.Subject,
		DurationMinutes: m.DurationMinutes,
		Difficulty:      entity.StudyDifficulty(m.Difficulty),
		Pomodoros:       m.Pomodoros,
		CreatedAt:       m.CreatedAt,
		DeletedAt:       deletedAt,
	}
}

// StudySessionFromEntity creates a StudySessionModel from a domain StudySession entity.
func StudySessionFromEntity(session *entity.StudySession) *StudySessionModel {
	var deletedAt gorm.DeletedAt
	if session.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *session.DeletedAt, Valid: true}
	}

	return &StudySessionModel{
		ID:              session.ID,
		UserID:          session.UserID,
		Subject:         session.Subject,
		DurationMinutes: session.DurationMinutes,
		Difficulty:      string(session.Difficulty),
		Pomodoros:       session.Pomodoros,
		CreatedAt:       session.CreatedAt,
		DeletedAt:       deletedAt,
	}
}
