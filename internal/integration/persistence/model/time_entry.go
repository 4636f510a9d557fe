package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lifeos/backend/internal/domain/entity"
)

// TimeEntryModel represents the time_entries table in the database.
type TimeEntryModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index"`
	Activity        string         `gorm:"type:varchar(500);not null"`
	Category        string         `gorm:"type:varchar(20);not null;index"`
	DurationMinutes int            `gorm:"not null"`
	StartTime       time.Time      `gorm:"type:timestamp;not null;index"`
	EndTime         time.Time      `gorm:"type:timestamp;not null"`
	FocusQuality    string         `gorm:"type:varchar(15);not null"`
	Interruptions   int            `gorm:"not null;default:0"`
	CreatedAt       time.Time      `gorm:"not null"`
	DeletedAt       gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the TimeEntryModel.
func (TimeEntryModel) TableName() string {
	return "time_entries"
}

// ToEntity converts a TimeEntryModel to a domain TimeEntry entity.
func (m *TimeEntryModel) ToEntity() *entity.TimeEntry {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.TimeEntry{
		ID:              m.ID,
		UserID:          m.UserID,
		Activity:        m.Activity,
		Category:        entity.TimeCategory(m.Category),
		DurationMinutes: m.DurationMinutes,
		StartTime:       m.StartTime,
		EndTime:         m.EndTime,
		FocusQuality:    entity.FocusQuality(m.FocusQuality),
		Interruptions:   m.Interruptions,
		CreatedAt:       m.CreatedAt,
		DeletedAt:       deletedAt,
	}
}

// TimeEntryFromEntity creates a TimeEntryModel from a domain TimeEntry entity.
func TimeEntryFromEntity(timeEntry *entity.TimeEntry) *TimeEntryModel {
	var deletedAt gorm.DeletedAt
	if timeEntry.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *timeEntry.DeletedAt, Valid: true}
	}

	return &TimeEntryModel{
		ID:              timeEntry.ID,
		UserID:          timeEntry.UserID,
		Activity:        timeEntry.Activity,
		Category:        string(timeEntry.Category),
		DurationMinutes: timeEntry.DurationMinutes,
		StartTime:       timeEntry.StartTime,
		EndTime:         timeEntry.EndTime,
		FocusQuality:    string(timeEntry.FocusQuality),
		Interruptions:   timeEntry.Interruptions,
		CreatedAt:       timeEntry.CreatedAt,
		DeletedAt:       deletedAt,
	}
}
