package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/lifeos/backend/internal/domain/entity"
)

// JournalEntryModel represents the journal_entries table in the database.
type JournalEntryModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title     string         `gorm:"type:varchar(500)"`
	Content   string         `gorm:"type:text;not null"`
	Mood      int            `gorm:"not null"`
	Energy    int            `gorm:"not null"`
	Tags      pq.StringArray `gorm:"type:text[]"`
	CreatedAt time.Time      `gorm:"not null;index"`
	DeletedAt gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the JournalEntryModel.
func (JournalEntryModel) TableName() string {
	return "journal_entries"
}

// ToEntity converts a JournalEntryModel to a domain JournalEntry entity.
func (m *JournalEntryModel) ToEntity() *entity.JournalEntry {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.JournalEntry{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Content:   m.Content,
		Mood:      m.Mood,
		Energy:    m.Energy,
		Tags:      m.Tags,
		CreatedAt: m.CreatedAt,
		DeletedAt: deletedAt,
	}
}

// JournalEntryFromEntity creates a JournalEntryModel from a domain JournalEntry entity.
func JournalEntryFromEntity(entry *entity.JournalEntry) *JournalEntryModel {
	var deletedAt gorm.DeletedAt
	if entry.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *entry.DeletedAt, Valid: true}
	}

	return &JournalEntryModel{
		ID:        entry.ID,
		UserID:    entry.UserID,
		Title:     entry.Title,
		Content:   entry.Content,
		Mood:      entry.Mood,
		Energy:    entry.Energy,
		Tags:      pq.StringArray(entry.Tags),
		CreatedAt: entry.CreatedAt,
		DeletedAt: deletedAt,
	}
}
