package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lifeos/backend/internal/domain/entity"
)

// HabitModel represents the habits table in the database.
type HabitModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name      string         `gorm:"type:varchar(255);not null"`
	Category  string         `gorm:"type:varchar(50)"`
	Frequency string         `gorm:"type:varchar(10);not null"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"` // Soft-delete support

	Completions []HabitCompletionModel `gorm:"foreignKey:HabitID;references:ID"`
}

// TableName returns the table name for the HabitModel.
func (HabitModel) TableName() string {
	return "habits"
}

// HabitCompletionModel represents the habit_completions table. The
// unique index keeps at most one record per (habit, date).
type HabitCompletionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	HabitID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_habit_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_habit_date"`
	Completed bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the HabitCompletionModel.
func (HabitCompletionModel) TableName() string {
	return "habit_completions"
}

// ToEntity converts a HabitModel to a domain Habit entity.
func (m *HabitModel) ToEntity() *entity.Habit {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	habit := &entity.Habit{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Category:  m.Category,
		Frequency: entity.HabitFrequency(m.Frequency),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAt,
	}

	for _, cm := range m.Completions {
		habit.Completions = append(habit.Completions, entity.HabitCompletion{
			ID:        cm.ID,
			HabitID:   cm.HabitID,
			Date:      cm.Date,
			Completed: cm.Completed,
			CreatedAt: cm.CreatedAt,
		})
	}

	return habit
}

// HabitFromEntity creates a HabitModel from a domain Habit entity.
func HabitFromEntity(habit *entity.Habit) *HabitModel {
	var deletedAt gorm.DeletedAt
	if habit.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *habit.DeletedAt, Valid: true}
	}

	return &HabitModel{
		ID:        habit.ID,
		UserID:    habit.UserID,
		Name:      habit.Name,
		Category:  habit.Category,
		Frequency: string(habit.Frequency),
		CreatedAt: habit.CreatedAt,
		UpdatedAt: habit.UpdatedAt,
		DeletedAt: deletedAt,
	}
}
