package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lifeos/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title      string         `gorm:"type:varchar(500);not null"`
	Category   string         `gorm:"type:varchar(50)"`
	Priority   string         `gorm:"type:varchar(10);not null"`
	Progress   int            `gorm:"not null;default:0"`
	Status     string         `gorm:"type:varchar(20);not null;index"`
	TargetDate *time.Time     `gorm:"type:timestamp"`
	CreatedAt  time.Time      `gorm:"not null"`
	UpdatedAt  time.Time      `gorm:"not null"`
	DeletedAt  gorm.DeletedAt `gorm:"index"` // Soft-delete support

	Milestones []MilestoneModel `gorm:"foreignKey:GoalID;references:ID"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// MilestoneModel represents the milestones table in the database.
type MilestoneModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	GoalID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(500);not null"`
	Completed bool      `gorm:"default:false"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the MilestoneModel.
func (MilestoneModel) TableName() string {
	return "milestones"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	goal := &entity.Goal{
		ID:         m.ID,
		UserID:     m.UserID,
		Title:      m.Title,
		Category:   m.Category,
		Priority:   entity.TaskPriority(m.Priority),
		Progress:   m.Progress,
		Status:     entity.GoalStatus(m.Status),
		TargetDate: m.TargetDate,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		DeletedAt:  deletedAt,
	}

	for _, mm := range m.Milestones {
		goal.Milestones = append(goal.Milestones, entity.Milestone{
			ID:        mm.ID,
			GoalID:    mm.GoalID,
			Title:     mm.Title,
			Completed: mm.Completed,
			CreatedAt: mm.CreatedAt,
		})
	}

	return goal
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	var deletedAt gorm.DeletedAt
	if goal.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *goal.DeletedAt, Valid: true}
	}

	m := &GoalModel{
		ID:         goal.ID,
		UserID:     goal.UserID,
		Title:      goal.Title,
		Category:   goal.Category,
		Priority:   string(goal.Priority),
		Progress:   goal.Progress,
		Status:     string(goal.Status),
		TargetDate: goal.TargetDate,
		CreatedAt:  goal.CreatedAt,
		UpdatedAt:  goal.UpdatedAt,
		DeletedAt:  deletedAt,
	}

	for _, ms := range goal.Milestones {
		m.Milestones = append(m.Milestones, MilestoneModel{
			ID:        ms.ID,
			GoalID:    ms.GoalID,
			Title:     ms.Title,
			Completed: ms.Completed,
			CreatedAt: ms.CreatedAt,
		})
	}

	return m
}
