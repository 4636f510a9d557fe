package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lifeos/backend/internal/domain/entity"
)

// TaskModel represents the tasks table in the database.
type TaskModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title       string         `gorm:"type:varchar(500);not null"`
	Domain      string         `gorm:"type:varchar(50);not null;index"`
	Priority    string         `gorm:"type:varchar(10);not null"`
	Status      string         `gorm:"type:varchar(20);not null;index"`
	DueDate     *time.Time     `gorm:"type:timestamp"`
	CompletedAt *time.Time     `gorm:"type:timestamp;index"`
	CreatedAt   time.Time      `gorm:"not null"`
	UpdatedAt   time.Time      `gorm:"not null"`
	DeletedAt   gorm.DeletedAt `gorm:"index"` // Soft-delete support

	Subtasks []SubtaskModel `gorm:"foreignKey:TaskID;references:ID"`
}

// TableName returns the table name for the TaskModel.
func (TaskModel) TableName() string {
	return "tasks"
}

// SubtaskModel represents the subtasks table in the database.
type SubtaskModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TaskID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(500);not null"`
	Completed bool      `gorm:"default:false"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the SubtaskModel.
func (SubtaskModel) TableName() string {
	return "subtasks"
}

// ToEntity converts a TaskModel to a domain Task entity.
func (m *TaskModel) ToEntity() *entity.Task {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	task := &entity.Task{
		ID:          m.ID,
		UserID:      m.UserID,
		Title:       m.Title,
		Domain:      m.Domain,
		Priority:    entity.TaskPriority(m.Priority),
		Status:      entity.TaskStatus(m.Status),
		DueDate:     m.DueDate,
		CompletedAt: m.CompletedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}

	for _, sm := range m.Subtasks {
		task.Subtasks = append(task.Subtasks, entity.Subtask{
			ID:        sm.ID,
			TaskID:    sm.TaskID,
			Title:     sm.Title,
			Completed: sm.Completed,
			CreatedAt: sm.CreatedAt,
		})
	}

	return task
}

// TaskFromEntity creates a TaskModel from a domain Task entity.
func TaskFromEntity(task *entity.Task) *TaskModel {
	var deletedAt gorm.DeletedAt
	if task.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *task.DeletedAt, Valid: true}
	}

	m := &TaskModel{
		ID:          task.ID,
		UserID:      task.UserID,
		Title:       task.Title,
		Domain:      task.Domain,
		Priority:    string(task.Priority),
		Status:      string(task.Status),
		DueDate:     task.DueDate,
		CompletedAt: task.CompletedAt,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
		DeletedAt:   deletedAt,
	}

	for _, s := range task.Subtasks {
		m.Subtasks = append(m.Subtasks, SubtaskModel{
			ID:        s.ID,
			TaskID:    s.TaskID,
			Title:     s.Title,
			Completed: s.Completed,
			CreatedAt: s.CreatedAt,
		})
	}

	return m
}
