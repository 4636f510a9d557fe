// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// TaskPriority represents the urgency of a task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Task represents a single actionable item in the LifeOS system.
// CompletedAt is set if and only if Status is TaskStatusCompleted.
type Task struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Domain      string // life-tracking category (work, health, personal, ...)
	Priority    TaskPriority
	Status      TaskStatus
	DueDate     *time.Time
	CompletedAt *time.Time
	Subtasks    []Subtask
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// Subtask represents a checklist item nested under a task.
type Subtask struct {
	ID        uuid.UUID
	TaskID    uuid.UUID
	Title     string
	Completed bool
	CreatedAt time.Time
}

// NewTask creates a new Task entity in the todo state.
func NewTask(userID uuid.UUID, title, domain string, priority TaskPriority, dueDate *time.Time) *Task {
	now := time.Now().UTC()

	return &Task{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Domain:    domain,
		Priority:  priority,
		Status:    TaskStatusTodo,
		DueDate:   dueDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Complete transitions the task to the completed state, stamping CompletedAt.
func (t *Task) Complete(at time.Time) {
	t.Status = TaskStatusCompleted
	t.CompletedAt = &at
	t.UpdatedAt = at
}

// Reopen moves a completed task back to todo, clearing CompletedAt.
func (t *Task) Reopen(at time.Time) {
	t.Status = TaskStatusTodo
	t.CompletedAt = nil
	t.UpdatedAt = at
}

// TaskStats represents derived counters over a user's task collection.
type TaskStats struct {
	TotalCount          int
	CompletedCount      int
	PendingCount        int
	OverdueCount        int
	CompletedTodayCount int
}
