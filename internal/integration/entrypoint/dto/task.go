// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/lifeos/backend/internal/domain/entity"
)

// CreateTaskRequest represents the request body for task creation.
type CreateTaskRequest struct {
	Title    string     `json:"title" binding:"required,min=1,max=255"`
	Domain   string     `json:"domain,omitempty"`
	Priority string     `json:"priority,omitempty" binding:"omitempty,oneof=low medium high"`
	DueDate  *time.Time `json:"due_date,omitempty"`
	Subtasks []string   `json:"subtasks,omitempty"`
}

// UpdateTaskRequest represents the request body for task update.
type UpdateTaskRequest struct {
	Title    *string    `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
	Domain   *string    `json:"domain,omitempty"`
	Priority *string    `json:"priority,omitempty" binding:"omitempty,oneof=low medium high"`
	Status   *string    `json:"status,omitempty" binding:"omitempty,oneof=todo in_progress completed"`
	DueDate  *time.Time `json:"due_date,omitempty"`
}

// SubtaskResponse represents a subtask in API responses.
type SubtaskResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// TaskResponse represents a single task in API responses.
type TaskResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Domain      string            `json:"domain"`
	Priority    string            `json:"priority"`
	Status      string            `json:"status"`
	DueDate     *time.Time        `json:"due_date,omitempty"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
	Subtasks    []SubtaskResponse `json:"subtasks"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// TaskListResponse represents the response for listing tasks.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// TaskStatsResponse represents derived task counters in API responses.
type TaskStatsResponse struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	Pending        int `json:"pending"`
	Overdue        int `json:"overdue"`
	CompletedToday int `json:"completed_today"`
}

// ToTaskResponse converts a domain Task entity to a TaskResponse DTO.
func ToTaskResponse(task *entity.Task) TaskResponse {
	subtasks := make([]SubtaskResponse, len(task.Subtasks))
	for i, st := range task.Subtasks {
		subtasks[i] = SubtaskResponse{
			ID:        st.ID.String(),
			Title:     st.Title,
			Completed: st.Completed,
		}
	}

	return TaskResponse{
		ID:          task.ID.String(),
		Title:       task.Title,
		Domain:      task.Domain,
		Priority:    string(task.Priority),
		Status:      string(task.Status),
		DueDate:     task.DueDate,
		CompletedAt: task.CompletedAt,
		Subtasks:    subtasks,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// ToTaskListResponse converts a task slice to a TaskListResponse DTO.
func ToTaskListResponse(tasks []*entity.Task) TaskListResponse {
	out := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = ToTaskResponse(t)
	}
	return TaskListResponse{Tasks: out}
}

// ToTaskStatsResponse converts TaskStats to a TaskStatsResponse DTO.
func ToTaskStatsResponse(stats entity.TaskStats) TaskStatsResponse {
	return TaskStatsResponse{
		Total:          stats.TotalCount,
		Completed:      stats.CompletedCount,
		Pending:        stats.PendingCount,
		Overdue:        stats.OverdueCount,
		CompletedToday: stats.CompletedTodayCount,
	}
}
