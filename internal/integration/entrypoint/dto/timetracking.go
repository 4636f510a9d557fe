// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/lifeos/backend/internal/domain/entity"
)

// CreateTimeEntryRequest represents the request body for time entry creation.
type CreateTimeEntryRequest struct {
	Activity        string     `json:"activity" binding:"required,min=1,max=500"`
	Category        string     `json:"category" binding:"required,oneof=deep_work meetings learning admin break other"`
	DurationMinutes int        `json:"duration_minutes" binding:"required,gt=0"`
	StartTime       *time.Time `json:"start_time,omitempty"`
	FocusQuality    string     `json:"focus_quality,omitempty" binding:"omitempty,oneof=deep shallow distracted"`
	Interruptions   int        `json:"interruptions,omitempty" binding:"omitempty,gte=0"`
}

// TimeEntryResponse represents a single time entry in API responses.
type TimeEntryResponse struct {
	ID              string    `json:"id"`
	Activity        string    `json:"activity"`
	Category        string    `json:"category"`
	DurationMinutes int       `json:"duration_minutes"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	FocusQuality    string    `json:"focus_quality"`
	Interruptions   int       `json:"interruptions"`
	CreatedAt       time.Time `json:"created_at"`
}

// TimeEntryListResponse represents the response for listing time entries.
type TimeEntryListResponse struct {
	Entries []TimeEntryResponse `json:"entries"`
}

// TimeStatsPeriodResponse represents aggregated focus figures for one window.
type TimeStatsPeriodResponse struct {
	TotalMinutes     int            `json:"total_minutes"`
	DeepFocusMinutes int            `json:"deep_focus_minutes"`
	ByCategory       map[string]int `json:"by_category"`
	EntryCount       int            `json:"entry_count"`
	AvgDailyMinutes  int            `json:"avg_daily_minutes,omitempty"`
}

// TimeStatsResponse represents the response for time stats retrieval.
type TimeStatsResponse struct {
	Today TimeStatsPeriodResponse `json:"today"`
	Week  TimeStatsPeriodResponse `json:"week"`
}

// ToTimeEntryResponse converts a domain TimeEntry to a TimeEntryResponse DTO.
func ToTimeEntryResponse(entry *entity.TimeEntry) TimeEntryResponse {
	return TimeEntryResponse{
		ID:              entry.ID.String(),
		Activity:        entry.Activity,
		Category:        string(entry.Category),
		DurationMinutes: entry.DurationMinutes,
		StartTime:       entry.StartTime,
		EndTime:         entry.EndTime,
		FocusQuality:    string(entry.FocusQuality),
		Interruptions:   entry.Interruptions,
		CreatedAt:       entry.CreatedAt,
	}
}

// ToTimeEntryListResponse converts a time entry slice to a
// TimeEntryListResponse DTO.
func ToTimeEntryListResponse(entries []*entity.TimeEntry) TimeEntryListResponse {
	out := make([]TimeEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = ToTimeEntryResponse(e)
	}
	return TimeEntryListResponse{Entries: out}
}

// ToTimeStatsPeriodResponse converts TimeStats to a TimeStatsPeriodResponse DTO.
func ToTimeStatsPeriodResponse(stats entity.TimeStats) TimeStatsPeriodResponse {
	byCategory := make(map[string]int, len(stats.ByCategory))
	for category, minutes := range stats.ByCategory {
		byCategory[string(category)] = minutes
	}

	return TimeStatsPeriodResponse{
		TotalMinutes:     stats.TotalMinutes,
		DeepFocusMinutes: stats.DeepFocusMinutes,
		ByCategory:       byCategory,
		EntryCount:       stats.EntryCount,
		AvgDailyMinutes:  stats.AvgDailyMinutes,
	}
}
