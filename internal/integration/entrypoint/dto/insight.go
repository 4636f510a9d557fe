// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/lifeos/backend/internal/domain/entity"
)

// GenerateInsightsRequest represents the request body for insight generation.
// WindowDays bounds the completed-task window of the sprint rule; nil
// keeps the configured default, 0 means all-time.
type GenerateInsightsRequest struct {
	WindowDays *int `json:"window_days,omitempty" binding:"omitempty,gte=0"`
}

// InsightResponse represents a single insight in API responses.
type InsightResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Severity    string    `json:"severity"`
	Icon        string    `json:"icon"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Actionable  bool      `json:"actionable"`
	GeneratedAt time.Time `json:"generated_at"`
}

// InsightListResponse represents the response for insight endpoints.
// Source is present only on generation responses.
type InsightListResponse struct {
	Insights []InsightResponse `json:"insights"`
	Source   string            `json:"source,omitempty"`
}

// BriefingResponse represents the response for the daily briefing.
type BriefingResponse struct {
	Briefing string `json:"briefing"`
	Source   string `json:"source"`
}

// ToInsightResponse converts a domain Insight to an InsightResponse DTO.
func ToInsightResponse(insight entity.Insight) InsightResponse {
	return InsightResponse{
		ID:          insight.ID,
		Type:        string(insight.Type),
		Severity:    string(insight.Severity),
		Icon:        insight.Icon,
		Title:       insight.Title,
		Content:     insight.Content,
		Actionable:  insight.Actionable,
		GeneratedAt: insight.GeneratedAt,
	}
}

// ToInsightListResponse converts insights and their source to an
// InsightListResponse DTO.
func ToInsightListResponse(insights []entity.Insight, source entity.InsightSource) InsightListResponse {
	out := make([]InsightResponse, len(insights))
	for i, ins := range insights {
		out[i] = ToInsightResponse(ins)
	}
	return InsightListResponse{Insights: out, Source: string(source)}
}
