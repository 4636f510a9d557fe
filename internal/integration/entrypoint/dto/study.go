// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/lifeos/backend/internal/domain/entity"
)

// CreateStudySessionRequest represents the request body for study session creation.
type CreateStudySessionRequest struct {
	Subject         string `json:"subject" binding:"required,min=1,max=255"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,gt=0"`
	Difficulty      string `json:"difficulty,omitempty" binding:"omitempty,oneof=easy medium hard"`
	Pomodoros       int    `json:"pomodoros,omitempty" binding:"omitempty,gte=0"`
}

// StudySessionResponse represents a single study session in API responses.
type StudySessionResponse struct {
	ID              string    `json:"id"`
	Subject         string    `json:"subject"`
	DurationMinutes int       `json:"duration_minutes"`
	Difficulty      string    `json:"difficulty"`
	Pomodoros       int       `json:"pomodoros"`
	CreatedAt       time.Time `json:"created_at"`
}

// StudySessionListResponse represents the response for listing study sessions.
type StudySessionListResponse struct {
	Sessions     []StudySessionResponse `json:"sessions"`
	TotalMinutes int                    `json:"total_minutes"`
}

// ToStudySessionResponse converts a domain StudySession to a
// StudySessionResponse DTO.
func ToStudySessionResponse(session *entity.StudySession) StudySessionResponse {
	return StudySessionResponse{
		ID:              session.ID.String(),
		Subject:         session.Subject,
		DurationMinutes: session.DurationMinutes,
		Difficulty:      string(session.Difficulty),
		Pomodoros:       session.Pomodoros,
		CreatedAt:       session.CreatedAt,
	}
}

// ToStudySessionListResponse converts sessions and their total to a
// StudySessionListResponse DTO.
func ToStudySessionListResponse(sessions []*entity.StudySession, totalMinutes int) StudySessionListResponse {
	out := make([]StudySessionResponse, len(sessions))
	for i, s := range sessions {
		out[i] = ToStudySessionResponse(s)
	}
	return StudySessionListResponse{Sessions: out, TotalMinutes: totalMinutes}
}
