// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/lifeos/backend/internal/domain/entity"
)

// CreateJournalEntryRequest represents the request body for journal entry creation.
type CreateJournalEntryRequest struct {
	Title   string   `json:"title,omitempty" binding:"omitempty,max=255"`
	Content string   `json:"content" binding:"required,min=1"`
	Mood    int      `json:"mood" binding:"required,gte=1,lte=10"`
	Energy  int      `json:"energy" binding:"required,gte=1,lte=10"`
	Tags    []string `json:"tags,omitempty"`
}

// JournalEntryResponse represents a single journal entry in API responses.
type JournalEntryResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      int       `json:"mood"`
	Energy    int       `json:"energy"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

// JournalListResponse represents the response for listing journal entries.
type JournalListResponse struct {
	Entries     []JournalEntryResponse `json:"entries"`
	MoodAverage float64                `json:"mood_average"`
}

// ToJournalEntryResponse converts a domain JournalEntry to a
// JournalEntryResponse DTO.
func ToJournalEntryResponse(entry *entity.JournalEntry) JournalEntryResponse {
	tags := entry.Tags
	if tags == nil {
		tags = []string{}
	}

	return JournalEntryResponse{
		ID:        entry.ID.String(),
		Title:     entry.Title,
		Content:   entry.Content,
		Mood:      entry.Mood,
		Energy:    entry.Energy,
		Tags:      tags,
		CreatedAt: entry.CreatedAt,
	}
}

// ToJournalListResponse converts entries and the mood average to a
// JournalListResponse DTO.
func ToJournalListResponse(entries []*entity.JournalEntry, moodAverage float64) JournalListResponse {
	out := make([]JournalEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = ToJournalEntryResponse(e)
	}
	return JournalListResponse{Entries: out, MoodAverage: moodAverage}
}
