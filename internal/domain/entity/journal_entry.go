// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Journal mood and energy bounds.
const (
	MoodMin   = 1
	MoodMax   = 10
	EnergyMin = 1
	EnergyMax = 10
)

// JournalEntry represents a dated reflection with mood and energy scores.
// Content is immutable once created; there is no edit path.
type JournalEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Content   string
	Mood      int // 1-10
	Energy    int // 1-10
	Tags      []string
	CreatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewJournalEntry creates a new JournalEntry entity.
func NewJournalEntry(userID uuid.UUID, title, content string, mood, energy int, tags []string) *JournalEntry {
	return &JournalEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		Mood:      mood,
		Energy:    energy,
		Tags:      tags,
		CreatedAt: time.Now().UTC(),
	}
}
