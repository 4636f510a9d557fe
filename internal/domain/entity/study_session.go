// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// StudyDifficulty grades how demanding a study session was.
type StudyDifficulty string

const (
	StudyDifficultyEasy   StudyDifficulty = "easy"
	StudyDifficultyMedium StudyDifficulty = "medium"
	StudyDifficultyHard   StudyDifficulty = "hard"
)

// StudySession represents one logged learning session.
type StudySession struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Subject         string
	DurationMinutes int
	Difficulty      StudyDifficulty
	Pomodoros       int
	CreatedAt       time.Time
	DeletedAt       *time.Time // Soft-delete support
}

// NewStudySession creates a new StudySession entity.
func NewStudySession(
	userID uuid.UUID,
	subject string,
	durationMinutes int,
	difficulty StudyDifficulty,
	pomodoros int,
) *StudySession {
	return &StudySession{
		ID:              uuid.New(),
		UserID:          userID,
		Subject:         subject,
		DurationMinutes: durationMinutes,
		Difficulty:      difficulty,
		Pomodoros:       pomodoros,
		CreatedAt:       time.Now().UTC(),
	}
}
