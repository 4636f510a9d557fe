// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// HabitFrequency represents how often a habit is expected to be completed.
type HabitFrequency string

const (
	HabitFrequencyDaily  HabitFrequency = "daily"
	HabitFrequencyWeekly HabitFrequency = "weekly"
)

// Habit represents a recurring practice tracked day by day.
// The streak is never stored; it is derived from the completion log.
type Habit struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Category    string
	Frequency   HabitFrequency
	Completions []HabitCompletion
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// HabitCompletion records whether a habit was completed on a given day.
// At most one completion record exists per (habit, date).
type HabitCompletion struct {
	ID        uuid.UUID
	HabitID   uuid.UUID
	Date      time.Time // normalized to midnight UTC
	Completed bool
	CreatedAt time.Time
}

// NewHabit creates a new Habit entity.
func NewHabit(userID uuid.UUID, name, category string, frequency HabitFrequency) *Habit {
	now := time.Now().UTC()

	return &Habit{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Category:  category,
		Frequency: frequency,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HabitWithStreak pairs a habit with its derived streak length.
type HabitWithStreak struct {
	Habit          *Habit
	Streak         int
	CompletedToday bool
}

// HabitStats represents derived counters over a user's habit collection.
type HabitStats struct {
	TotalCount          int
	CompletedTodayCount int
	AverageStreak       float64
	LongestStreak       int
}
