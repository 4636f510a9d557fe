// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TimeCategory represents the kind of work a time entry covers.
type TimeCategory string

const (
	TimeCategoryDeepWork TimeCategory = "deep_work"
	TimeCategoryMeetings TimeCategory = "meetings"
	TimeCategoryLearning TimeCategory = "learning"
	TimeCategoryAdmin    TimeCategory = "admin"
	TimeCategoryBreak    TimeCategory = "break"
	TimeCategoryOther    TimeCategory = "other"
)

// ValidTimeCategory reports whether the given category is a known one.
func ValidTimeCategory(c TimeCategory) bool {
	switch c {
	case TimeCategoryDeepWork, TimeCategoryMeetings, TimeCategoryLearning,
		TimeCategoryAdmin, TimeCategoryBreak, TimeCategoryOther:
		return true
	}
	return false
}

// FocusQuality grades how focused a logged session was.
type FocusQuality string

const (
	FocusQualityDeep       FocusQuality = "deep"
	FocusQualityShallow    FocusQuality = "shallow"
	FocusQualityDistracted FocusQuality = "distracted"
)

// TimeEntry represents one logged block of time.
// EndTime always equals StartTime plus the duration.
type TimeEntry struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Activity        string
	Category        TimeCategory
	DurationMinutes int
	StartTime       time.Time
	EndTime         time.Time
	FocusQuality    FocusQuality
	Interruptions   int
	CreatedAt       time.Time
	DeletedAt       *time.Time // Soft-delete support
}

// NewTimeEntry creates a new TimeEntry entity, deriving EndTime from the
// start time and duration.
func NewTimeEntry(
	userID uuid.UUID,
	activity string,
	category TimeCategory,
	durationMinutes int,
	startTime time.Time,
	focusQuality FocusQuality,
	interruptions int,
) *TimeEntry {
	return &TimeEntry{
		ID:              uuid.New(),
		UserID:          userID,
		Activity:        activity,
		Category:        category,
		DurationMinutes: durationMinutes,
		StartTime:       startTime,
		EndTime:         startTime.Add(time.Duration(durationMinutes) * time.Minute),
		FocusQuality:    focusQuality,
		Interruptions:   interruptions,
		CreatedAt:       time.Now().UTC(),
	}
}

// TimeStats represents aggregated focus figures for a day or week.
type TimeStats struct {
	TotalMinutes     int
	DeepFocusMinutes int
	ByCategory       map[TimeCategory]int
	EntryCount       int
	// AvgDailyMinutes is only populated for weekly stats. It always divides
	// by 7 regardless of how many days were actually logged, normalizing
	// against a full week.
	AvgDailyMinutes int
}
