// Package error defines domain-specific errors for the LifeOS application.
package error

import "errors"

// Habit domain errors.
var (
	// ErrHabitNotFound is returned when a habit is not found in the system.
	ErrHabitNotFound = errors.New("habit not found")

	// ErrEmptyHabitName is returned when the habit name is empty.
	ErrEmptyHabitName = errors.New("habit name cannot be empty")

	// ErrInvalidHabitFrequency is returned when the frequency is not a known one.
	ErrInvalidHabitFrequency = errors.New("invalid habit frequency")

	// ErrInvalidCompletionDate is returned when a completion date cannot be parsed.
	ErrInvalidCompletionDate = errors.New("invalid completion date")
)

// HabitErrorCode defines error codes for habit errors.
// Format: HBT-XXYYYY where XX is category and YYYY is specific error.
type HabitErrorCode string

const (
	ErrCodeHabitNotFound          HabitErrorCode = "HBT-010001"
	ErrCodeEmptyHabitName         HabitErrorCode = "HBT-010002"
	ErrCodeInvalidHabitFrequency  HabitErrorCode = "HBT-010003"
	ErrCodeInvalidCompletionDate  HabitErrorCode = "HBT-010004"
)

// HabitError represents a habit error with code and message.
type HabitError struct {
	Code    HabitErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HabitError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *HabitError) Unwrap() error {
	return e.Err
}

// NewHabitError creates a new HabitError with the given code and message.
func NewHabitError(code HabitErrorCode, message string, err error) *HabitError {
	return &HabitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
