// Package error defines domain-specific errors for the LifeOS application.
package error

import "errors"

// Time tracking domain errors.
var (
	// ErrTimeEntryNotFound is returned when a time entry is not found in the system.
	ErrTimeEntryNotFound = errors.New("time entry not found")

	// ErrInvalidActivity is returned when the activity is empty or too long.
	ErrInvalidActivity = errors.New("activity must be between 1 and 500 characters")

	// ErrInvalidTimeCategory is returned when the category is not a known one.
	ErrInvalidTimeCategory = errors.New("invalid time category")

	// ErrNonPositiveDuration is returned when the duration is below one minute.
	ErrNonPositiveDuration = errors.New("duration must be at least one minute")

	// ErrNegativeInterruptions is returned when interruptions is negative.
	ErrNegativeInterruptions = errors.New("interruptions cannot be negative")

	// ErrInvalidFocusQuality is returned when the focus quality is not a known one.
	ErrInvalidFocusQuality = errors.New("invalid focus quality")
)

// TimeErrorCode defines error codes for time tracking errors.
// Format: TIM-XXYYYY where XX is category and YYYY is specific error.
type TimeErrorCode string

const (
	ErrCodeInvalidActivity       TimeErrorCode = "TIM-010001"
	ErrCodeInvalidTimeCategory   TimeErrorCode = "TIM-010002"
	ErrCodeNonPositiveDuration   TimeErrorCode = "TIM-010003"
	ErrCodeNegativeInterruptions TimeErrorCode = "TIM-010004"
	ErrCodeInvalidFocusQuality   TimeErrorCode = "TIM-010005"
	ErrCodeTimeEntryNotFound     TimeErrorCode = "TIM-020001"
)

// TimeError represents a time tracking error with code and message.
type TimeError struct {
	Code    TimeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TimeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TimeError) Unwrap() error {
	return e.Err
}

// NewTimeError creates a new TimeError with the given code and message.
func NewTimeError(code TimeErrorCode, message string, err error) *TimeError {
	return &TimeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
