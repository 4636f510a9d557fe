// Package error defines domain-specific errors for the LifeOS application.
package error

import "errors"

// Study session domain errors.
var (
	// ErrStudySessionNotFound is returned when a study session is not found.
	ErrStudySessionNotFound = errors.New("study session not found")

	// ErrEmptySubject is returned when the subject is empty.
	ErrEmptySubject = errors.New("subject cannot be empty")

	// ErrInvalidDifficulty is returned when the difficulty is not a known one.
	ErrInvalidDifficulty = errors.New("invalid difficulty")
)

// StudyErrorCode defines error codes for study session errors.
// Format: STU-XXYYYY where XX is category and YYYY is specific error.
type StudyErrorCode string

const (
	ErrCodeEmptySubject         StudyErrorCode = "STU-010001"
	ErrCodeInvalidDifficulty    StudyErrorCode = "STU-010002"
	ErrCodeStudySessionNotFound StudyErrorCode = "STU-020001"
)

// StudyError represents a study session error with code and message.
type StudyError struct {
	Code    StudyErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StudyError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StudyError) Unwrap() error {
	return e.Err
}

// NewStudyError creates a new StudyError with the given code and message.
func NewStudyError(code StudyErrorCode, message string, err error) *StudyError {
	return &StudyError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
