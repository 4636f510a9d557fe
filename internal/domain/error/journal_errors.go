// Package error defines domain-specific errors for the LifeOS application.
package error

import "errors"

// Journal domain errors.
var (
	// ErrJournalEntryNotFound is returned when a journal entry is not found.
	ErrJournalEntryNotFound = errors.New("journal entry not found")

	// ErrMoodOutOfRange is returned when mood is outside 1-10.
	ErrMoodOutOfRange = errors.New("mood must be between 1 and 10")

	// ErrEnergyOutOfRange is returned when energy is outside 1-10.
	ErrEnergyOutOfRange = errors.New("energy must be between 1 and 10")

	// ErrEmptyJournalContent is returned when the content is empty.
	ErrEmptyJournalContent = errors.New("journal content cannot be empty")
)

// JournalErrorCode defines error codes for journal errors.
// Format: JRN-XXYYYY where XX is category and YYYY is specific error.
type JournalErrorCode string

const (
	ErrCodeMoodOutOfRange       JournalErrorCode = "JRN-010001"
	ErrCodeEnergyOutOfRange     JournalErrorCode = "JRN-010002"
	ErrCodeEmptyJournalContent  JournalErrorCode = "JRN-010003"
	ErrCodeJournalEntryNotFound JournalErrorCode = "JRN-020001"
)

// JournalError represents a journal error with code and message.
type JournalError struct {
	Code    JournalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *JournalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *JournalError) Unwrap() error {
	return e.Err
}

// NewJournalError creates a new JournalError with the given code and message.
func NewJournalError(code JournalErrorCode, message string, err error) *JournalError {
	return &JournalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
