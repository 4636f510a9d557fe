// Package error defines domain-specific errors for the LifeOS application.
package error

import "errors"

// Insight and assistant domain errors.
var (
	// ErrInsightStoreUnavailable is returned when the insight store cannot be reached.
	ErrInsightStoreUnavailable = errors.New("insight store unavailable")

	// ErrAIServiceUnavailable is returned when the AI service is not configured or unreachable.
	ErrAIServiceUnavailable = errors.New("ai service unavailable")

	// ErrAIResponseUnparsable is returned when the AI response is not valid JSON.
	ErrAIResponseUnparsable = errors.New("ai response could not be parsed")

	// ErrEmptyAssistantInput is returned when the text to parse is empty.
	ErrEmptyAssistantInput = errors.New("input text cannot be empty")
)

// InsightErrorCode defines error codes for insight/assistant errors.
// Format: INS-XXYYYY where XX is category and YYYY is specific error.
type InsightErrorCode string

const (
	ErrCodeEmptyAssistantInput     InsightErrorCode = "INS-010001"
	ErrCodeInsightStoreUnavailable InsightErrorCode = "INS-030001"
	ErrCodeAIServiceUnavailable    InsightErrorCode = "INS-030002"
	ErrCodeAIResponseUnparsable    InsightErrorCode = "INS-030003"
)

// InsightError represents an insight/assistant error with code and message.
type InsightError struct {
	Code    InsightErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InsightError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InsightError) Unwrap() error {
	return e.Err
}

// NewInsightError creates a new InsightError with the given code and message.
func NewInsightError(code InsightErrorCode, message string, err error) *InsightError {
	return &InsightError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
