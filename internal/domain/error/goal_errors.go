// Package error defines domain-specific errors for the LifeOS application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrMilestoneNotFound is returned when a milestone is not found on a goal.
	ErrMilestoneNotFound = errors.New("milestone not found")

	// ErrEmptyGoalTitle is returned when the goal title is empty.
	ErrEmptyGoalTitle = errors.New("goal title cannot be empty")

	// ErrInvalidGoalStatus is returned when the goal status is not a known one.
	ErrInvalidGoalStatus = errors.New("invalid goal status")

	// ErrInvalidGoalProgress is returned when progress is outside 0-100.
	ErrInvalidGoalProgress = errors.New("progress must be between 0 and 100")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	ErrCodeEmptyGoalTitle      GoalErrorCode = "GOL-010001"
	ErrCodeInvalidGoalStatus   GoalErrorCode = "GOL-010002"
	ErrCodeInvalidGoalProgress GoalErrorCode = "GOL-010003"
	ErrCodeGoalNotFound        GoalErrorCode = "GOL-020001"
	ErrCodeMilestoneNotFound   GoalErrorCode = "GOL-020002"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
