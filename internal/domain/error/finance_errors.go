// Package error defines domain-specific errors for the LifeOS application.
package error

import "errors"

// Finance domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrNonPositiveAmount is returned when the amount is zero or negative.
	ErrNonPositiveAmount = errors.New("amount must be positive")

	// ErrEmptyCategory is returned when the category is empty.
	ErrEmptyCategory = errors.New("category cannot be empty")

	// ErrInvalidFinancePeriod is returned when the stats period is not week or month.
	ErrInvalidFinancePeriod = errors.New("invalid finance period")

	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrNonPositiveBudgetLimit is returned when the budget limit is zero or negative.
	ErrNonPositiveBudgetLimit = errors.New("budget limit must be positive")
)

// FinanceErrorCode defines error codes for finance errors.
// Format: FIN-XXYYYY where XX is category and YYYY is specific error.
type FinanceErrorCode string

const (
	ErrCodeInvalidTransactionType  FinanceErrorCode = "FIN-010001"
	ErrCodeNonPositiveAmount       FinanceErrorCode = "FIN-010002"
	ErrCodeEmptyCategory           FinanceErrorCode = "FIN-010003"
	ErrCodeInvalidFinancePeriod    FinanceErrorCode = "FIN-010004"
	ErrCodeNonPositiveBudgetLimit  FinanceErrorCode = "FIN-010005"
	ErrCodeTransactionNotFound     FinanceErrorCode = "FIN-020001"
	ErrCodeBudgetNotFound          FinanceErrorCode = "FIN-020002"
)

// FinanceError represents a finance error with code and message.
type FinanceError struct {
	Code    FinanceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FinanceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FinanceError) Unwrap() error {
	return e.Err
}

// NewFinanceError creates a new FinanceError with the given code and message.
func NewFinanceError(code FinanceErrorCode, message string, err error) *FinanceError {
	return &FinanceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
