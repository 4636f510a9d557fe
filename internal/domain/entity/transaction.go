// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction represents a financial record in the LifeOS system.
// Amount is strictly positive; Type is immutable after creation. There is
// no update path: corrections are delete-and-recreate.
type Transaction struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Type          TransactionType
	Amount        decimal.Decimal
	Category      string
	Date          time.Time
	Merchant      string
	PaymentMethod string
	Tags          []string
	CreatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	transactionType TransactionType,
	amount decimal.Decimal,
	category string,
	date time.Time,
) *Transaction {
	return &Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      transactionType,
		Amount:    amount,
		Category:  category,
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}
}

// FinancePeriod selects the aggregation window for finance stats.
type FinancePeriod string

const (
	FinancePeriodWeek  FinancePeriod = "week"  // last 7 days
	FinancePeriodMonth FinancePeriod = "month" // since first of current month
)

// FinanceStats represents aggregated income/expense figures for a period.
type FinanceStats struct {
	Income           decimal.Decimal
	Expenses         decimal.Decimal
	Balance          decimal.Decimal
	ByCategory       map[string]decimal.Decimal // expenses only
	TransactionCount int
}
