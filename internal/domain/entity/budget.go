// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the window a budget limit applies to.
type BudgetPeriod string

const (
	BudgetPeriodMonthly BudgetPeriod = "monthly"
)

// Budget represents a spending limit for a single expense category.
// At most one budget exists per (user, category); creation by category
// match upserts the existing record.
type Budget struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Category  string
	Limit     decimal.Decimal
	Period    BudgetPeriod
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewBudget creates a new Budget entity.
func NewBudget(userID uuid.UUID, category string, limit decimal.Decimal, period BudgetPeriod) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  category,
		Limit:     limit,
		Period:    period,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// BudgetStatus pairs a budget with its consumption for the current month.
// Percentage is deliberately unclamped: values above 100 signal an
// over-budget state.
type BudgetStatus struct {
	Budget     *Budget
	Spent      decimal.Decimal
	Percentage int
}
