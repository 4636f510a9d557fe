// Package finance contains transaction and budget use cases.
package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lifeos/backend/internal/domain/entity"
)

// PeriodStart returns the inclusive lower bound for a stats period. Week
// means the last seven days; month means the first of the current
// calendar month, however few days old it is.
func PeriodStart(period entity.FinancePeriod, now time.Time) time.Time {
	now = now.UTC()
	switch period {
	case entity.FinancePeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return now.Add(-7 * 24 * time.Hour)
	}
}

// ComputeStats aggregates income and expense figures over transactions
// dated at or after the period start. ByCategory covers expenses only.
func ComputeStats(transactions []*entity.Transaction, start time.Time) entity.FinanceStats {
	stats := entity.FinanceStats{
		Income:     decimal.Zero,
		Expenses:   decimal.Zero,
		Balance:    decimal.Zero,
		ByCategory: map[string]decimal.Decimal{},
	}

	for _, tx := range transactions {
		if tx.Date.Before(start) {
			continue
		}

		stats.TransactionCount++
		switch tx.Type {
		case entity.TransactionTypeIncome:
			stats.Income = stats.Income.Add(tx.Amount)
		case entity.TransactionTypeExpense:
			stats.Expenses = stats.Expenses.Add(tx.Amount)
			prev, ok := stats.ByCategory[tx.Category]
			if !ok {
				prev = decimal.Zero
			}
			stats.ByCategory[tx.Category] = prev.Add(tx.Amount)
		}
	}

	stats.Balance = stats.Income.Sub(stats.Expenses)

	return stats
}

// BudgetStatuses pairs each budget with its consumption from the given
// expense-by-category totals. Percentage is rounded to the nearest whole
// number and never clamped, so over-budget categories read above 100.
func BudgetStatuses(budgets []*entity.Budget, spentByCategory map[string]decimal.Decimal) []entity.BudgetStatus {
	statuses := make([]entity.BudgetStatus, 0, len(budgets))

	for _, b := range budgets {
		spent, ok := spentByCategory[b.Category]
		if !ok {
			spent = decimal.Zero
		}

		percentage := 0
		if b.Limit.IsPositive() {
			percentage = int(spent.Div(b.Limit).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
		}

		statuses = append(statuses, entity.BudgetStatus{
			Budget:     b,
			Spent:      spent,
			Percentage: percentage,
		})
	}

	return statuses
}
