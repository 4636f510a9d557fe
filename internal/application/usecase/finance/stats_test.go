package finance

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeos/backend/internal/domain/entity"
)

func tx(txType entity.TransactionType, amount float64, category string, date time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:       uuid.New(),
		Type:     txType,
		Amount:   decimal.NewFromFloat(amount),
		Category: category,
		Date:     date,
	}
}

func TestPeriodStart(t *testing.T) {
	now := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)

	t.Run("week is last seven days", func(t *testing.T) {
		want := now.Add(-7 * 24 * time.Hour)
		if got := PeriodStart(entity.FinancePeriodWeek, now); !got.Equal(want) {
			t.Errorf("PeriodStart(week) = %v, want %v", got, want)
		}
	})

	t.Run("month starts on the first even early in the month", func(t *testing.T) {
		want := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		if got := PeriodStart(entity.FinancePeriodMonth, now); !got.Equal(want) {
			t.Errorf("PeriodStart(month) = %v, want %v", got, want)
		}
	})
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	monthStart := PeriodStart(entity.FinancePeriodMonth, now)

	t.Run("month window excludes prior month, balance may go negative", func(t *testing.T) {
		transactions := []*entity.Transaction{
			tx(entity.TransactionTypeIncome, 1000, "salary", time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)),
			tx(entity.TransactionTypeExpense, 1200, "rent", time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)),
			tx(entity.TransactionTypeExpense, 500, "rent", time.Date(2025, 2, 27, 9, 0, 0, 0, time.UTC)),
		}

		stats := ComputeStats(transactions, monthStart)

		if stats.TransactionCount != 2 {
			t.Errorf("expected 2 transactions in window, got %d", stats.TransactionCount)
		}
		if !stats.Balance.Equal(decimal.NewFromInt(-200)) {
			t.Errorf("expected balance -200, got %s", stats.Balance)
		}
	})

	t.Run("by-category totals cover expenses only", func(t *testing.T) {
		transactions := []*entity.Transaction{
			tx(entity.TransactionTypeExpense, 30, "food", now),
			tx(entity.TransactionTypeExpense, 15, "food", now),
			tx(entity.TransactionTypeIncome, 100, "food", now),
		}

		stats := ComputeStats(transactions, monthStart)

		if !stats.ByCategory["food"].Equal(decimal.NewFromInt(45)) {
			t.Errorf("expected food total 45, got %s", stats.ByCategory["food"])
		}
	})
}

func TestBudgetStatuses(t *testing.T) {
	budget := &entity.Budget{
		ID:       uuid.New(),
		Category: "food",
		Limit:    decimal.NewFromInt(400),
	}

	tests := []struct {
		name  string
		spent decimal.Decimal
		want  int
	}{
		{"unspent", decimal.Zero, 0},
		{"exactly at limit", decimal.NewFromInt(400), 100},
		{"over limit stays unclamped", decimal.NewFromInt(500), 125},
		{"rounds to nearest", decimal.NewFromInt(401), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statuses := BudgetStatuses([]*entity.Budget{budget}, map[string]decimal.Decimal{"food": tt.spent})
			if len(statuses) != 1 {
				t.Fatalf("expected 1 status, got %d", len(statuses))
			}
			if statuses[0].Percentage != tt.want {
				t.Errorf("expected %d%%, got %d%%", tt.want, statuses[0].Percentage)
			}
		})
	}
}
