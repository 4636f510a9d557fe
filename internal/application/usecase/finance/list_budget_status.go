package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/domain/entity"
)

// ListBudgetStatusInput represents the input for budget status retrieval.
type ListBudgetStatusInput struct {
	UserID uuid.UUID
}

// ListBudgetStatusOutput represents the output of budget status retrieval.
type ListBudgetStatusOutput struct {
	Statuses []entity.BudgetStatus
}

// ListBudgetStatusUseCase reports each budget against the current
// calendar month's spending.
type ListBudgetStatusUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
}

// NewListBudgetStatusUseCase creates a new ListBudgetStatusUseCase instance.
func NewListBudgetStatusUseCase(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
) *ListBudgetStatusUseCase {
	return &ListBudgetStatusUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute computes each budget's consumption for the current month.
func (uc *ListBudgetStatusUseCase) Execute(ctx context.Context, input ListBudgetStatusInput) (*ListBudgetStatusOutput, error) {
	budgets, err := uc.budgetRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	start := PeriodStart(entity.FinancePeriodMonth, time.Now().UTC())

	transactions, err := uc.transactionRepo.FindByUserSince(ctx, input.UserID, start)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	stats := ComputeStats(transactions, start)

	return &ListBudgetStatusOutput{Statuses: BudgetStatuses(budgets, stats.ByCategory)}, nil
}
