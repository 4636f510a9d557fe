package finance

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/domain/entity"
	domainerror "github.com/lifeos/backend/internal/domain/error"
)

// UpsertBudgetInput represents the input for budget creation or update.
type UpsertBudgetInput struct {
	UserID   uuid.UUID
	Category string
	Limit    decimal.Decimal
}

// UpsertBudgetOutput represents the output of budget creation or update.
type UpsertBudgetOutput struct {
	Budget *entity.Budget
}

// UpsertBudgetUseCase creates a budget or replaces the limit of the
// existing one for the same category.
type UpsertBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewUpsertBudgetUseCase creates a new UpsertBudgetUseCase instance.
func NewUpsertBudgetUseCase(budgetRepo adapter.BudgetRepository) *UpsertBudgetUseCase {
	return &UpsertBudgetUseCase{budgetRepo: budgetRepo}
}

// Execute performs the budget upsert.
func (uc *UpsertBudgetUseCase) Execute(ctx context.Context, input UpsertBudgetInput) (*UpsertBudgetOutput, error) {
	if input.Category == "" {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeEmptyCategory,
			"category cannot be empty",
			domainerror.ErrEmptyCategory,
		)
	}

	if !input.Limit.IsPositive() {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeNonPositiveBudgetLimit,
			"budget limit must be positive",
			domainerror.ErrNonPositiveBudgetLimit,
		)
	}

	budget := entity.NewBudget(input.UserID, input.Category, input.Limit, entity.BudgetPeriodMonthly)

	if err := uc.budgetRepo.Upsert(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to upsert budget: %w", err)
	}

	return &UpsertBudgetOutput{Budget: budget}, nil
}
