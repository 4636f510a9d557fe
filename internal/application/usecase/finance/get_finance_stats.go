package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/domain/entity"
	domainerror "github.com/lifeos/backend/internal/domain/error"
)

// GetFinanceStatsInput represents the input for finance stats retrieval.
type GetFinanceStatsInput struct {
	UserID uuid.UUID
	Period entity.FinancePeriod
}

// GetFinanceStatsOutput represents the output of finance stats retrieval.
type GetFinanceStatsOutput struct {
	Stats  entity.FinanceStats
	Period entity.FinancePeriod
}

// GetFinanceStatsUseCase aggregates income/expense figures for a period.
type GetFinanceStatsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetFinanceStatsUseCase creates a new GetFinanceStatsUseCase instance.
func NewGetFinanceStatsUseCase(transactionRepo adapter.TransactionRepository) *GetFinanceStatsUseCase {
	return &GetFinanceStatsUseCase{transactionRepo: transactionRepo}
}

// Execute computes finance stats for the requested period. The period
// defaults to month.
func (uc *GetFinanceStatsUseCase) Execute(ctx context.Context, input GetFinanceStatsInput) (*GetFinanceStatsOutput, error) {
	period := input.Period
	if period == "" {
		period = entity.FinancePeriodMonth
	}
	if period != entity.FinancePeriodWeek && period != entity.FinancePeriodMonth {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeInvalidFinancePeriod,
			"period must be 'week' or 'month'",
			domainerror.ErrInvalidFinancePeriod,
		)
	}

	start := PeriodStart(period, time.Now().UTC())

	transactions, err := uc.transactionRepo.FindByUserSince(ctx, input.UserID, start)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	return &GetFinanceStatsOutput{
		Stats:  ComputeStats(transactions, start),
		Period: period,
	}, nil
}
