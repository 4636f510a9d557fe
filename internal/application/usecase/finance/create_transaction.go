package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/domain/entity"
	domainerror "github.com/lifeos/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID        uuid.UUID
	Type          entity.TransactionType
	Amount        decimal.Decimal
	Category      string
	Date          time.Time
	Merchant      string
	PaymentMethod string
	Tags          []string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{transactionRepo: transactionRepo}
}

// Execute performs the transaction creation. Amounts must be strictly
// positive; the sign is carried by the type, never the amount.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if input.Type != entity.TransactionTypeExpense && input.Type != entity.TransactionTypeIncome {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeNonPositiveAmount,
			"amount must be positive",
			domainerror.ErrNonPositiveAmount,
		)
	}

	if input.Category == "" {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeEmptyCategory,
			"category cannot be empty",
			domainerror.ErrEmptyCategory,
		)
	}

	if input.Date.IsZero() {
		input.Date = time.Now().UTC()
	}

	transaction := entity.NewTransaction(input.UserID, input.Type, input.Amount, input.Category, input.Date)
	transaction.Merchant = input.Merchant
	transaction.PaymentMethod = input.PaymentMethod
	transaction.Tags = input.Tags

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: transaction}, nil
}
