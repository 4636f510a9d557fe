// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/lifeos/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Type          string   `json:"type" binding:"required,oneof=expense income"`
	Amount        float64  `json:"amount" binding:"required"`
	Category      string   `json:"category" binding:"required,min=1,max=100"`
	Date          *string  `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
	Merchant      string   `json:"merchant,omitempty" binding:"omitempty,max=255"`
	PaymentMethod string   `json:"payment_method,omitempty" binding:"omitempty,max=100"`
	Tags          []string `json:"tags,omitempty"`
}

// UpsertBudgetRequest represents the request body for budget creation.
// Posting an existing category replaces its limit.
type UpsertBudgetRequest struct {
	Category string  `json:"category" binding:"required,min=1,max=100"`
	Limit    float64 `json:"limit" binding:"required,gt=0"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Amount        string    `json:"amount"`
	Category      string    `json:"category"`
	Date          string    `json:"date"`
	Merchant      string    `json:"merchant,omitempty"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	Tags          []string  `json:"tags"`
	CreatedAt     time.Time `json:"created_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// FinanceStatsResponse represents aggregated finance figures in API responses.
type FinanceStatsResponse struct {
	Period           string            `json:"period"`
	Income           string            `json:"income"`
	Expenses         string            `json:"expenses"`
	Balance          string            `json:"balance"`
	ByCategory       map[string]string `json:"by_category"`
	TransactionCount int               `json:"transaction_count"`
}

// BudgetStatusResponse represents one budget with its consumption.
type BudgetStatusResponse struct {
	ID         string `json:"id"`
	Category   string `json:"category"`
	Limit      string `json:"limit"`
	Period     string `json:"period"`
	Spent      string `json:"spent"`
	Percentage int    `json:"percentage"`
}

// BudgetListResponse represents the response for listing budget statuses.
type BudgetListResponse struct {
	Budgets []BudgetStatusResponse `json:"budgets"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Limit     string    `json:"limit"`
	Period    string    `json:"period"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToTransactionResponse converts a domain Transaction to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	tags := txn.Tags
	if tags == nil {
		tags = []string{}
	}

	return TransactionResponse{
		ID:            txn.ID.String(),
		Type:          string(txn.Type),
		Amount:        txn.Amount.StringFixed(2),
		Category:      txn.Category,
		Date:          txn.Date.Format("2006-01-02"),
		Merchant:      txn.Merchant,
		PaymentMethod: txn.PaymentMethod,
		Tags:          tags,
		CreatedAt:     txn.CreatedAt,
	}
}

// ToTransactionListResponse converts a transaction slice to a
// TransactionListResponse DTO.
func ToTransactionListResponse(txns []*entity.Transaction) TransactionListResponse {
	out := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		out[i] = ToTransactionResponse(t)
	}
	return TransactionListResponse{Transactions: out}
}

// ToFinanceStatsResponse converts FinanceStats to a FinanceStatsResponse DTO.
func ToFinanceStatsResponse(stats entity.FinanceStats, period entity.FinancePeriod) FinanceStatsResponse {
	byCategory := make(map[string]string, len(stats.ByCategory))
	for category, amount := range stats.ByCategory {
		byCategory[category] = amount.StringFixed(2)
	}

	return FinanceStatsResponse{
		Period:           string(period),
		Income:           stats.Income.StringFixed(2),
		Expenses:         stats.Expenses.StringFixed(2),
		Balance:          stats.Balance.StringFixed(2),
		ByCategory:       byCategory,
		TransactionCount: stats.TransactionCount,
	}
}

// ToBudgetResponse converts a domain Budget to a BudgetResponse DTO.
func ToBudgetResponse(budget *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:        budget.ID.String(),
		Category:  budget.Category,
		Limit:     budget.Limit.StringFixed(2),
		Period:    string(budget.Period),
		CreatedAt: budget.CreatedAt,
		UpdatedAt: budget.UpdatedAt,
	}
}

// ToBudgetListResponse converts budget statuses to a BudgetListResponse DTO.
func ToBudgetListResponse(statuses []entity.BudgetStatus) BudgetListResponse {
	out := make([]BudgetStatusResponse, len(statuses))
	for i, s := range statuses {
		out[i] = BudgetStatusResponse{
			ID:         s.Budget.ID.String(),
			Category:   s.Budget.Category,
			Limit:      s.Budget.Limit.StringFixed(2),
			Period:     string(s.Budget.Period),
			Spent:      s.Spent.StringFixed(2),
			Percentage: s.Percentage,
		}
	}
	return BudgetListResponse{Budgets: out}
}
