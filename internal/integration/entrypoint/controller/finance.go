// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeos/backend/internal/application/usecase/finance"
	"github.com/lifeos/backend/internal/domain/entity"
	domainerror "github.com/lifeos/backend/internal/domain/error"
	"github.com/lifeos/backend/internal/integration/entrypoint/dto"
	"github.com/lifeos/backend/internal/integration/entrypoint/middleware"
)

// FinanceController handles transaction and budget endpoints.
type FinanceController struct {
	createTransactionUseCase *finance.CreateTransactionUseCase
	listTransactionsUseCase  *finance.ListTransactionsUseCase
	deleteTransactionUseCase *finance.DeleteTransactionUseCase
	statsUseCase             *finance.GetFinanceStatsUseCase
	upsertBudgetUseCase      *finance.UpsertBudgetUseCase
	listBudgetStatusUseCase  *finance.ListBudgetStatusUseCase
	deleteBudgetUseCase      *finance.DeleteBudgetUseCase
}

// NewFinanceController creates a new finance controller instance.
func NewFinanceController(
	createTransactionUseCase *finance.CreateTransactionUseCase,
	listTransactionsUseCase *finance.ListTransactionsUseCase,
	deleteTransactionUseCase *finance.DeleteTransactionUseCase,
	statsUseCase *finance.GetFinanceStatsUseCase,
	upsertBudgetUseCase *finance.UpsertBudgetUseCase,
	listBudgetStatusUseCase *finance.ListBudgetStatusUseCase,
	deleteBudgetUseCase *finance.DeleteBudgetUseCase,
) *FinanceController {
	return &FinanceController{
		createTransactionUseCase: createTransactionUseCase,
		listTransactionsUseCase:  listTransactionsUseCase,
		deleteTransactionUseCase: deleteTransactionUseCase,
		statsUseCase:             statsUseCase,
		upsertBudgetUseCase:      upsertBudgetUseCase,
		listBudgetStatusUseCase:  listBudgetStatusUseCase,
		deleteBudgetUseCase:      deleteBudgetUseCase,
	}
}

// CreateTransaction handles POST /transactions requests.
func (c *FinanceController) CreateTransaction(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	date := time.Now().UTC()
	if req.Date != nil {
		parsed, parseErr := time.Parse("2006-01-02", *req.Date)
		if parseErr != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		date = parsed
	}

	output, err := c.createTransactionUseCase.Execute(ctx.Request.Context(), finance.CreateTransactionInput{
		UserID:        userID,
		Type:          entity.TransactionType(req.Type),
		Amount:        decimal.NewFromFloat(req.Amount),
		Category:      req.Category,
		Date:          date,
		Merchant:      req.Merchant,
		PaymentMethod: req.PaymentMethod,
		Tags:          req.Tags,
	})
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// ListTransactions handles GET /transactions requests.
func (c *FinanceController) ListTransactions(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := finance.ListTransactionsInput{
		UserID:   userID,
		Category: ctx.Query("category"),
	}
	if typeStr := ctx.Query("type"); typeStr != "" {
		t := entity.TransactionType(typeStr)
		input.Type = &t
	}
	if daysStr := ctx.Query("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil || days < 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid days parameter, expected a non-negative integer",
			})
			return
		}
		start := time.Now().UTC().AddDate(0, 0, -days)
		input.StartDate = &start
	}
	if startStr := ctx.Query("start_date"); startStr != "" {
		start, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date format, expected YYYY-MM-DD",
			})
			return
		}
		input.StartDate = &start
	}

	output, err := c.listTransactionsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// DeleteTransaction handles DELETE /transactions/:id requests.
func (c *FinanceController) DeleteTransaction(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	if err := c.deleteTransactionUseCase.Execute(ctx.Request.Context(), finance.DeleteTransactionInput{
		ID:     transactionID,
		UserID: userID,
	}); err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Transaction deleted"})
}

// Stats handles GET /finance/stats requests. The period query parameter
// selects week or month; month is the default.
func (c *FinanceController) Stats(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.statsUseCase.Execute(ctx.Request.Context(), finance.GetFinanceStatsInput{
		UserID: userID,
		Period: entity.FinancePeriod(ctx.Query("period")),
	})
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFinanceStatsResponse(output.Stats, output.Period))
}

// UpsertBudget handles POST /budgets requests. Posting an existing
// category replaces its limit instead of creating a duplicate.
func (c *FinanceController) UpsertBudget(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.UpsertBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.upsertBudgetUseCase.Execute(ctx.Request.Context(), finance.UpsertBudgetInput{
		UserID:   userID,
		Category: req.Category,
		Limit:    decimal.NewFromFloat(req.Limit),
	})
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(output.Budget))
}

// ListBudgets handles GET /budgets requests, each budget paired with its
// current-month consumption.
func (c *FinanceController) ListBudgets(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listBudgetStatusUseCase.Execute(ctx.Request.Context(), finance.ListBudgetStatusInput{
		UserID: userID,
	})
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output.Statuses))
}

// DeleteBudget handles DELETE /budgets/:id requests.
func (c *FinanceController) DeleteBudget(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget ID format",
		})
		return
	}

	if err := c.deleteBudgetUseCase.Execute(ctx.Request.Context(), finance.DeleteBudgetInput{
		ID:     budgetID,
		UserID: userID,
	}); err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Budget deleted"})
}

// handleFinanceError handles finance errors and returns appropriate HTTP responses.
func (c *FinanceController) handleFinanceError(ctx *gin.Context, err error) {
	var financeErr *domainerror.FinanceError
	if errors.As(err, &financeErr) {
		statusCode := http.StatusBadRequest
		switch financeErr.Code {
		case domainerror.ErrCodeTransactionNotFound, domainerror.ErrCodeBudgetNotFound:
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: financeErr.Message,
			Code:  string(financeErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
