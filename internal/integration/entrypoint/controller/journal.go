// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/usecase/journal"
	domainerror "github.com/lifeos/backend/internal/domain/error"
	"github.com/lifeos/backend/internal/integration/entrypoint/dto"
	"github.com/lifeos/backend/internal/integration/entrypoint/middleware"
)

// JournalController handles journal entry endpoints.
type JournalController struct {
	createUseCase *journal.CreateJournalEntryUseCase
	listUseCase   *journal.ListJournalEntriesUseCase
	deleteUseCase *journal.DeleteJournalEntryUseCase
}

// NewJournalController creates a new journal controller instance.
func NewJournalController(
	createUseCase *journal.CreateJournalEntryUseCase,
	listUseCase *journal.ListJournalEntriesUseCase,
	deleteUseCase *journal.DeleteJournalEntryUseCase,
) *JournalController {
	return &JournalController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /journal requests.
func (c *JournalController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateJournalEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), journal.CreateJournalEntryInput{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		Mood:    req.Mood,
		Energy:  req.Energy,
		Tags:    req.Tags,
	})
	if err != nil {
		c.handleJournalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToJournalEntryResponse(output.Entry))
}

// List handles GET /journal requests. The recent mood average rides
// along with the entries.
func (c *JournalController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := journal.ListJournalEntriesInput{UserID: userID}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid limit parameter",
			})
			return
		}
		input.Limit = limit
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

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleJournalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToJournalListResponse(output.Entries, output.MoodAverage))
}

// Delete handles DELETE /journal/:id requests.
func (c *JournalController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid journal entry ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), journal.DeleteJournalEntryInput{
		ID:     entryID,
		UserID: userID,
	}); err != nil {
		c.handleJournalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Journal entry deleted"})
}

// handleJournalError handles journal errors and returns appropriate HTTP responses.
func (c *JournalController) handleJournalError(ctx *gin.Context, err error) {
	var journalErr *domainerror.JournalError
	if errors.As(err, &journalErr) {
		statusCode := http.StatusBadRequest
		if journalErr.Code == domainerror.ErrCodeJournalEntryNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: journalErr.Message,
			Code:  string(journalErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
