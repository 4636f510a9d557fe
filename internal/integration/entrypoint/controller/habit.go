// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/usecase/habit"
	"github.com/lifeos/backend/internal/domain/entity"
	domainerror "github.com/lifeos/backend/internal/domain/error"
	"github.com/lifeos/backend/internal/integration/entrypoint/dto"
	"github.com/lifeos/backend/internal/integration/entrypoint/middleware"
)

// HabitController handles habit endpoints.
type HabitController struct {
	createUseCase *habit.CreateHabitUseCase
	listUseCase   *habit.ListHabitsUseCase
	toggleUseCase *habit.ToggleCompletionUseCase
	deleteUseCase *habit.DeleteHabitUseCase
}

// NewHabitController creates a new habit controller instance.
func NewHabitController(
	createUseCase *habit.CreateHabitUseCase,
	listUseCase *habit.ListHabitsUseCase,
	toggleUseCase *habit.ToggleCompletionUseCase,
	deleteUseCase *habit.DeleteHabitUseCase,
) *HabitController {
	return &HabitController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		toggleUseCase: toggleUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /habits requests.
func (c *HabitController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateHabitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), habit.CreateHabitInput{
		UserID:    userID,
		Name:      req.Name,
		Category:  req.Category,
		Frequency: entity.HabitFrequency(req.Frequency),
	})
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToHabitResponse(entity.HabitWithStreak{
		Habit: output.Habit,
	}))
}

// List handles GET /habits requests. Every habit carries its derived
// streak; the aggregate stats ride along.
func (c *HabitController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), habit.ListHabitsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHabitListResponse(output.Habits, output.Stats))
}

// Toggle handles POST /habits/:id/toggle requests. The date defaults to
// today; future dates are rejected.
func (c *HabitController) Toggle(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	habitID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit ID format",
		})
		return
	}

	// Body is optional; an empty or missing body means toggle today.
	var req dto.ToggleHabitRequest
	_ = ctx.ShouldBindJSON(&req)

	date := time.Now().UTC()
	if req.Date != nil {
		parsed, parseErr := time.Parse("2006-01-02", *req.Date)
		if parseErr != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidCompletionDate),
			})
			return
		}
		date = parsed
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), habit.ToggleCompletionInput{
		HabitID: habitID,
		UserID:  userID,
		Date:    date,
	})
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToggleHabitResponse{
		Habit:  dto.ToHabitResponse(*output.Habit),
		Marked: output.Marked,
	})
}

// Delete handles DELETE /habits/:id requests.
func (c *HabitController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	habitID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), habit.DeleteHabitInput{
		ID:     habitID,
		UserID: userID,
	}); err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Habit deleted"})
}

// handleHabitError handles habit errors and returns appropriate HTTP responses.
func (c *HabitController) handleHabitError(ctx *gin.Context, err error) {
	var habitErr *domainerror.HabitError
	if errors.As(err, &habitErr) {
		statusCode := http.StatusBadRequest
		if habitErr.Code == domainerror.ErrCodeHabitNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: habitErr.Message,
			Code:  string(habitErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
