// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/usecase/timetracking"
	"github.com/lifeos/backend/internal/domain/entity"
	domainerror "github.com/lifeos/backend/internal/domain/error"
	"github.com/lifeos/backend/internal/integration/entrypoint/dto"
	"github.com/lifeos/backend/internal/integration/entrypoint/middleware"
)

// TimeTrackingController handles time entry endpoints.
type TimeTrackingController struct {
	createUseCase *timetracking.CreateTimeEntryUseCase
	listUseCase   *timetracking.ListTimeEntriesUseCase
	statsUseCase  *timetracking.GetTimeStatsUseCase
	deleteUseCase *timetracking.DeleteTimeEntryUseCase
}

// NewTimeTrackingController creates a new time tracking controller instance.
func NewTimeTrackingController(
	createUseCase *timetracking.CreateTimeEntryUseCase,
	listUseCase *timetracking.ListTimeEntriesUseCase,
	statsUseCase *timetracking.GetTimeStatsUseCase,
	deleteUseCase *timetracking.DeleteTimeEntryUseCase,
) *TimeTrackingController {
	return &TimeTrackingController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		statsUseCase:  statsUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /time-entries requests. StartTime defaults to now
// minus the duration so the entry ends at the present moment.
func (c *TimeTrackingController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateTimeEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	startTime := time.Now().UTC().Add(-time.Duration(req.DurationMinutes) * time.Minute)
	if req.StartTime != nil {
		startTime = req.StartTime.UTC()
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), timetracking.CreateTimeEntryInput{
		UserID:          userID,
		Activity:        req.Activity,
		Category:        entity.TimeCategory(req.Category),
		DurationMinutes: req.DurationMinutes,
		StartTime:       startTime,
		FocusQuality:    entity.FocusQuality(req.FocusQuality),
		Interruptions:   req.Interruptions,
	})
	if err != nil {
		c.handleTimeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTimeEntryResponse(output.Entry))
}

// List handles GET /time-entries requests.
func (c *TimeTrackingController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := timetracking.ListTimeEntriesInput{
		UserID:   userID,
		Category: ctx.Query("category"),
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
	if endStr := ctx.Query("end_date"); endStr != "" {
		end, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end_date format, expected YYYY-MM-DD",
			})
			return
		}
		input.EndDate = &end
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTimeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTimeEntryListResponse(output.Entries))
}

// Stats handles GET /time-entries/stats requests, reporting today and
// the rolling week.
func (c *TimeTrackingController) Stats(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.statsUseCase.Execute(ctx.Request.Context(), timetracking.GetTimeStatsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleTimeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TimeStatsResponse{
		Today: dto.ToTimeStatsPeriodResponse(output.Today),
		Week:  dto.ToTimeStatsPeriodResponse(output.Week),
	})
}

// Delete handles DELETE /time-entries/:id requests.
func (c *TimeTrackingController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid time entry ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), timetracking.DeleteTimeEntryInput{
		ID:     entryID,
		UserID: userID,
	}); err != nil {
		c.handleTimeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Time entry deleted"})
}

// handleTimeError handles time tracking errors and returns appropriate HTTP responses.
func (c *TimeTrackingController) handleTimeError(ctx *gin.Context, err error) {
	var timeErr *domainerror.TimeError
	if errors.As(err, &timeErr) {
		statusCode := http.StatusBadRequest
		if timeErr.Code == domainerror.ErrCodeTimeEntryNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: timeErr.Message,
			Code:  string(timeErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
