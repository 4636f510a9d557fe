// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/usecase/study"
	"github.com/lifeos/backend/internal/domain/entity"
	domainerror "github.com/lifeos/backend/internal/domain/error"
	"github.com/lifeos/backend/internal/integration/entrypoint/dto"
	"github.com/lifeos/backend/internal/integration/entrypoint/middleware"
)

// StudyController handles study session endpoints.
type StudyController struct {
	createUseCase *study.CreateStudySessionUseCase
	listUseCase   *study.ListStudySessionsUseCase
	deleteUseCase *study.DeleteStudySessionUseCase
}

// NewStudyController creates a new study controller instance.
func NewStudyController(
	createUseCase *study.CreateStudySessionUseCase,
	listUseCase *study.ListStudySessionsUseCase,
	deleteUseCase *study.DeleteStudySessionUseCase,
) *StudyController {
	return &StudyController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /study-sessions requests.
func (c *StudyController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateStudySessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), study.CreateStudySessionInput{
		UserID:          userID,
		Subject:         req.Subject,
		DurationMinutes: req.DurationMinutes,
		Difficulty:      entity.StudyDifficulty(req.Difficulty),
		Pomodoros:       req.Pomodoros,
	})
	if err != nil {
		c.handleStudyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToStudySessionResponse(output.Session))
}

// List handles GET /study-sessions requests.
func (c *StudyController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := study.ListStudySessionsInput{
		UserID:  userID,
		Subject: ctx.Query("subject"),
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
		c.handleStudyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStudySessionListResponse(output.Sessions, output.TotalMinutes))
}

// Delete handles DELETE /study-sessions/:id requests.
func (c *StudyController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	sessionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid study session ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), study.DeleteStudySessionInput{
		ID:     sessionID,
		UserID: userID,
	}); err != nil {
		c.handleStudyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Study session deleted"})
}

// handleStudyError handles study errors and returns appropriate HTTP responses.
func (c *StudyController) handleStudyError(ctx *gin.Context, err error) {
	var studyErr *domainerror.StudyError
	if errors.As(err, &studyErr) {
		statusCode := http.StatusBadRequest
		if studyErr.Code == domainerror.ErrCodeStudySessionNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: studyErr.Message,
			Code:  string(studyErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
