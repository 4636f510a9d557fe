// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifeos/backend/internal/application/usecase/insight"
	domainerror "github.com/lifeos/backend/internal/domain/error"
	"github.com/lifeos/backend/internal/integration/entrypoint/dto"
	"github.com/lifeos/backend/internal/integration/entrypoint/middleware"
)

// InsightController handles insight and briefing endpoints.
type InsightController struct {
	generateUseCase   *insight.GenerateInsightsUseCase
	generateAIUseCase *insight.GenerateAIInsightsUseCase
	listUseCase       *insight.ListInsightsUseCase
	clearUseCase      *insight.ClearInsightsUseCase
	briefingUseCase   *insight.GetBriefingUseCase
}

// NewInsightController creates a new insight controller instance.
func NewInsightController(
	generateUseCase *insight.GenerateInsightsUseCase,
	generateAIUseCase *insight.GenerateAIInsightsUseCase,
	listUseCase *insight.ListInsightsUseCase,
	clearUseCase *insight.ClearInsightsUseCase,
	briefingUseCase *insight.GetBriefingUseCase,
) *InsightController {
	return &InsightController{
		generateUseCase:   generateUseCase,
		generateAIUseCase: generateAIUseCase,
		listUseCase:       listUseCase,
		clearUseCase:      clearUseCase,
		briefingUseCase:   briefingUseCase,
	}
}

// Generate handles POST /insights/generate requests. The body is
// optional; window_days overrides the configured sprint window.
func (c *InsightController) Generate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.GenerateInsightsRequest
	_ = ctx.ShouldBindJSON(&req)

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), insight.GenerateInsightsInput{
		UserID:     userID,
		WindowDays: req.WindowDays,
	})
	if err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsightListResponse(output.Insights, output.Source))
}

// GenerateAI handles POST /insights/ai requests. On AI failure the
// rule-based generator answers instead, reported through the source
// field.
func (c *InsightController) GenerateAI(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.generateAIUseCase.Execute(ctx.Request.Context(), insight.GenerateAIInsightsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsightListResponse(output.Insights, output.Source))
}

// List handles GET /insights requests, returning the stored list.
func (c *InsightController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), insight.ListInsightsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsightListResponse(output.Insights, ""))
}

// Clear handles DELETE /insights requests.
func (c *InsightController) Clear(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	if err := c.clearUseCase.Execute(ctx.Request.Context(), insight.ClearInsightsInput{
		UserID: userID,
	}); err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Insights cleared"})
}

// Briefing handles GET /insights/briefing requests.
func (c *InsightController) Briefing(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.briefingUseCase.Execute(ctx.Request.Context(), insight.GetBriefingInput{
		UserID: userID,
	})
	if err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BriefingResponse{
		Briefing: output.Briefing,
		Source:   string(output.Source),
	})
}

// handleInsightError handles insight errors and returns appropriate HTTP responses.
func (c *InsightController) handleInsightError(ctx *gin.Context, err error) {
	var insightErr *domainerror.InsightError
	if errors.As(err, &insightErr) {
		statusCode := http.StatusInternalServerError
		switch insightErr.Code {
		case domainerror.ErrCodeEmptyAssistantInput:
			statusCode = http.StatusBadRequest
		case domainerror.ErrCodeInsightStoreUnavailable, domainerror.ErrCodeAIServiceUnavailable:
			statusCode = http.StatusServiceUnavailable
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: insightErr.Message,
			Code:  string(insightErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
