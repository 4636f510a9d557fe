// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifeos/backend/internal/application/usecase/assistant"
	domainerror "github.com/lifeos/backend/internal/domain/error"
	"github.com/lifeos/backend/internal/integration/entrypoint/dto"
	"github.com/lifeos/backend/internal/integration/entrypoint/middleware"
)

// AssistantController handles natural language command endpoints.
type AssistantController struct {
	parseUseCase *assistant.ParseIntentUseCase
	askUseCase   *assistant.AskUseCase
}

// NewAssistantController creates a new assistant controller instance.
func NewAssistantController(
	parseUseCase *assistant.ParseIntentUseCase,
	askUseCase *assistant.AskUseCase,
) *AssistantController {
	return &AssistantController{
		parseUseCase: parseUseCase,
		askUseCase:   askUseCase,
	}
}

// Parse handles POST /assistant/parse requests using only the local
// pattern parser.
func (c *AssistantController) Parse(ctx *gin.Context) {
	if _, ok := middleware.GetUserIDFromContext(ctx); !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.AssistantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.parseUseCase.Execute(ctx.Request.Context(), assistant.ParseIntentInput{
		Text: req.Text,
	})
	if err != nil {
		c.handleAssistantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToParsedIntentResponse(output.Intent, ""))
}

// Ask handles POST /assistant/ask requests, preferring the AI parser
// and falling back locally.
func (c *AssistantController) Ask(ctx *gin.Context) {
	if _, ok := middleware.GetUserIDFromContext(ctx); !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.AssistantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.askUseCase.Execute(ctx.Request.Context(), assistant.AskInput{
		Text: req.Text,
	})
	if err != nil {
		c.handleAssistantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToParsedIntentResponse(output.Intent, string(output.Source)))
}

// handleAssistantError handles assistant errors and returns appropriate HTTP responses.
func (c *AssistantController) handleAssistantError(ctx *gin.Context, err error) {
	var insightErr *domainerror.InsightError
	if errors.As(err, &insightErr) {
		statusCode := http.StatusInternalServerError
		if insightErr.Code == domainerror.ErrCodeEmptyAssistantInput {
			statusCode = http.StatusBadRequest
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
