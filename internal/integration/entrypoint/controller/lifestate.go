// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifeos/backend/internal/application/usecase/lifestate"
	"github.com/lifeos/backend/internal/integration/entrypoint/dto"
	"github.com/lifeos/backend/internal/integration/entrypoint/middleware"
)

// LifeStateController handles the composite life state endpoint.
type LifeStateController struct {
	getUseCase *lifestate.GetLifeStateUseCase
}

// NewLifeStateController creates a new life state controller instance.
func NewLifeStateController(getUseCase *lifestate.GetLifeStateUseCase) *LifeStateController {
	return &LifeStateController{getUseCase: getUseCase}
}

// Get handles GET /life-state requests. The score is computed fresh on
// every call from current aggregates.
func (c *LifeStateController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), lifestate.GetLifeStateInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute life state",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLifeStateResponse(output.State))
}
