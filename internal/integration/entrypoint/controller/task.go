// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/usecase/task"
	"github.com/lifeos/backend/internal/domain/entity"
	domainerror "github.com/lifeos/backend/internal/domain/error"
	"github.com/lifeos/backend/internal/integration/entrypoint/dto"
	"github.com/lifeos/backend/internal/integration/entrypoint/middleware"
)

// TaskController handles task endpoints.
type TaskController struct {
	createUseCase   *task.CreateTaskUseCase
	listUseCase     *task.ListTasksUseCase
	updateUseCase   *task.UpdateTaskUseCase
	completeUseCase *task.CompleteTaskUseCase
	deleteUseCase   *task.DeleteTaskUseCase
	statsUseCase    *task.GetTaskStatsUseCase
}

// NewTaskController creates a new task controller instance.
func NewTaskController(
	createUseCase *task.CreateTaskUseCase,
	listUseCase *task.ListTasksUseCase,
	updateUseCase *task.UpdateTaskUseCase,
	completeUseCase *task.CompleteTaskUseCase,
	deleteUseCase *task.DeleteTaskUseCase,
	statsUseCase *task.GetTaskStatsUseCase,
) *TaskController {
	return &TaskController{
		createUseCase:   createUseCase,
		listUseCase:     listUseCase,
		updateUseCase:   updateUseCase,
		completeUseCase: completeUseCase,
		deleteUseCase:   deleteUseCase,
		statsUseCase:    statsUseCase,
	}
}

// Create handles POST /tasks requests.
func (c *TaskController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), task.CreateTaskInput{
		UserID:   userID,
		Title:    req.Title,
		Domain:   req.Domain,
		Priority: entity.TaskPriority(req.Priority),
		DueDate:  req.DueDate,
		Subtasks: req.Subtasks,
	})
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTaskResponse(output.Task))
}

// List handles GET /tasks requests. Domain and status come from query
// parameters.
func (c *TaskController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var status *entity.TaskStatus
	if statusStr := ctx.Query("status"); statusStr != "" {
		s := entity.TaskStatus(statusStr)
		status = &s
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), task.ListTasksInput{
		UserID: userID,
		Domain: ctx.Query("domain"),
		Status: status,
	})
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTaskListResponse(output.Tasks))
}

// Update handles PATCH /tasks/:id requests.
func (c *TaskController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid task ID format",
		})
		return
	}

	var req dto.UpdateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := task.UpdateTaskInput{
		ID:      taskID,
		UserID:  userID,
		Title:   req.Title,
		Domain:  req.Domain,
		DueDate: req.DueDate,
	}
	if req.Priority != nil {
		p := entity.TaskPriority(*req.Priority)
		input.Priority = &p
	}
	if req.Status != nil {
		s := entity.TaskStatus(*req.Status)
		input.Status = &s
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTaskResponse(output.Task))
}

// Complete handles POST /tasks/:id/complete requests. Completing an
// already-completed task reopens it.
func (c *TaskController) Complete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid task ID format",
		})
		return
	}

	output, err := c.completeUseCase.Execute(ctx.Request.Context(), task.CompleteTaskInput{
		ID:     taskID,
		UserID: userID,
	})
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTaskResponse(output.Task))
}

// Delete handles DELETE /tasks/:id requests.
func (c *TaskController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid task ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), task.DeleteTaskInput{
		ID:     taskID,
		UserID: userID,
	}); err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Task deleted"})
}

// Stats handles GET /tasks/stats requests.
func (c *TaskController) Stats(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.statsUseCase.Execute(ctx.Request.Context(), task.GetTaskStatsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTaskStatsResponse(output.Stats))
}

// handleTaskError handles task errors and returns appropriate HTTP responses.
func (c *TaskController) handleTaskError(ctx *gin.Context, err error) {
	var taskErr *domainerror.TaskError
	if errors.As(err, &taskErr) {
		statusCode := http.StatusBadRequest
		if taskErr.Code == domainerror.ErrCodeTaskNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: taskErr.Message,
			Code:  string(taskErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// respondUnauthenticated writes the shared missing-identity response.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}
