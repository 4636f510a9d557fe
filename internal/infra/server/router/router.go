// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/lifeos/backend/internal/integration/entrypoint/controller"
	"github.com/lifeos/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	authController         *controller.AuthController
	taskController         *controller.TaskController
	habitController        *controller.HabitController
	financeController      *controller.FinanceController
	timeTrackingController *controller.TimeTrackingController
	studyController        *controller.StudyController
	goalController         *controller.GoalController
	journalController      *controller.JournalController
	lifeStateController    *controller.LifeStateController
	insightController      *controller.InsightController
	assistantController    *controller.AssistantController
	loginRateLimiter       *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	taskController *controller.TaskController,
	habitController *controller.HabitController,
	financeController *controller.FinanceController,
	timeTrackingController *controller.TimeTrackingController,
	studyController *controller.StudyController,
	goalController *controller.GoalController,
	journalController *controller.JournalController,
	lifeStateController *controller.LifeStateController,
	insightController *controller.InsightController,
	assistantController *controller.AssistantController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		authController:         authController,
		taskController:         taskController,
		habitController:        habitController,
		financeController:      financeController,
		timeTrackingController: timeTrackingController,
		studyController:        studyController,
		goalController:         goalController,
		journalController:      journalController,
		lifeStateController:    lifeStateController,
		insightController:      insightController,
		assistantController:    assistantController,
		loginRateLimiter:       loginRateLimiter,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
			}
		}

		// Task routes (require authentication)
		if r.taskController != nil && r.authMiddleware != nil {
			tasks := v1.Group("/tasks")
			tasks.Use(r.authMiddleware.Authenticate())
			{
				tasks.GET("", r.taskController.List)
				tasks.POST("", r.taskController.Create)
				tasks.GET("/stats", r.taskController.Stats)
				tasks.PATCH("/:id", r.taskController.Update)
				tasks.POST("/:id/complete", r.taskController.Complete)
				tasks.DELETE("/:id", r.taskController.Delete)
			}
		}

		// Habit routes (require authentication)
		if r.habitController != nil && r.authMiddleware != nil {
			habits := v1.Group("/habits")
			habits.Use(r.authMiddleware.Authenticate())
			{
				habits.GET("", r.habitController.List)
				habits.POST("", r.habitController.Create)
				habits.POST("/:id/toggle", r.habitController.Toggle)
				habits.DELETE("/:id", r.habitController.Delete)
			}
		}

		// Transaction, budget and finance stats routes (require authentication)
		if r.financeController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.financeController.ListTransactions)
				transactions.POST("", r.financeController.CreateTransaction)
				transactions.DELETE("/:id", r.financeController.DeleteTransaction)
			}

			finance := v1.Group("/finance")
			finance.Use(r.authMiddleware.Authenticate())
			{
				finance.GET("/stats", r.financeController.Stats)
			}

			budgets := v1.Group("/budgets")
			budgets.Use(r.authMiddleware.Authenticate())
			{
				budgets.GET("", r.financeController.ListBudgets)
				budgets.POST("", r.financeController.UpsertBudget)
				budgets.DELETE("/:id", r.financeController.DeleteBudget)
			}
		}

		// Time entry routes (require authentication)
		if r.timeTrackingController != nil && r.authMiddleware != nil {
			timeEntries := v1.Group("/time-entries")
			timeEntries.Use(r.authMiddleware.Authenticate())
			{
				timeEntries.GET("", r.timeTrackingController.List)
				timeEntries.POST("", r.timeTrackingController.Create)
				timeEntries.GET("/stats", r.timeTrackingController.Stats)
				timeEntries.DELETE("/:id", r.timeTrackingController.Delete)
			}
		}

		// Study session routes (require authentication)
		if r.studyController != nil && r.authMiddleware != nil {
			studySessions := v1.Group("/study-sessions")
			studySessions.Use(r.authMiddleware.Authenticate())
			{
				studySessions.GET("", r.studyController.List)
				studySessions.POST("", r.studyController.Create)
				studySessions.DELETE("/:id", r.studyController.Delete)
			}
		}

		// Goal routes (require authentication)
		if r.goalController != nil && r.authMiddleware != nil {
			goals := v1.Group("/goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.PATCH("/:id", r.goalController.Update)
				goals.POST("/:id/milestones/:milestoneId/toggle", r.goalController.ToggleMilestone)
				goals.DELETE("/:id", r.goalController.Delete)
			}
		}

		// Journal routes (require authentication)
		if r.journalController != nil && r.authMiddleware != nil {
			journal := v1.Group("/journal")
			journal.Use(r.authMiddleware.Authenticate())
			{
				journal.GET("", r.journalController.List)
				journal.POST("", r.journalController.Create)
				journal.DELETE("/:id", r.journalController.Delete)
			}
		}

		// Life state route (requires authentication)
		if r.lifeStateController != nil && r.authMiddleware != nil {
			lifeState := v1.Group("/life-state")
			lifeState.Use(r.authMiddleware.Authenticate())
			{
				lifeState.GET("", r.lifeStateController.Get)
			}
		}

		// Insight routes (require authentication)
		if r.insightController != nil && r.authMiddleware != nil {
			insights := v1.Group("/insights")
			insights.Use(r.authMiddleware.Authenticate())
			{
				insights.GET("", r.insightController.List)
				insights.POST("/generate", r.insightController.Generate)
				insights.POST("/ai", r.insightController.GenerateAI)
				insights.GET("/briefing", r.insightController.Briefing)
				insights.DELETE("", r.insightController.Clear)
			}
		}

		// Assistant routes (require authentication)
		if r.assistantController != nil && r.authMiddleware != nil {
			assistant := v1.Group("/assistant")
			assistant.Use(r.authMiddleware.Authenticate())
			{
				assistant.POST("/parse", r.assistantController.Parse)
				assistant.POST("/ask", r.assistantController.Ask)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
