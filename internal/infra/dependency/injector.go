// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/lifeos/backend/config"
	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/application/usecase/assistant"
	"github.com/lifeos/backend/internal/application/usecase/auth"
	"github.com/lifeos/backend/internal/application/usecase/finance"
	"github.com/lifeos/backend/internal/application/usecase/goal"
	"github.com/lifeos/backend/internal/application/usecase/habit"
	"github.com/lifeos/backend/internal/application/usecase/insight"
	"github.com/lifeos/backend/internal/application/usecase/journal"
	"github.com/lifeos/backend/internal/application/usecase/lifestate"
	"github.com/lifeos/backend/internal/application/usecase/study"
	"github.com/lifeos/backend/internal/application/usecase/task"
	"github.com/lifeos/backend/internal/application/usecase/timetracking"
	"github.com/lifeos/backend/internal/infra/server/router"
	"github.com/lifeos/backend/internal/integration/adapters"
	"github.com/lifeos/backend/internal/integration/entrypoint/controller"
	"github.com/lifeos/backend/internal/integration/entrypoint/middleware"
	"github.com/lifeos/backend/internal/integration/insightcache"
	"github.com/lifeos/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	taskRepo := persistence.NewTaskRepository(db)
	habitRepo := persistence.NewHabitRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	timeEntryRepo := persistence.NewTimeEntryRepository(db)
	studyRepo := persistence.NewStudySessionRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	journalRepo := persistence.NewJournalRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT)
	aiService := adapters.NewGeminiService(cfg.AI)
	insightStore := newInsightStore(cfg)

	ruleCfg := insight.RuleConfig{SprintWindowDays: cfg.Insight.SprintWindowDays}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(userRepo, tokenService)

	// Create task use cases
	createTaskUseCase := task.NewCreateTaskUseCase(taskRepo)
	listTasksUseCase := task.NewListTasksUseCase(taskRepo)
	updateTaskUseCase := task.NewUpdateTaskUseCase(taskRepo)
	completeTaskUseCase := task.NewCompleteTaskUseCase(taskRepo)
	deleteTaskUseCase := task.NewDeleteTaskUseCase(taskRepo)
	taskStatsUseCase := task.NewGetTaskStatsUseCase(taskRepo)

	// Create habit use cases
	createHabitUseCase := habit.NewCreateHabitUseCase(habitRepo)
	listHabitsUseCase := habit.NewListHabitsUseCase(habitRepo)
	toggleCompletionUseCase := habit.NewToggleCompletionUseCase(habitRepo)
	deleteHabitUseCase := habit.NewDeleteHabitUseCase(habitRepo)

	// Create finance use cases
	createTransactionUseCase := finance.NewCreateTransactionUseCase(transactionRepo)
	listTransactionsUseCase := finance.NewListTransactionsUseCase(transactionRepo)
	deleteTransactionUseCase := finance.NewDeleteTransactionUseCase(transactionRepo)
	financeStatsUseCase := finance.NewGetFinanceStatsUseCase(transactionRepo)
	upsertBudgetUseCase := finance.NewUpsertBudgetUseCase(budgetRepo)
	listBudgetStatusUseCase := finance.NewListBudgetStatusUseCase(budgetRepo, transactionRepo)
	deleteBudgetUseCase := finance.NewDeleteBudgetUseCase(budgetRepo)

	// Create time tracking use cases
	createTimeEntryUseCase := timetracking.NewCreateTimeEntryUseCase(timeEntryRepo)
	listTimeEntriesUseCase := timetracking.NewListTimeEntriesUseCase(timeEntryRepo)
	timeStatsUseCase := timetracking.NewGetTimeStatsUseCase(timeEntryRepo)
	deleteTimeEntryUseCase := timetracking.NewDeleteTimeEntryUseCase(timeEntryRepo)

	// Create study use cases
	createStudySessionUseCase := study.NewCreateStudySessionUseCase(studyRepo)
	listStudySessionsUseCase := study.NewListStudySessionsUseCase(studyRepo)
	deleteStudySessionUseCase := study.NewDeleteStudySessionUseCase(studyRepo)

	// Create goal use cases
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	toggleMilestoneUseCase := goal.NewToggleMilestoneUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)

	// Create journal use cases
	createJournalEntryUseCase := journal.NewCreateJournalEntryUseCase(journalRepo)
	listJournalEntriesUseCase := journal.NewListJournalEntriesUseCase(journalRepo)
	deleteJournalEntryUseCase := journal.NewDeleteJournalEntryUseCase(journalRepo)

	// Create life state use case
	getLifeStateUseCase := lifestate.NewGetLifeStateUseCase(taskRepo, habitRepo, transactionRepo, journalRepo)

	// Create insight use cases
	generateInsightsUseCase := insight.NewGenerateInsightsUseCase(
		taskRepo, habitRepo, transactionRepo, goalRepo, journalRepo, timeEntryRepo,
		insightStore, ruleCfg,
	)
	generateAIInsightsUseCase := insight.NewGenerateAIInsightsUseCase(
		taskRepo, habitRepo, transactionRepo, goalRepo, journalRepo, timeEntryRepo,
		aiService, insightStore, ruleCfg,
	)
	listInsightsUseCase := insight.NewListInsightsUseCase(insightStore)
	clearInsightsUseCase := insight.NewClearInsightsUseCase(insightStore)
	getBriefingUseCase := insight.NewGetBriefingUseCase(
		taskRepo, habitRepo, transactionRepo, goalRepo, journalRepo, timeEntryRepo,
		aiService,
	)

	// Create assistant use cases
	parseIntentUseCase := assistant.NewParseIntentUseCase()
	askUseCase := assistant.NewAskUseCase(aiService)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(registerUseCase, loginUseCase, refreshTokenUseCase)

	taskController := controller.NewTaskController(
		createTaskUseCase,
		listTasksUseCase,
		updateTaskUseCase,
		completeTaskUseCase,
		deleteTaskUseCase,
		taskStatsUseCase,
	)

	habitController := controller.NewHabitController(
		createHabitUseCase,
		listHabitsUseCase,
		toggleCompletionUseCase,
		deleteHabitUseCase,
	)

	financeController := controller.NewFinanceController(
		createTransactionUseCase,
		listTransactionsUseCase,
		deleteTransactionUseCase,
		financeStatsUseCase,
		upsertBudgetUseCase,
		listBudgetStatusUseCase,
		deleteBudgetUseCase,
	)

	timeTrackingController := controller.NewTimeTrackingController(
		createTimeEntryUseCase,
		listTimeEntriesUseCase,
		timeStatsUseCase,
		deleteTimeEntryUseCase,
	)

	studyController := controller.NewStudyController(
		createStudySessionUseCase,
		listStudySessionsUseCase,
		deleteStudySessionUseCase,
	)

	goalController := controller.NewGoalController(
		createGoalUseCase,
		listGoalsUseCase,
		updateGoalUseCase,
		toggleMilestoneUseCase,
		deleteGoalUseCase,
	)

	journalController := controller.NewJournalController(
		createJournalEntryUseCase,
		listJournalEntriesUseCase,
		deleteJournalEntryUseCase,
	)

	lifeStateController := controller.NewLifeStateController(getLifeStateUseCase)

	insightController := controller.NewInsightController(
		generateInsightsUseCase,
		generateAIInsightsUseCase,
		listInsightsUseCase,
		clearInsightsUseCase,
		getBriefingUseCase,
	)

	assistantController := controller.NewAssistantController(parseIntentUseCase, askUseCase)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		taskController,
		habitController,
		financeController,
		timeTrackingController,
		studyController,
		goalController,
		journalController,
		lifeStateController,
		insightController,
		assistantController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}

// newInsightStore picks Redis when configured and falls back to the
// in-process store otherwise.
func newInsightStore(cfg *config.Config) adapter.InsightStore {
	if cfg.Redis.URL == "" {
		slog.Info("Redis not configured, using in-memory insight store")
		return insightcache.NewMemoryStore()
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.Warn("Invalid Redis URL, using in-memory insight store", "error", err)
		return insightcache.NewMemoryStore()
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}

	return insightcache.NewRedisStore(redis.NewClient(opts), cfg.Insight.TTL)
}
