// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lifeos/backend/config"
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
	"github.com/lifeos/backend/internal/integration/persistence/model"
	"github.com/lifeos/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var testJWTConfig = config.JWTConfig{
	Secret:             testJWTSecret,
	AccessTokenExpiry:  15 * time.Minute,
	RefreshTokenExpiry: 7 * 24 * time.Hour,
}

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri           string
	headers       map[string]string
	client        *http.Client
	response      *response
	db            *mock.Db
	serverPort    int
	accessToken   string
	refreshToken  string
	currentUserID uuid.UUID
	currentEmail  string
	taskID        uuid.UUID
	habitID       uuid.UUID
	lastID        uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb(map[string]any{
			"users":             &model.UserModel{},
			"tasks":             &model.TaskModel{},
			"subtasks":          &model.SubtaskModel{},
			"habits":            &model.HabitModel{},
			"habit_completions": &model.HabitCompletionModel{},
			"transactions":      &model.TransactionModel{},
			"budgets":           &model.BudgetModel{},
			"time_entries":      &model.TimeEntryModel{},
			"study_sessions":    &model.StudySessionModel{},
			"goals":             &model.GoalModel{},
			"milestones":        &model.MilestoneModel{},
			"journal_entries":   &model.JournalEntryModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Step(`^the API server is running$`, test.theAPIServerIsRunning)

	// Setup steps
	ctx.Step(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Step(`^the user is logged in$`, test.theUserIsLoggedIn)
	ctx.Step(`^a task exists with title "([^"]*)" in domain "([^"]*)"$`, test.aTaskExistsWithTitleInDomain)
	ctx.Step(`^a habit exists with name "([^"]*)"$`, test.aHabitExistsWithName)

	// Header steps
	ctx.Step(`^the header is empty$`, test.theHeaderIsEmpty)

	// Request steps
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Step(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)

	// Database assertion steps
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.currentEmail = ""
	t.taskID = uuid.Nil
	t.habitID = uuid.Nil
	t.lastID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			taskRepo := persistence.NewTaskRepository(testDB.DbConn)
			habitRepo := persistence.NewHabitRepository(testDB.DbConn)
			transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)
			budgetRepo := persistence.NewBudgetRepository(testDB.DbConn)
			timeEntryRepo := persistence.NewTimeEntryRepository(testDB.DbConn)
			studyRepo := persistence.NewStudySessionRepository(testDB.DbConn)
			goalRepo := persistence.NewGoalRepository(testDB.DbConn)
			journalRepo := persistence.NewJournalRepository(testDB.DbConn)

			// Create adapters/services. The AI config is empty on purpose
			// so every assistant and insight path exercises the local
			// fallbacks deterministically.
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTConfig)
			aiService := adapters.NewGeminiService(config.AIConfig{})
			insightStore := insightcache.NewRedisStore(mock.NewRedis(), time.Hour)
			ruleCfg := insight.RuleConfig{}

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
				return testDB != nil && testDB.DbConn != nil
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
			loginRateLimiter := middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

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
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	userID := uuid.New()
	t.currentUserID = userID
	t.currentEmail = email

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         "Test User",
		PasswordHash: hashPassword(password),
		Timezone:     "UTC",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return t.db.DbConn.Create(user).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

// theUserIsLoggedIn issues a real token pair for the current user.
// Tokens are stateless, so nothing needs to be stored.
func (t *testContext) theUserIsLoggedIn() error {
	tokenService := adapters.NewTokenService(testJWTConfig)
	pair, err := tokenService.GenerateTokenPair(t.currentUserID, t.currentEmail)
	if err != nil {
		return fmt.Errorf("failed to generate token pair: %w", err)
	}

	t.accessToken = pair.AccessToken
	t.refreshToken = pair.RefreshToken
	return nil
}

func (t *testContext) aTaskExistsWithTitleInDomain(title, domain string) error {
	taskID := uuid.New()
	t.taskID = taskID

	now := time.Now().UTC()
	taskModel := &model.TaskModel{
		ID:        taskID,
		UserID:    t.currentUserID,
		Title:     title,
		Domain:    domain,
		Priority:  "medium",
		Status:    "todo",
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(taskModel).Error
}

func (t *testContext) aHabitExistsWithName(name string) error {
	habitID := uuid.New()
	t.habitID = habitID

	now := time.Now().UTC()
	habitModel := &model.HabitModel{
		ID:        habitID,
		UserID:    t.currentUserID,
		Name:      name,
		Frequency: "daily",
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(habitModel).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{task_id}}", t.taskID.String())
	content = strings.ReplaceAll(content, "{{habit_id}}", t.habitID.String())
	content = strings.ReplaceAll(content, "{{id}}", t.lastID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	// Capture the resource ID from creation responses for later steps.
	if idStr, ok := responseBody["id"].(string); ok {
		if id, parseErr := uuid.Parse(idStr); parseErr == nil {
			t.lastID = id
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, count int) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	arr, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not an array: %v", field, value)
	}
	if len(arr) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(arr))
	}
	return nil
}

// theDbShouldContainObjectsInTheTable counts live rows only, so
// soft-deleted records read as gone.
func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	result := t.db.DbConn.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	objectMap, ok := object.(map[string]any)
	if !ok {
		return nil
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
