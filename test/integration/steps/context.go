// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/khazna-app/backend/internal/application/usecase/auth"
	"github.com/khazna-app/backend/internal/application/usecase/budget"
	"github.com/khazna-app/backend/internal/application/usecase/disbursement"
	"github.com/khazna-app/backend/internal/application/usecase/project"
	"github.com/khazna-app/backend/internal/application/usecase/recurring"
	"github.com/khazna-app/backend/internal/application/usecase/report"
	"github.com/khazna-app/backend/internal/application/usecase/settings"
	"github.com/khazna-app/backend/internal/application/usecase/summary"
	"github.com/khazna-app/backend/internal/application/usecase/transaction"
	"github.com/khazna-app/backend/internal/domain/entity"
	"github.com/khazna-app/backend/internal/infra/server/router"
	"github.com/khazna-app/backend/internal/integration/adapters"
	"github.com/khazna-app/backend/internal/integration/cache"
	"github.com/khazna-app/backend/internal/integration/entrypoint/controller"
	"github.com/khazna-app/backend/internal/integration/entrypoint/middleware"
	"github.com/khazna-app/backend/internal/integration/persistence"
	"github.com/khazna-app/backend/test/integration/mock"
)

const (
	testJWTSecret = "integration-test-secret"
	seedUserName  = "مدير الجمعية"
	seedUsername  = "admin"
	seedPassword  = "admin123"
)

// seedPasswordHash is computed once; bcrypt at cost 12 is too slow per scenario.
var seedPasswordHash string

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth
	accessToken string

	// Shared infra
	db *mock.Db
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		os.Setenv("ENV", "test")

		passwordService := adapters.NewPasswordService()
		hash, err := passwordService.Hash(seedPassword)
		if err != nil {
			panic("failed to hash seed password: " + err.Error())
		}
		seedPasswordHash = hash
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			requestHeaders: make(map[string]string),
			db:             mock.NewDb(),
		}

		if err := tc.db.Reset(); err != nil {
			return ctx, fmt.Errorf("failed to reset test database: %w", err)
		}
		if err := mock.ClearRedis(mock.NewRedis()); err != nil {
			return ctx, fmt.Errorf("failed to reset test redis: %w", err)
		}

		if err := tc.seedUser(); err != nil {
			return ctx, err
		}

		tc.engine = buildEngine(tc.db)
		tc.server = httptest.NewServer(tc.engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

// buildEngine wires the full application against the in-memory database. No
// summarization key and no reminder notifier are configured, matching a
// minimal deployment.
func buildEngine(testDB *mock.Db) *gin.Engine {
	gormDB := testDB.DbConn

	userRepo := persistence.NewUserRepository(gormDB)
	settingsRepo := persistence.NewSettingsRepository(gormDB)
	transactionRepo := persistence.NewTransactionRepository(gormDB)
	recurringRepo := persistence.NewRecurringExpenseRepository(gormDB)
	budgetRepo := persistence.NewBudgetRepository(gormDB)
	projectRepo := persistence.NewProjectRepository(gormDB)
	disbursementRepo := persistence.NewDisbursementRepository(gormDB)

	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(testJWTSecret, time.Hour)
	geminiService := adapters.NewGeminiService("")
	summaryCache := cache.NewRedisSummaryCache(mock.NewRedis())

	healthController := controller.NewHealthController(func() bool { return true })
	authController := controller.NewAuthController(
		auth.NewLoginUseCase(userRepo, passwordService, tokenService),
	)
	transactionController := controller.NewTransactionController(
		transaction.NewListTransactionsUseCase(transactionRepo, projectRepo),
		transaction.NewCreateTransactionUseCase(transactionRepo, projectRepo, settingsRepo),
		transaction.NewUpdateTransactionUseCase(transactionRepo, projectRepo, settingsRepo),
		transaction.NewDeleteTransactionUseCase(transactionRepo),
	)
	recurringController := controller.NewRecurringController(
		recurring.NewListRecurringExpensesUseCase(recurringRepo),
		recurring.NewCreateRecurringExpenseUseCase(recurringRepo),
		recurring.NewUpdateRecurringExpenseUseCase(recurringRepo),
		recurring.NewDeleteRecurringExpenseUseCase(recurringRepo),
		recurring.NewRunCatchUpUseCase(recurringRepo, transactionRepo, nil, nil),
	)
	reportController := controller.NewReportController(
		report.NewGetTotalsUseCase(transactionRepo, settingsRepo),
		report.NewGetCategoryBreakdownUseCase(transactionRepo, settingsRepo),
		report.NewGetMonthlyTrendUseCase(transactionRepo, settingsRepo),
		report.NewGetBudgetVsActualUseCase(transactionRepo, budgetRepo, settingsRepo),
	)
	budgetController := controller.NewBudgetController(
		budget.NewListBudgetsUseCase(budgetRepo),
		budget.NewSaveBudgetsUseCase(budgetRepo),
	)
	settingsController := controller.NewSettingsController(
		settings.NewGetSettingsUseCase(settingsRepo),
		settings.NewUpdateSettingsUseCase(settingsRepo),
	)
	projectController := controller.NewProjectController(
		project.NewListProjectsUseCase(projectRepo),
		project.NewCreateProjectUseCase(projectRepo),
		project.NewDeleteProjectUseCase(projectRepo),
	)
	disbursementController := controller.NewDisbursementController(
		disbursement.NewListSheetsUseCase(disbursementRepo),
		disbursement.NewCreateSheetUseCase(disbursementRepo),
		disbursement.NewAddRecordUseCase(disbursementRepo),
		disbursement.NewDeleteSheetUseCase(disbursementRepo),
	)
	summaryController := controller.NewSummaryController(
		summary.NewGenerateSummaryUseCase(transactionRepo, settingsRepo, geminiService, summaryCache),
	)

	r := router.NewRouter(
		healthController,
		authController,
		transactionController,
		recurringController,
		reportController,
		budgetController,
		settingsController,
		projectController,
		disbursementController,
		summaryController,
		middleware.NewRateLimiter(),
		middleware.NewAuthMiddleware(tokenService),
	)
	return r.Setup("test")
}

// seedUser inserts the default admin account used by the auth steps.
func (tc *TestContext) seedUser() error {
	userRepo := persistence.NewUserRepository(tc.db.DbConn)
	user := entity.NewUser(seedUserName, seedUsername, seedPasswordHash, entity.UserRoleAdmin)
	return userRepo.Create(context.Background(), user)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I am authenticated$`, iAmAuthenticated)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response should not contain "([^"]*)"$`, theResponseShouldNotContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

// iAmAuthenticated logs in with the seeded admin account and stores the
// issued token for subsequent requests.
func iAmAuthenticated(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	body := fmt.Sprintf(`{"username":%q,"password":%q}`, seedUsername, seedPassword)
	resp, err := http.Post(tc.server.URL+"/api/v1/auth/login", "application/json", strings.NewReader(body))
	if err != nil {
		return ctx, fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(resp.Body)
		return ctx, fmt.Errorf("login failed with status %d: %s", resp.StatusCode, string(payload))
	}

	var loginResponse struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&loginResponse); err != nil {
		return ctx, fmt.Errorf("failed to decode login response: %w", err)
	}

	tc.accessToken = loginResponse.Token
	return SetTestContext(ctx, tc), nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	return sendRequest(ctx, method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	return sendRequest(ctx, method, endpoint, bytes.NewBufferString(body.Content))
}

func sendRequest(ctx context.Context, method, endpoint string, body io.Reader) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	req, err := http.NewRequest(method, tc.server.URL+endpoint, body)
	if err != nil {
		return ctx, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return ctx, fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return ctx, fmt.Errorf("failed to read response body: %w", err)
	}

	return SetTestContext(ctx, tc), nil
}

func iSetHeaderTo(ctx context.Context, header, value string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return SetTestContext(ctx, tc), nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldNotContain(ctx context.Context, unexpected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if strings.Contains(string(tc.responseBody), unexpected) {
		return fmt.Errorf("response contains '%s'. Body: %s", unexpected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	value, ok := data[field]
	if !ok {
		return fmt.Errorf("field '%s' not found in response", field)
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}

	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	if _, ok := data[field]; !ok {
		return fmt.Errorf("field '%s' not found in response", field)
	}

	return nil
}
