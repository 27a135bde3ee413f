// Package main is the entry point for the Khazna API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/khazna-app/backend/config"
	"github.com/khazna-app/backend/internal/application/adapter"
	"github.com/khazna-app/backend/internal/application/usecase/auth"
	"github.com/khazna-app/backend/internal/application/usecase/budget"
	"github.com/khazna-app/backend/internal/application/usecase/disbursement"
	"github.com/khazna-app/backend/internal/application/usecase/project"
	"github.com/khazna-app/backend/internal/application/usecase/recurring"
	"github.com/khazna-app/backend/internal/application/usecase/report"
	"github.com/khazna-app/backend/internal/application/usecase/settings"
	"github.com/khazna-app/backend/internal/application/usecase/summary"
	"github.com/khazna-app/backend/internal/application/usecase/transaction"
	"github.com/khazna-app/backend/internal/infra/db"
	"github.com/khazna-app/backend/internal/infra/server/router"
	"github.com/khazna-app/backend/internal/integration/adapters"
	"github.com/khazna-app/backend/internal/integration/cache"
	"github.com/khazna-app/backend/internal/integration/email"
	"github.com/khazna-app/backend/internal/integration/entrypoint/controller"
	"github.com/khazna-app/backend/internal/integration/entrypoint/middleware"
	"github.com/khazna-app/backend/internal/integration/persistence"
	"github.com/khazna-app/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Khazna API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	var database *db.Database
	var dbHealthChecker func() bool

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)
		database = nil
		dbHealthChecker = func() bool { return false }
	} else {
		if err := database.AutoMigrate(
			&model.UserModel{},
			&model.SettingsModel{},
			&model.TransactionModel{},
			&model.RecurringExpenseModel{},
			&model.BudgetModel{},
			&model.ProjectModel{},
			&model.DisbursementSheetModel{},
			&model.DisbursementRecordModel{},
			&model.CatchUpRunModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		dbHealthChecker = database.HealthCheck
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	// Create health controller with database health checker
	healthController := controller.NewHealthController(dbHealthChecker)

	// Create controllers and middleware (only if database is available)
	var authController *controller.AuthController
	var transactionController *controller.TransactionController
	var recurringController *controller.RecurringController
	var reportController *controller.ReportController
	var budgetController *controller.BudgetController
	var settingsController *controller.SettingsController
	var projectController *controller.ProjectController
	var disbursementController *controller.DisbursementController
	var summaryController *controller.SummaryController
	var loginRateLimiter *middleware.RateLimiter
	var authMiddleware *middleware.AuthMiddleware

	if database != nil {
		// Create repositories
		userRepo := persistence.NewUserRepository(database.DB())
		settingsRepo := persistence.NewSettingsRepository(database.DB())
		transactionRepo := persistence.NewTransactionRepository(database.DB())
		recurringRepo := persistence.NewRecurringExpenseRepository(database.DB())
		budgetRepo := persistence.NewBudgetRepository(database.DB())
		projectRepo := persistence.NewProjectRepository(database.DB())
		disbursementRepo := persistence.NewDisbursementRepository(database.DB())
		catchUpRunRepo := persistence.NewCatchUpRunRepository(database.DB())

		// Create adapters/services
		passwordService := adapters.NewPasswordService()
		tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.TokenExpiry)
		geminiService := adapters.NewGeminiService(cfg.Gemini.APIKey)
		reminderNotifier := email.NewResendReminderNotifier(
			cfg.Email.ResendAPIKey,
			cfg.Email.FromName,
			cfg.Email.FromEmail,
			cfg.Email.ToEmail,
		)

		// The summary cache is optional; without Redis every summary request
		// hits the summarization service.
		var summaryCache adapter.SummaryCache
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			slog.Warn("Redis connection failed, summary caching disabled", "error", err)
		} else {
			summaryCache = cache.NewRedisSummaryCache(redisClient)
		}

		// Create use cases
		loginUseCase := auth.NewLoginUseCase(userRepo, passwordService, tokenService)

		listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo, projectRepo)
		createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, projectRepo, settingsRepo)
		updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, projectRepo, settingsRepo)
		deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

		listRecurringUseCase := recurring.NewListRecurringExpensesUseCase(recurringRepo)
		createRecurringUseCase := recurring.NewCreateRecurringExpenseUseCase(recurringRepo)
		updateRecurringUseCase := recurring.NewUpdateRecurringExpenseUseCase(recurringRepo)
		deleteRecurringUseCase := recurring.NewDeleteRecurringExpenseUseCase(recurringRepo)
		runCatchUpUseCase := recurring.NewRunCatchUpUseCase(recurringRepo, transactionRepo, catchUpRunRepo, reminderNotifier)

		getTotalsUseCase := report.NewGetTotalsUseCase(transactionRepo, settingsRepo)
		getBreakdownUseCase := report.NewGetCategoryBreakdownUseCase(transactionRepo, settingsRepo)
		getTrendUseCase := report.NewGetMonthlyTrendUseCase(transactionRepo, settingsRepo)
		getBudgetVsActualUseCase := report.NewGetBudgetVsActualUseCase(transactionRepo, budgetRepo, settingsRepo)

		listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
		saveBudgetsUseCase := budget.NewSaveBudgetsUseCase(budgetRepo)

		getSettingsUseCase := settings.NewGetSettingsUseCase(settingsRepo)
		updateSettingsUseCase := settings.NewUpdateSettingsUseCase(settingsRepo)

		listProjectsUseCase := project.NewListProjectsUseCase(projectRepo)
		createProjectUseCase := project.NewCreateProjectUseCase(projectRepo)
		deleteProjectUseCase := project.NewDeleteProjectUseCase(projectRepo)

		listSheetsUseCase := disbursement.NewListSheetsUseCase(disbursementRepo)
		createSheetUseCase := disbursement.NewCreateSheetUseCase(disbursementRepo)
		addRecordUseCase := disbursement.NewAddRecordUseCase(disbursementRepo)
		deleteSheetUseCase := disbursement.NewDeleteSheetUseCase(disbursementRepo)

		generateSummaryUseCase := summary.NewGenerateSummaryUseCase(transactionRepo, settingsRepo, geminiService, summaryCache)

		// Create controllers
		authController = controller.NewAuthController(loginUseCase)
		transactionController = controller.NewTransactionController(
			listTransactionsUseCase,
			createTransactionUseCase,
			updateTransactionUseCase,
			deleteTransactionUseCase,
		)
		recurringController = controller.NewRecurringController(
			listRecurringUseCase,
			createRecurringUseCase,
			updateRecurringUseCase,
			deleteRecurringUseCase,
			runCatchUpUseCase,
		)
		reportController = controller.NewReportController(
			getTotalsUseCase,
			getBreakdownUseCase,
			getTrendUseCase,
			getBudgetVsActualUseCase,
		)
		budgetController = controller.NewBudgetController(listBudgetsUseCase, saveBudgetsUseCase)
		settingsController = controller.NewSettingsController(getSettingsUseCase, updateSettingsUseCase)
		projectController = controller.NewProjectController(listProjectsUseCase, createProjectUseCase, deleteProjectUseCase)
		disbursementController = controller.NewDisbursementController(
			listSheetsUseCase,
			createSheetUseCase,
			addRecordUseCase,
			deleteSheetUseCase,
		)
		summaryController = controller.NewSummaryController(generateSummaryUseCase)

		// Create middleware
		loginRateLimiter = middleware.NewRateLimiter()
		authMiddleware = middleware.NewAuthMiddleware(tokenService)

		// Advance recurring obligations to today before serving requests.
		// A failed run is logged; the endpoints still work and the next
		// startup retries.
		catchUpCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if _, err := runCatchUpUseCase.Execute(catchUpCtx, recurring.RunCatchUpInput{Today: time.Now().UTC()}); err != nil {
			slog.Error("Startup catch-up run failed", "error", err)
		}
		cancel()

		slog.Info("Application initialized successfully")
	} else {
		slog.Warn("API endpoints not initialized due to missing database connection")
	}

	// Setup router
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
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
