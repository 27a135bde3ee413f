// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/khazna-app/backend/internal/integration/entrypoint/controller"
	"github.com/khazna-app/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	authController         *controller.AuthController
	transactionController  *controller.TransactionController
	recurringController    *controller.RecurringController
	reportController       *controller.ReportController
	budgetController       *controller.BudgetController
	settingsController     *controller.SettingsController
	projectController      *controller.ProjectController
	disbursementController *controller.DisbursementController
	summaryController      *controller.SummaryController
	loginRateLimiter       *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	transactionController *controller.TransactionController,
	recurringController *controller.RecurringController,
	reportController *controller.ReportController,
	budgetController *controller.BudgetController,
	settingsController *controller.SettingsController,
	projectController *controller.ProjectController,
	disbursementController *controller.DisbursementController,
	summaryController *controller.SummaryController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		authController:         authController,
		transactionController:  transactionController,
		recurringController:    recurringController,
		reportController:       reportController,
		budgetController:       budgetController,
		settingsController:     settingsController,
		projectController:      projectController,
		disbursementController: disbursementController,
		summaryController:      summaryController,
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
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PUT("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		// Recurring expense routes (require authentication)
		if r.recurringController != nil && r.authMiddleware != nil {
			recurringExpenses := v1.Group("/recurring-expenses")
			recurringExpenses.Use(r.authMiddleware.Authenticate())
			{
				recurringExpenses.GET("", r.recurringController.List)
				recurringExpenses.POST("", r.recurringController.Create)
				recurringExpenses.POST("/catch-up", r.recurringController.RunCatchUp)
				recurringExpenses.PUT("/:id", r.recurringController.Update)
				recurringExpenses.DELETE("/:id", r.recurringController.Delete)
			}
		}

		// Report routes (require authentication)
		if r.reportController != nil && r.authMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate())
			{
				reports.GET("/totals", r.reportController.Totals)
				reports.GET("/category-breakdown", r.reportController.CategoryBreakdown)
				reports.GET("/monthly-trend", r.reportController.MonthlyTrend)
				reports.GET("/budget-vs-actual", r.reportController.BudgetVsActual)
			}
		}

		// Budget routes (require authentication)
		if r.budgetController != nil && r.authMiddleware != nil {
			budgets := v1.Group("/budgets")
			budgets.Use(r.authMiddleware.Authenticate())
			{
				budgets.GET("", r.budgetController.List)
				budgets.PUT("", r.budgetController.Save)
			}
		}

		// Settings routes (require authentication)
		if r.settingsController != nil && r.authMiddleware != nil {
			settings := v1.Group("/settings")
			settings.Use(r.authMiddleware.Authenticate())
			{
				settings.GET("", r.settingsController.Get)
				settings.PUT("", r.settingsController.Update)
			}
		}

		// Project routes (require authentication)
		if r.projectController != nil && r.authMiddleware != nil {
			projects := v1.Group("/projects")
			projects.Use(r.authMiddleware.Authenticate())
			{
				projects.GET("", r.projectController.List)
				projects.POST("", r.projectController.Create)
				projects.DELETE("/:id", r.projectController.Delete)
			}
		}

		// Disbursement sheet routes (require authentication)
		if r.disbursementController != nil && r.authMiddleware != nil {
			sheets := v1.Group("/disbursement-sheets")
			sheets.Use(r.authMiddleware.Authenticate())
			{
				sheets.GET("", r.disbursementController.List)
				sheets.POST("", r.disbursementController.Create)
				sheets.POST("/:id/records", r.disbursementController.AddRecord)
				sheets.DELETE("/:id", r.disbursementController.Delete)
			}
		}

		// Summary route (require authentication)
		if r.summaryController != nil && r.authMiddleware != nil {
			summary := v1.Group("/summary")
			summary.Use(r.authMiddleware.Authenticate())
			{
				summary.GET("", r.summaryController.Get)
			}
		}
	}
}
