package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/khazna-app/backend/internal/application/usecase/report"
	"github.com/khazna-app/backend/internal/domain/entity"
	domainerror "github.com/khazna-app/backend/internal/domain/error"
	"github.com/khazna-app/backend/internal/integration/entrypoint/dto"
)

// ReportController handles dashboard report endpoints.
type ReportController struct {
	totalsUseCase         *report.GetTotalsUseCase
	breakdownUseCase      *report.GetCategoryBreakdownUseCase
	trendUseCase          *report.GetMonthlyTrendUseCase
	budgetVsActualUseCase *report.GetBudgetVsActualUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	totalsUseCase *report.GetTotalsUseCase,
	breakdownUseCase *report.GetCategoryBreakdownUseCase,
	trendUseCase *report.GetMonthlyTrendUseCase,
	budgetVsActualUseCase *report.GetBudgetVsActualUseCase,
) *ReportController {
	return &ReportController{
		totalsUseCase:         totalsUseCase,
		breakdownUseCase:      breakdownUseCase,
		trendUseCase:          trendUseCase,
		budgetVsActualUseCase: budgetVsActualUseCase,
	}
}

// Totals handles GET /reports/totals requests.
func (c *ReportController) Totals(ctx *gin.Context) {
	output, err := c.totalsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.TotalsToResponse(output.Totals))
}

// CategoryBreakdown handles GET /reports/category-breakdown requests. The
// type query parameter selects revenue or expense; expense is the default.
func (c *ReportController) CategoryBreakdown(ctx *gin.Context) {
	txnType := entity.TransactionTypeExpense
	if typeStr := ctx.Query("type"); typeStr != "" {
		txnType = entity.TransactionType(typeStr)
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), report.GetCategoryBreakdownInput{
		Type: txnType,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CategoryBreakdownToResponse(output.Categories))
}

// MonthlyTrend handles GET /reports/monthly-trend requests.
func (c *ReportController) MonthlyTrend(ctx *gin.Context) {
	monthCount := 0
	if monthsStr := ctx.Query("months"); monthsStr != "" {
		parsed, err := strconv.Atoi(monthsStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid months parameter",
			})
			return
		}
		monthCount = parsed
	}

	output, err := c.trendUseCase.Execute(ctx.Request.Context(), report.GetMonthlyTrendInput{
		MonthCount: monthCount,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MonthlyTrendToResponse(output.Months))
}

// BudgetVsActual handles GET /reports/budget-vs-actual requests. Without
// startDate and endDate the report covers the current calendar month.
func (c *ReportController) BudgetVsActual(ctx *gin.Context) {
	var input report.GetBudgetVsActualInput

	if startDateStr := ctx.Query("startDate"); startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format. Use YYYY-MM-DD",
			})
			return
		}
		input.PeriodStart = startDate
	}
	if endDateStr := ctx.Query("endDate"); endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format. Use YYYY-MM-DD",
			})
			return
		}
		input.PeriodEnd = endDate
	}

	output, err := c.budgetVsActualUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.BudgetVsActualToResponse(output.Lines))
}

// handleReportError maps domain errors to HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var rptErr *domainerror.ReportError
	if errors.As(err, &rptErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: rptErr.Message,
			Code:  string(rptErr.Code),
		})
		return
	}

	var curErr *domainerror.CurrencyError
	if errors.As(err, &curErr) {
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error: curErr.Message,
			Code:  string(curErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Failed to compute report",
	})
}
