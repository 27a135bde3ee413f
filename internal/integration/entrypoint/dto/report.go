package dto

import (
	"fmt"

	"github.com/khazna-app/backend/internal/application/usecase/report"
)

// TotalsResponse represents the dashboard totals response body.
type TotalsResponse struct {
	TotalRevenue string `json:"total_revenue"`
	TotalExpense string `json:"total_expense"`
	Balance      string `json:"balance"`
}

// CategoryAmountResponse represents one category sum in reports.
type CategoryAmountResponse struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// CategoryBreakdownResponse represents the category breakdown response body.
type CategoryBreakdownResponse struct {
	Categories []CategoryAmountResponse `json:"categories"`
}

// MonthBucketResponse represents one month of the trend series.
type MonthBucketResponse struct {
	Month   string `json:"month"`
	Revenue string `json:"revenue"`
	Expense string `json:"expense"`
}

// MonthlyTrendResponse represents the monthly trend response body.
type MonthlyTrendResponse struct {
	Months []MonthBucketResponse `json:"months"`
}

// BudgetLineResponse represents one row of the budget-vs-actual report.
type BudgetLineResponse struct {
	Category    string `json:"category"`
	Budget      string `json:"budget"`
	Actual      string `json:"actual"`
	Remaining   string `json:"remaining"`
	PercentUsed string `json:"percent_used"`
}

// BudgetVsActualResponse represents the budget-vs-actual response body.
type BudgetVsActualResponse struct {
	Lines []BudgetLineResponse `json:"lines"`
}

// TotalsToResponse converts computed totals to their response shape.
func TotalsToResponse(totals report.Totals) TotalsResponse {
	return TotalsResponse{
		TotalRevenue: totals.TotalRevenue.String(),
		TotalExpense: totals.TotalExpense.String(),
		Balance:      totals.Balance.String(),
	}
}

// CategoryBreakdownToResponse converts category sums to their response shape.
func CategoryBreakdownToResponse(categories []report.CategoryAmount) CategoryBreakdownResponse {
	response := CategoryBreakdownResponse{Categories: make([]CategoryAmountResponse, len(categories))}
	for i, c := range categories {
		response.Categories[i] = CategoryAmountResponse{
			Category: string(c.Category),
			Amount:   c.Amount.String(),
		}
	}
	return response
}

// MonthlyTrendToResponse converts trend buckets to their response shape.
func MonthlyTrendToResponse(months []report.MonthBucket) MonthlyTrendResponse {
	response := MonthlyTrendResponse{Months: make([]MonthBucketResponse, len(months))}
	for i, m := range months {
		response.Months[i] = MonthBucketResponse{
			Month:   fmt.Sprintf("%04d-%02d", m.Year, int(m.Month)),
			Revenue: m.Revenue.String(),
			Expense: m.Expense.String(),
		}
	}
	return response
}

// BudgetVsActualToResponse converts budget lines to their response shape.
func BudgetVsActualToResponse(lines []report.BudgetLine) BudgetVsActualResponse {
	response := BudgetVsActualResponse{Lines: make([]BudgetLineResponse, len(lines))}
	for i, line := range lines {
		response.Lines[i] = BudgetLineResponse{
			Category:    string(line.Category),
			Budget:      line.Budget.String(),
			Actual:      line.Actual.String(),
			Remaining:   line.Remaining.String(),
			PercentUsed: line.PercentUsed.String(),
		}
	}
	return response
}
