package dto

import (
	"github.com/khazna-app/backend/internal/domain/entity"
)

// RecurringExpenseRequest represents the request body for creating or
// updating a recurring expense.
type RecurringExpenseRequest struct {
	Description string `json:"description" binding:"required,min=1,max=500"`
	Amount      string `json:"amount" binding:"required"`
	Currency    string `json:"currency" binding:"required,oneof=EGP USD"`
	Category    string `json:"category" binding:"required"`
	Frequency   string `json:"frequency" binding:"required,oneof=MONTHLY YEARLY"`
	StartDate   string `json:"start_date" binding:"required"`
}

// RecurringExpenseResponse represents a recurring expense in API responses.
type RecurringExpenseResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Category    string `json:"category"`
	Frequency   string `json:"frequency"`
	StartDate   string `json:"start_date"`
	NextDueDate string `json:"next_due_date"`
}

// RecurringExpenseListResponse represents the recurring expense list body.
type RecurringExpenseListResponse struct {
	RecurringExpenses []RecurringExpenseResponse `json:"recurring_expenses"`
}

// CatchUpResponse represents the result of a catch-up run.
type CatchUpResponse struct {
	Generated []TransactionResponse      `json:"generated"`
	Upcoming  []RecurringExpenseResponse `json:"upcoming"`
	Failed    int                        `json:"failed"`
}

// RecurringExpenseToResponse converts a recurring expense entity to its
// response shape.
func RecurringExpenseToResponse(expense *entity.RecurringExpense) RecurringExpenseResponse {
	return RecurringExpenseResponse{
		ID:          expense.ID.String(),
		Description: expense.Description,
		Amount:      expense.Amount.String(),
		Currency:    string(expense.Currency),
		Category:    string(expense.Category),
		Frequency:   string(expense.Frequency),
		StartDate:   expense.StartDate.Format("2006-01-02"),
		NextDueDate: expense.NextDueDate.Format("2006-01-02"),
	}
}
