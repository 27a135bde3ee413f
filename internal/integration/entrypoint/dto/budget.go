package dto

import (
	"github.com/khazna-app/backend/internal/domain/entity"
)

// BudgetItemRequest represents one category budget in a save request.
type BudgetItemRequest struct {
	Category string `json:"category" binding:"required"`
	Amount   string `json:"amount" binding:"required"`
}

// SaveBudgetsRequest represents the request body for a budget save. The
// items replace the full set.
type SaveBudgetsRequest struct {
	Budgets []BudgetItemRequest `json:"budgets"`
}

// BudgetResponse represents a budget in API responses.
type BudgetResponse struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// BudgetListResponse represents the budget list response body.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// BudgetsToResponse converts budget entities to their response shape.
func BudgetsToResponse(budgets []*entity.Budget) BudgetListResponse {
	response := BudgetListResponse{Budgets: make([]BudgetResponse, len(budgets))}
	for i, b := range budgets {
		response.Budgets[i] = BudgetResponse{
			Category: string(b.Category),
			Amount:   b.Amount.String(),
		}
	}
	return response
}
