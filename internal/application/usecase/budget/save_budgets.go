// Package budget contains the per-category budget use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/khazna-app/backend/internal/application/adapter"
	"github.com/khazna-app/backend/internal/domain/entity"
	domainerror "github.com/khazna-app/backend/internal/domain/error"
)

// BudgetItem is one category's budget in a save request.
type BudgetItem struct {
	Category entity.Category
	Amount   decimal.Decimal
}

// SaveBudgetsInput represents the input for a budget save. The items replace
// the whole budget set; a category missing from the list loses its budget.
type SaveBudgetsInput struct {
	Items []BudgetItem
}

// SaveBudgetsOutput represents the output of a budget save.
type SaveBudgetsOutput struct {
	Budgets []*entity.Budget
}

// SaveBudgetsUseCase handles budget save logic.
type SaveBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewSaveBudgetsUseCase creates a new SaveBudgetsUseCase instance.
func NewSaveBudgetsUseCase(budgetRepo adapter.BudgetRepository) *SaveBudgetsUseCase {
	return &SaveBudgetsUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute validates and replaces the full budget set.
func (uc *SaveBudgetsUseCase) Execute(ctx context.Context, input SaveBudgetsInput) (*SaveBudgetsOutput, error) {
	seen := make(map[entity.Category]bool, len(input.Items))
	budgets := make([]*entity.Budget, 0, len(input.Items))

	for _, item := range input.Items {
		if !entity.IsValidCategory(entity.TransactionTypeExpense, item.Category) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetCategory,
				fmt.Sprintf("category %q is not an expense category", item.Category),
				domainerror.ErrInvalidBudgetCategory,
			)
		}
		if item.Amount.IsNegative() {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetAmount,
				fmt.Sprintf("budget for %q must not be negative: %s", item.Category, item.Amount),
				domainerror.ErrInvalidBudgetAmount,
			)
		}
		if seen[item.Category] {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeDuplicateBudgetCategory,
				fmt.Sprintf("category %q appears more than once", item.Category),
				domainerror.ErrDuplicateBudgetCategory,
			)
		}
		seen[item.Category] = true
		budgets = append(budgets, entity.NewBudget(item.Category, item.Amount))
	}

	if err := uc.budgetRepo.ReplaceAll(ctx, budgets); err != nil {
		return nil, fmt.Errorf("failed to save budgets: %w", err)
	}

	return &SaveBudgetsOutput{Budgets: budgets}, nil
}
