package recurring

import (
	"context"
	"fmt"

	"github.com/khazna-app/backend/internal/application/adapter"
	"github.com/khazna-app/backend/internal/domain/entity"
)

// ListRecurringExpensesOutput represents the output of listing recurring expenses.
type ListRecurringExpensesOutput struct {
	RecurringExpenses []*entity.RecurringExpense
}

// ListRecurringExpensesUseCase handles listing recurring expenses.
type ListRecurringExpensesUseCase struct {
	recurringRepo adapter.RecurringExpenseRepository
}

// NewListRecurringExpensesUseCase creates a new ListRecurringExpensesUseCase instance.
func NewListRecurringExpensesUseCase(recurringRepo adapter.RecurringExpenseRepository) *ListRecurringExpensesUseCase {
	return &ListRecurringExpensesUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute retrieves every recurring expense.
func (uc *ListRecurringExpensesUseCase) Execute(ctx context.Context) (*ListRecurringExpensesOutput, error) {
	expenses, err := uc.recurringRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring expenses: %w", err)
	}

	return &ListRecurringExpensesOutput{RecurringExpenses: expenses}, nil
}
