package recurring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khazna-app/backend/internal/application/adapter"
	"github.com/khazna-app/backend/internal/domain/entity"
	domainerror "github.com/khazna-app/backend/internal/domain/error"
)

// UpdateRecurringExpenseInput represents the input for recurring expense update.
type UpdateRecurringExpenseInput struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal
	Currency    entity.Currency
	Category    entity.Category
	Frequency   entity.Frequency
	StartDate   time.Time
}

// UpdateRecurringExpenseOutput represents the output of recurring expense update.
type UpdateRecurringExpenseOutput struct {
	RecurringExpense *entity.RecurringExpense
}

// UpdateRecurringExpenseUseCase handles recurring expense update logic.
type UpdateRecurringExpenseUseCase struct {
	recurringRepo adapter.RecurringExpenseRepository
}

// NewUpdateRecurringExpenseUseCase creates a new UpdateRecurringExpenseUseCase instance.
func NewUpdateRecurringExpenseUseCase(recurringRepo adapter.RecurringExpenseRepository) *UpdateRecurringExpenseUseCase {
	return &UpdateRecurringExpenseUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute performs the recurring expense update. Editing the schedule
// recomputes the next due date from the new anchor; the recomputed date is by
// construction never in the past, so the due date cannot regress below any
// already-materialized occurrence.
func (uc *UpdateRecurringExpenseUseCase) Execute(ctx context.Context, input UpdateRecurringExpenseInput) (*UpdateRecurringExpenseOutput, error) {
	expense, err := uc.recurringRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecurringExpenseNotFound) {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeRecurringExpenseNotFound,
				"recurring expense not found",
				domainerror.ErrRecurringExpenseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find recurring expense: %w", err)
	}

	if err := validateRecurringInput(input.Amount, input.Currency, input.Category, input.Frequency, input.StartDate); err != nil {
		return nil, err
	}

	nextDueDate, err := NextDueDateFrom(input.StartDate, input.Frequency, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	expense.Description = input.Description
	expense.Amount = input.Amount
	expense.Currency = input.Currency
	expense.Category = input.Category
	expense.Frequency = input.Frequency
	expense.StartDate = entity.DateOnly(input.StartDate)
	expense.NextDueDate = nextDueDate
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.recurringRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update recurring expense: %w", err)
	}

	return &UpdateRecurringExpenseOutput{RecurringExpense: expense}, nil
}
