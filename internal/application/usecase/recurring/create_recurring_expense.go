package recurring

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/khazna-app/backend/internal/application/adapter"
	"github.com/khazna-app/backend/internal/domain/entity"
	domainerror "github.com/khazna-app/backend/internal/domain/error"
)

// CreateRecurringExpenseInput represents the input for recurring expense creation.
type CreateRecurringExpenseInput struct {
	Description string
	Amount      decimal.Decimal
	Currency    entity.Currency
	Category    entity.Category
	Frequency   entity.Frequency
	StartDate   time.Time
}

// CreateRecurringExpenseOutput represents the output of recurring expense creation.
type CreateRecurringExpenseOutput struct {
	RecurringExpense *entity.RecurringExpense
}

// CreateRecurringExpenseUseCase handles recurring expense creation logic.
type CreateRecurringExpenseUseCase struct {
	recurringRepo adapter.RecurringExpenseRepository
}

// NewCreateRecurringExpenseUseCase creates a new CreateRecurringExpenseUseCase instance.
func NewCreateRecurringExpenseUseCase(recurringRepo adapter.RecurringExpenseRepository) *CreateRecurringExpenseUseCase {
	return &CreateRecurringExpenseUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute performs the recurring expense creation. The next due date is
// derived from the start date: the first occurrence that is not in the past.
func (uc *CreateRecurringExpenseUseCase) Execute(ctx context.Context, input CreateRecurringExpenseInput) (*CreateRecurringExpenseOutput, error) {
	if err := validateRecurringInput(input.Amount, input.Currency, input.Category, input.Frequency, input.StartDate); err != nil {
		return nil, err
	}

	nextDueDate, err := NextDueDateFrom(input.StartDate, input.Frequency, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	expense := entity.NewRecurringExpense(
		input.Description,
		input.Amount,
		input.Currency,
		input.Category,
		input.Frequency,
		input.StartDate,
		nextDueDate,
	)

	if err := uc.recurringRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create recurring expense: %w", err)
	}

	return &CreateRecurringExpenseOutput{RecurringExpense: expense}, nil
}

// validateRecurringInput validates the shared recurring expense fields.
func validateRecurringInput(
	amount decimal.Decimal,
	currency entity.Currency,
	category entity.Category,
	frequency entity.Frequency,
	startDate time.Time,
) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if currency != entity.CurrencyEGP && currency != entity.CurrencyUSD {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionCurrency,
			"currency must be EGP or USD",
			domainerror.ErrInvalidTransactionCurrency,
		)
	}

	if !entity.IsValidCategory(entity.TransactionTypeExpense, category) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeCategoryMismatch,
			"recurring expenses use expense categories only",
			domainerror.ErrCategoryMismatch,
		)
	}

	if frequency != entity.FrequencyMonthly && frequency != entity.FrequencyYearly {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency must be monthly or yearly",
			domainerror.ErrInvalidFrequency,
		)
	}

	if startDate.IsZero() {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidStartDate,
			"start date is required",
			domainerror.ErrInvalidStartDate,
		)
	}

	return nil
}
