package recurring

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/khazna-app/backend/internal/application/adapter"
	domainerror "github.com/khazna-app/backend/internal/domain/error"
)

// DeleteRecurringExpenseInput represents the input for recurring expense deletion.
type DeleteRecurringExpenseInput struct {
	ID uuid.UUID
}

// DeleteRecurringExpenseUseCase handles recurring expense deletion logic.
type DeleteRecurringExpenseUseCase struct {
	recurringRepo adapter.RecurringExpenseRepository
}

// NewDeleteRecurringExpenseUseCase creates a new DeleteRecurringExpenseUseCase instance.
func NewDeleteRecurringExpenseUseCase(recurringRepo adapter.RecurringExpenseRepository) *DeleteRecurringExpenseUseCase {
	return &DeleteRecurringExpenseUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute performs the recurring expense deletion. Transactions already
// materialized from the expense are kept.
func (uc *DeleteRecurringExpenseUseCase) Execute(ctx context.Context, input DeleteRecurringExpenseInput) error {
	if _, err := uc.recurringRepo.FindByID(ctx, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrRecurringExpenseNotFound) {
			return domainerror.NewRecurringError(
				domainerror.ErrCodeRecurringExpenseNotFound,
				"recurring expense not found",
				domainerror.ErrRecurringExpenseNotFound,
			)
		}
		return fmt.Errorf("failed to find recurring expense: %w", err)
	}

	if err := uc.recurringRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete recurring expense: %w", err)
	}

	return nil
}
