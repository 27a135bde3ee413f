package disbursement

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/khazna-app/backend/internal/application/adapter"
	domainerror "github.com/khazna-app/backend/internal/domain/error"
)

// DeleteSheetInput represents the input for sheet deletion.
type DeleteSheetInput struct {
	ID uuid.UUID
}

// DeleteSheetUseCase handles sheet deletion logic.
type DeleteSheetUseCase struct {
	disbursementRepo adapter.DisbursementRepository
}

// NewDeleteSheetUseCase creates a new DeleteSheetUseCase instance.
func NewDeleteSheetUseCase(disbursementRepo adapter.DisbursementRepository) *DeleteSheetUseCase {
	return &DeleteSheetUseCase{
		disbursementRepo: disbursementRepo,
	}
}

// Execute deletes a sheet together with its records.
func (uc *DeleteSheetUseCase) Execute(ctx context.Context, input DeleteSheetInput) error {
	if _, err := uc.disbursementRepo.FindSheetByID(ctx, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrSheetNotFound) {
			return domainerror.NewDisbursementError(
				domainerror.ErrCodeSheetNotFound,
				"disbursement sheet not found",
				domainerror.ErrSheetNotFound,
			)
		}
		return fmt.Errorf("failed to find sheet: %w", err)
	}

	if err := uc.disbursementRepo.DeleteSheet(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete sheet: %w", err)
	}

	return nil
}
