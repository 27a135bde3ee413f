package disbursement

import (
	"context"
	"fmt"

	"github.com/khazna-app/backend/internal/application/adapter"
	"github.com/khazna-app/backend/internal/domain/entity"
)

// ListSheetsOutput represents the output of listing disbursement sheets.
type ListSheetsOutput struct {
	Sheets []*entity.DisbursementSheet
}

// ListSheetsUseCase handles sheet listing.
type ListSheetsUseCase struct {
	disbursementRepo adapter.DisbursementRepository
}

// NewListSheetsUseCase creates a new ListSheetsUseCase instance.
func NewListSheetsUseCase(disbursementRepo adapter.DisbursementRepository) *ListSheetsUseCase {
	return &ListSheetsUseCase{
		disbursementRepo: disbursementRepo,
	}
}

// Execute retrieves every sheet with its records.
func (uc *ListSheetsUseCase) Execute(ctx context.Context) (*ListSheetsOutput, error) {
	sheets, err := uc.disbursementRepo.FindAllSheets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sheets: %w", err)
	}

	return &ListSheetsOutput{Sheets: sheets}, nil
}
