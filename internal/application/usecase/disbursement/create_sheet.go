// Package disbursement contains the aid-disbursement sheet use cases.
package disbursement

import (
	"context"
	"fmt"
	"strings"

	"github.com/khazna-app/backend/internal/application/adapter"
	"github.com/khazna-app/backend/internal/domain/entity"
	domainerror "github.com/khazna-app/backend/internal/domain/error"
)

// CreateSheetInput represents the input for sheet creation.
type CreateSheetInput struct {
	Name string
}

// CreateSheetOutput represents the output of sheet creation.
type CreateSheetOutput struct {
	Sheet *entity.DisbursementSheet
}

// CreateSheetUseCase handles disbursement sheet creation logic.
type CreateSheetUseCase struct {
	disbursementRepo adapter.DisbursementRepository
}

// NewCreateSheetUseCase creates a new CreateSheetUseCase instance.
func NewCreateSheetUseCase(disbursementRepo adapter.DisbursementRepository) *CreateSheetUseCase {
	return &CreateSheetUseCase{
		disbursementRepo: disbursementRepo,
	}
}

// Execute creates a new, empty disbursement sheet.
func (uc *CreateSheetUseCase) Execute(ctx context.Context, input CreateSheetInput) (*CreateSheetOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewDisbursementError(
			domainerror.ErrCodeEmptySheetName,
			"sheet name is required",
			domainerror.ErrEmptySheetName,
		)
	}

	sheet := entity.NewDisbursementSheet(input.Name)
	if err := uc.disbursementRepo.CreateSheet(ctx, sheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	return &CreateSheetOutput{Sheet: sheet}, nil
}
