package disbursement

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

// AddRecordInput represents the input for appending a beneficiary record.
type AddRecordInput struct {
	SheetID          uuid.UUID
	Name             string
	NationalID       string
	Phone            string
	DisbursementDate time.Time
	Method           entity.DisbursementMethod
	Amount           decimal.Decimal
	Currency         entity.Currency
}

// AddRecordOutput represents the output of appending a record.
type AddRecordOutput struct {
	Record *entity.DisbursementRecord
}

// AddRecordUseCase handles appending beneficiary records to a sheet.
type AddRecordUseCase struct {
	disbursementRepo adapter.DisbursementRepository
}

// NewAddRecordUseCase creates a new AddRecordUseCase instance.
func NewAddRecordUseCase(disbursementRepo adapter.DisbursementRepository) *AddRecordUseCase {
	return &AddRecordUseCase{
		disbursementRepo: disbursementRepo,
	}
}

func validMethod(method entity.DisbursementMethod) bool {
	switch method {
	case entity.DisbursementMethodCash, entity.DisbursementMethodBankTransfer, entity.DisbursementMethodInKind:
		return true
	}
	return false
}

// Execute appends a record to the end of the sheet, keeping insertion order.
func (uc *AddRecordUseCase) Execute(ctx context.Context, input AddRecordInput) (*AddRecordOutput, error) {
	if !validMethod(input.Method) {
		return nil, domainerror.NewDisbursementError(
			domainerror.ErrCodeInvalidDisbursementMethod,
			fmt.Sprintf("invalid disbursement method: %s", input.Method),
			domainerror.ErrInvalidDisbursementMethod,
		)
	}

	sheet, err := uc.disbursementRepo.FindSheetByID(ctx, input.SheetID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSheetNotFound) {
			return nil, domainerror.NewDisbursementError(
				domainerror.ErrCodeSheetNotFound,
				"disbursement sheet not found",
				domainerror.ErrSheetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find sheet: %w", err)
	}

	record := entity.NewDisbursementRecord(
		sheet.ID,
		input.Name,
		input.NationalID,
		input.Phone,
		input.DisbursementDate,
		input.Method,
		input.Amount,
		input.Currency,
		len(sheet.Records),
	)
	if err := uc.disbursementRepo.AddRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to add record: %w", err)
	}

	return &AddRecordOutput{Record: record}, nil
}
