package report

import (
	"context"
	"fmt"

	"github.com/khazna-app/backend/internal/application/adapter"
	"github.com/khazna-app/backend/internal/domain/entity"
	domainerror "github.com/khazna-app/backend/internal/domain/error"
)

// GetCategoryBreakdownInput represents the input for the category breakdown
// report.
type GetCategoryBreakdownInput struct {
	Type entity.TransactionType
}

// GetCategoryBreakdownOutput represents the output of the category breakdown
// report.
type GetCategoryBreakdownOutput struct {
	Categories []CategoryAmount
}

// GetCategoryBreakdownUseCase groups transactions of one type by category.
type GetCategoryBreakdownUseCase struct {
	transactionRepo adapter.TransactionRepository
	settingsRepo    adapter.SettingsRepository
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(
	transactionRepo adapter.TransactionRepository,
	settingsRepo adapter.SettingsRepository,
) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		transactionRepo: transactionRepo,
		settingsRepo:    settingsRepo,
	}
}

// Execute computes per-category sums for the requested transaction type.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input GetCategoryBreakdownInput) (*GetCategoryBreakdownOutput, error) {
	if input.Type != entity.TransactionTypeRevenue && input.Type != entity.TransactionTypeExpense {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportType,
			fmt.Sprintf("invalid transaction type: %s", input.Type),
			domainerror.ErrInvalidTransactionType,
		)
	}

	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	categories, err := ComputeByCategory(transactions, settings.USDToEGPRate, input.Type)
	if err != nil {
		return nil, err
	}

	return &GetCategoryBreakdownOutput{Categories: categories}, nil
}
