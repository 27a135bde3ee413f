package report

import (
	"context"
	"fmt"

	"github.com/khazna-app/backend/internal/application/adapter"
)

// GetTotalsOutput represents the output of the totals report.
type GetTotalsOutput struct {
	Totals Totals
}

// GetTotalsUseCase computes the dashboard totals over the full transaction
// collection.
type GetTotalsUseCase struct {
	transactionRepo adapter.TransactionRepository
	settingsRepo    adapter.SettingsRepository
}

// NewGetTotalsUseCase creates a new GetTotalsUseCase instance.
func NewGetTotalsUseCase(
	transactionRepo adapter.TransactionRepository,
	settingsRepo adapter.SettingsRepository,
) *GetTotalsUseCase {
	return &GetTotalsUseCase{
		transactionRepo: transactionRepo,
		settingsRepo:    settingsRepo,
	}
}

// Execute loads every transaction and the current exchange rate, then folds
// them into revenue, expense and balance totals.
func (uc *GetTotalsUseCase) Execute(ctx context.Context) (*GetTotalsOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	totals, err := ComputeTotals(transactions, settings.USDToEGPRate)
	if err != nil {
		return nil, err
	}

	return &GetTotalsOutput{Totals: totals}, nil
}
