package report

import (
	"context"
	"fmt"
	"time"

	"github.com/khazna-app/backend/internal/application/adapter"
	domainerror "github.com/khazna-app/backend/internal/domain/error"
)

// GetBudgetVsActualInput represents the input for the budget-vs-actual
// report. Zero dates fall back to the current calendar month.
type GetBudgetVsActualInput struct {
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// GetBudgetVsActualOutput represents the output of the budget-vs-actual
// report.
type GetBudgetVsActualOutput struct {
	Lines []BudgetLine
}

// GetBudgetVsActualUseCase compares budgeted and actual spending per expense
// category.
type GetBudgetVsActualUseCase struct {
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
	settingsRepo    adapter.SettingsRepository
}

// NewGetBudgetVsActualUseCase creates a new GetBudgetVsActualUseCase instance.
func NewGetBudgetVsActualUseCase(
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
	settingsRepo adapter.SettingsRepository,
) *GetBudgetVsActualUseCase {
	return &GetBudgetVsActualUseCase{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		settingsRepo:    settingsRepo,
	}
}

// Execute computes the budget-vs-actual rows for the requested period.
func (uc *GetBudgetVsActualUseCase) Execute(ctx context.Context, input GetBudgetVsActualInput) (*GetBudgetVsActualOutput, error) {
	periodStart, periodEnd := input.PeriodStart, input.PeriodEnd
	if periodStart.IsZero() && periodEnd.IsZero() {
		now := time.Now().UTC()
		periodStart = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		periodEnd = periodStart.AddDate(0, 1, -1)
	}
	if periodEnd.Before(periodStart) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidPeriod,
			"period end precedes period start",
			domainerror.ErrInvalidPeriod,
		)
	}

	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	budgets, err := uc.budgetRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	lines, err := ComputeBudgetVsActual(transactions, budgets, settings.USDToEGPRate, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}

	return &GetBudgetVsActualOutput{Lines: lines}, nil
}
