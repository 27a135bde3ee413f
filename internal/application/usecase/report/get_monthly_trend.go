package report

import (
	"context"
	"fmt"
	"time"

	"github.com/khazna-app/backend/internal/application/adapter"
	domainerror "github.com/khazna-app/backend/internal/domain/error"
)

// DefaultTrendMonths is the dashboard's default trend window.
const DefaultTrendMonths = 6

// GetMonthlyTrendInput represents the input for the monthly trend report.
// A zero MonthCount falls back to DefaultTrendMonths; a zero ReferenceDate
// falls back to the current day.
type GetMonthlyTrendInput struct {
	MonthCount    int
	ReferenceDate time.Time
}

// GetMonthlyTrendOutput represents the output of the monthly trend report.
type GetMonthlyTrendOutput struct {
	Months []MonthBucket
}

// GetMonthlyTrendUseCase computes the revenue/expense series of the trailing
// months.
type GetMonthlyTrendUseCase struct {
	transactionRepo adapter.TransactionRepository
	settingsRepo    adapter.SettingsRepository
}

// NewGetMonthlyTrendUseCase creates a new GetMonthlyTrendUseCase instance.
func NewGetMonthlyTrendUseCase(
	transactionRepo adapter.TransactionRepository,
	settingsRepo adapter.SettingsRepository,
) *GetMonthlyTrendUseCase {
	return &GetMonthlyTrendUseCase{
		transactionRepo: transactionRepo,
		settingsRepo:    settingsRepo,
	}
}

// Execute buckets transactions into the trailing calendar months, oldest
// first.
func (uc *GetMonthlyTrendUseCase) Execute(ctx context.Context, input GetMonthlyTrendInput) (*GetMonthlyTrendOutput, error) {
	monthCount := input.MonthCount
	if monthCount == 0 {
		monthCount = DefaultTrendMonths
	}
	if monthCount < 0 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidMonthCount,
			fmt.Sprintf("month count must be positive: %d", monthCount),
			domainerror.ErrInvalidMonthCount,
		)
	}

	referenceDate := input.ReferenceDate
	if referenceDate.IsZero() {
		referenceDate = time.Now().UTC()
	}

	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	months, err := ComputeMonthlyTrend(transactions, settings.USDToEGPRate, monthCount, referenceDate)
	if err != nil {
		return nil, err
	}

	return &GetMonthlyTrendOutput{Months: months}, nil
}
