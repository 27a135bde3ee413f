// Package summary contains the narrative financial summary use case.
package summary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/khazna-app/backend/internal/application/adapter"
	"github.com/khazna-app/backend/internal/application/usecase/report"
)

// CacheTTL bounds how long a generated summary is served before the
// summarization service is consulted again.
const CacheTTL = 6 * time.Hour

// GenerateSummaryOutput represents the output of a summary request.
// Available is false when no summarization service is configured; the
// dashboard renders without the narrative block in that case.
type GenerateSummaryOutput struct {
	Available bool
	Summary   string
	Cached    bool
}

// GenerateSummaryUseCase produces a narrative summary of the treasury state.
type GenerateSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	settingsRepo    adapter.SettingsRepository
	summaryService  adapter.SummaryService
	cache           adapter.SummaryCache
}

// NewGenerateSummaryUseCase creates a new GenerateSummaryUseCase instance.
func NewGenerateSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	settingsRepo adapter.SettingsRepository,
	summaryService adapter.SummaryService,
	cache adapter.SummaryCache,
) *GenerateSummaryUseCase {
	return &GenerateSummaryUseCase{
		transactionRepo: transactionRepo,
		settingsRepo:    settingsRepo,
		summaryService:  summaryService,
		cache:           cache,
	}
}

// Execute builds the financial snapshot and asks the summarization service
// for a narrative. Summaries are cached per ledger state; cache failures are
// logged and fall through to regeneration.
func (uc *GenerateSummaryUseCase) Execute(ctx context.Context) (*GenerateSummaryOutput, error) {
	if uc.summaryService == nil || !uc.summaryService.IsAvailable() {
		return &GenerateSummaryOutput{Available: false}, nil
	}

	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	totals, err := report.ComputeTotals(transactions, settings.USDToEGPRate)
	if err != nil {
		return nil, err
	}

	snapshot := adapter.FinancialSnapshot{
		TotalRevenue:     totals.TotalRevenue,
		TotalExpense:     totals.TotalExpense,
		Balance:          totals.Balance,
		USDToEGPRate:     settings.USDToEGPRate,
		TransactionCount: len(transactions),
	}

	key := cacheKey(snapshot)
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, key)
		if err != nil {
			slog.Warn("summary cache read failed", "error", err)
		} else if cached != "" {
			return &GenerateSummaryOutput{Available: true, Summary: cached, Cached: true}, nil
		}
	}

	text, err := uc.summaryService.Summarize(ctx, snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to generate summary: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, text, CacheTTL); err != nil {
			slog.Warn("summary cache write failed", "error", err)
		}
	}

	return &GenerateSummaryOutput{Available: true, Summary: text}, nil
}

// cacheKey changes whenever the ledger or the rate changes, so a stale
// narrative is never served against fresh numbers.
func cacheKey(snapshot adapter.FinancialSnapshot) string {
	return fmt.Sprintf("summary:%d:%s:%s",
		snapshot.TransactionCount,
		snapshot.Balance.String(),
		snapshot.USDToEGPRate.String(),
	)
}
