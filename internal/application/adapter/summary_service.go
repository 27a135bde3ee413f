// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// FinancialSnapshot is the aggregate input handed to the summarization
// collaborator. All amounts are in the reporting currency.
type FinancialSnapshot struct {
	TotalRevenue     decimal.Decimal
	TotalExpense     decimal.Decimal
	Balance          decimal.Decimal
	USDToEGPRate     decimal.Decimal
	TransactionCount int
}

// SummaryService generates a narrative financial summary. The core never
// depends on its output; failures degrade to an unavailable summary.
type SummaryService interface {
	// IsAvailable reports whether the service is configured.
	IsAvailable() bool

	// Summarize produces a short narrative summary of the snapshot.
	Summarize(ctx context.Context, snapshot FinancialSnapshot) (string, error)
}

// SummaryCache caches generated summaries so repeated dashboard loads do not
// re-invoke the summarization service.
type SummaryCache interface {
	// Get returns the cached summary, or "" when absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores a summary under key for ttl.
	Set(ctx context.Context, key, summary string, ttl time.Duration) error
}
