package summary

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/khazna-app/backend/internal/application/adapter"
	"github.com/khazna-app/backend/internal/domain/entity"
)

type fakeTransactionRepo struct {
	adapter.TransactionRepository
	transactions []*entity.Transaction
}

func (r *fakeTransactionRepo) FindAll(_ context.Context) ([]*entity.Transaction, error) {
	return r.transactions, nil
}

type fakeSettingsRepo struct{}

func (fakeSettingsRepo) Get(_ context.Context) (*entity.Settings, error) {
	return &entity.Settings{USDToEGPRate: decimal.NewFromInt(48), UpdatedAt: time.Now().UTC()}, nil
}

func (fakeSettingsRepo) Save(_ context.Context, _ *entity.Settings) error { return nil }

type fakeSummaryService struct {
	available bool
	calls     int
}

func (s *fakeSummaryService) IsAvailable() bool { return s.available }

func (s *fakeSummaryService) Summarize(_ context.Context, snapshot adapter.FinancialSnapshot) (string, error) {
	s.calls++
	return "الوضع المالي مستقر، الرصيد " + snapshot.Balance.String(), nil
}

type fakeCache struct {
	entries map[string]string
}

func newFakeCache() *fakeCache { return &fakeCache{entries: make(map[string]string)} }

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	return c.entries[key], nil
}

func (c *fakeCache) Set(_ context.Context, key, summary string, _ time.Duration) error {
	c.entries[key] = summary
	return nil
}

func usdRevenue(amount int64) *entity.Transaction {
	return entity.NewTransaction(
		entity.TransactionTypeRevenue,
		decimal.NewFromInt(amount),
		entity.CurrencyUSD,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		"تبرع",
		entity.CategoryGeneralRevenue,
	)
}

func TestGenerateSummaryUnavailableService(t *testing.T) {
	uc := NewGenerateSummaryUseCase(&fakeTransactionRepo{}, fakeSettingsRepo{}, &fakeSummaryService{available: false}, newFakeCache())

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Available {
		t.Error("expected unavailable output when the service is not configured")
	}
}

func TestGenerateSummaryCachesPerLedgerState(t *testing.T) {
	repo := &fakeTransactionRepo{transactions: []*entity.Transaction{usdRevenue(1000)}}
	service := &fakeSummaryService{available: true}
	cache := newFakeCache()
	uc := NewGenerateSummaryUseCase(repo, fakeSettingsRepo{}, service, cache)

	first, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Cached || first.Summary == "" {
		t.Fatalf("expected a freshly generated summary, got %+v", first)
	}

	second, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.Cached || second.Summary != first.Summary {
		t.Errorf("expected the cached summary on the second call, got %+v", second)
	}
	if service.calls != 1 {
		t.Errorf("expected one service call, got %d", service.calls)
	}

	// A ledger change invalidates the key and regenerates.
	repo.transactions = append(repo.transactions, usdRevenue(500))
	third, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if third.Cached {
		t.Error("expected regeneration after the ledger changed")
	}
	if service.calls != 2 {
		t.Errorf("expected a second service call, got %d", service.calls)
	}
}

func TestGenerateSummaryWithoutCache(t *testing.T) {
	service := &fakeSummaryService{available: true}
	uc := NewGenerateSummaryUseCase(&fakeTransactionRepo{}, fakeSettingsRepo{}, service, nil)

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.Available || output.Cached {
		t.Errorf("expected a fresh summary without a cache, got %+v", output)
	}
}
