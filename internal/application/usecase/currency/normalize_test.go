package currency

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/khazna-app/backend/internal/domain/entity"
	domainerror "github.com/khazna-app/backend/internal/domain/error"
)

func newTestTransaction(
	transactionType entity.TransactionType,
	amount string,
	currency entity.Currency,
	exchangeRate *string,
) *entity.Transaction {
	tx := entity.NewTransaction(
		transactionType,
		decimal.RequireFromString(amount),
		currency,
		time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		"test",
		entity.CategoryOperational,
	)
	if exchangeRate != nil {
		rate := decimal.RequireFromString(*exchangeRate)
		tx.ExchangeRate = &rate
	}
	return tx
}

func TestToReportingAmount(t *testing.T) {
	snapshot := "50"

	tests := []struct {
		name       string
		tx         *entity.Transaction
		globalRate string
		expected   string
	}{
		{
			name:       "USD amount passes through unchanged",
			tx:         newTestTransaction(entity.TransactionTypeExpense, "200", entity.CurrencyUSD, nil),
			globalRate: "48",
			expected:   "200",
		},
		{
			name:       "USD revenue ignores global rate entirely",
			tx:         newTestTransaction(entity.TransactionTypeRevenue, "123.45", entity.CurrencyUSD, nil),
			globalRate: "1000",
			expected:   "123.45",
		},
		{
			name:       "EGP expense with snapshot uses snapshot, not global rate",
			tx:         newTestTransaction(entity.TransactionTypeExpense, "200", entity.CurrencyEGP, &snapshot),
			globalRate: "48",
			expected:   "4",
		},
		{
			name:       "EGP expense without snapshot uses global rate",
			tx:         newTestTransaction(entity.TransactionTypeExpense, "96", entity.CurrencyEGP, nil),
			globalRate: "48",
			expected:   "2",
		},
		{
			name:       "EGP revenue always uses global rate",
			tx:         newTestTransaction(entity.TransactionTypeRevenue, "480", entity.CurrencyEGP, nil),
			globalRate: "48",
			expected:   "10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToReportingAmount(tt.tx, decimal.RequireFromString(tt.globalRate))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(decimal.RequireFromString(tt.expected)) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestToReportingAmountSnapshotPrecedence(t *testing.T) {
	// For a fixed snapshot rate the result must be independent of the global rate.
	snapshot := "50"
	tx := newTestTransaction(entity.TransactionTypeExpense, "200", entity.CurrencyEGP, &snapshot)

	for _, globalRate := range []string{"1", "48", "48.5", "9999"} {
		got, err := ToReportingAmount(tx, decimal.RequireFromString(globalRate))
		if err != nil {
			t.Fatalf("unexpected error at global rate %s: %v", globalRate, err)
		}
		if !got.Equal(decimal.NewFromInt(4)) {
			t.Errorf("global rate %s: expected 4, got %s", globalRate, got)
		}
	}
}

func TestToReportingAmountRejectsBadRates(t *testing.T) {
	badSnapshot := "-2"

	tests := []struct {
		name       string
		tx         *entity.Transaction
		globalRate string
	}{
		{
			name:       "zero global rate",
			tx:         newTestTransaction(entity.TransactionTypeExpense, "100", entity.CurrencyEGP, nil),
			globalRate: "0",
		},
		{
			name:       "negative global rate",
			tx:         newTestTransaction(entity.TransactionTypeRevenue, "100", entity.CurrencyEGP, nil),
			globalRate: "-48",
		},
		{
			name:       "negative snapshot rate",
			tx:         newTestTransaction(entity.TransactionTypeExpense, "100", entity.CurrencyEGP, &badSnapshot),
			globalRate: "48",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToReportingAmount(tt.tx, decimal.RequireFromString(tt.globalRate))
			if err == nil {
				t.Fatal("expected a configuration error, got nil")
			}
			if !errors.Is(err, domainerror.ErrNonPositiveRate) {
				t.Errorf("expected ErrNonPositiveRate, got %v", err)
			}
			var currencyErr *domainerror.CurrencyError
			if !errors.As(err, &currencyErr) {
				t.Errorf("expected *CurrencyError, got %T", err)
			}
		})
	}
}

func TestStampForCreate(t *testing.T) {
	globalRate := decimal.RequireFromString("48.5")

	t.Run("EGP expense is stamped with the global rate", func(t *testing.T) {
		tx := newTestTransaction(entity.TransactionTypeExpense, "100", entity.CurrencyEGP, nil)
		StampForCreate(tx, globalRate)
		if tx.ExchangeRate == nil || !tx.ExchangeRate.Equal(globalRate) {
			t.Errorf("expected snapshot %s, got %v", globalRate, tx.ExchangeRate)
		}
	})

	t.Run("USD expense has the rate cleared", func(t *testing.T) {
		tx := newTestTransaction(entity.TransactionTypeExpense, "100", entity.CurrencyUSD, nil)
		stale := decimal.NewFromInt(30)
		tx.ExchangeRate = &stale
		StampForCreate(tx, globalRate)
		if tx.ExchangeRate != nil {
			t.Errorf("expected cleared rate, got %v", tx.ExchangeRate)
		}
	})

	t.Run("EGP revenue has the rate cleared", func(t *testing.T) {
		tx := newTestTransaction(entity.TransactionTypeRevenue, "100", entity.CurrencyEGP, nil)
		stale := decimal.NewFromInt(30)
		tx.ExchangeRate = &stale
		StampForCreate(tx, globalRate)
		if tx.ExchangeRate != nil {
			t.Errorf("expected cleared rate, got %v", tx.ExchangeRate)
		}
	})
}

func TestStampForUpdate(t *testing.T) {
	globalRate := decimal.RequireFromString("48")

	t.Run("explicit rate is kept", func(t *testing.T) {
		tx := newTestTransaction(entity.TransactionTypeExpense, "100", entity.CurrencyEGP, nil)
		supplied := decimal.RequireFromString("52")
		StampForUpdate(tx, &supplied, globalRate)
		if tx.ExchangeRate == nil || !tx.ExchangeRate.Equal(supplied) {
			t.Errorf("expected supplied rate %s, got %v", supplied, tx.ExchangeRate)
		}
	})

	t.Run("missing rate re-stamps with the current global rate", func(t *testing.T) {
		old := "40"
		tx := newTestTransaction(entity.TransactionTypeExpense, "100", entity.CurrencyEGP, &old)
		StampForUpdate(tx, nil, globalRate)
		if tx.ExchangeRate == nil || !tx.ExchangeRate.Equal(globalRate) {
			t.Errorf("expected re-stamped rate %s, got %v", globalRate, tx.ExchangeRate)
		}
	})

	t.Run("switching to USD clears the lingering rate", func(t *testing.T) {
		old := "40"
		tx := newTestTransaction(entity.TransactionTypeExpense, "100", entity.CurrencyEGP, &old)
		tx.Currency = entity.CurrencyUSD
		supplied := decimal.RequireFromString("52")
		StampForUpdate(tx, &supplied, globalRate)
		if tx.ExchangeRate != nil {
			t.Errorf("expected cleared rate, got %v", tx.ExchangeRate)
		}
	})
}
