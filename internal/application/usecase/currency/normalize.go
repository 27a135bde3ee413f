// Package currency implements normalization of transaction amounts into the
// unified reporting currency (USD).
package currency

import (
	"github.com/shopspring/decimal"

	"github.com/khazna-app/backend/internal/domain/entity"
	domainerror "github.com/khazna-app/backend/internal/domain/error"
)

// ValidateRate checks that an exchange rate is usable. A non-positive rate is
// a configuration error: it must fail the call instead of being defaulted,
// because a silently substituted rate would corrupt every downstream total.
func ValidateRate(rate decimal.Decimal) error {
	if rate.LessThanOrEqual(decimal.Zero) {
		return domainerror.NewCurrencyError(
			domainerror.ErrCodeNonPositiveRate,
			"exchange rate must be greater than zero",
			domainerror.ErrNonPositiveRate,
		)
	}
	return nil
}

// EffectiveRate returns the rate that converts a transaction's EGP amount to
// USD: the snapshot rate frozen on the transaction when present and the
// transaction is an expense, otherwise the current global rate.
func EffectiveRate(transaction *entity.Transaction, globalRate decimal.Decimal) decimal.Decimal {
	if transaction.Type == entity.TransactionTypeExpense && transaction.ExchangeRate != nil {
		return *transaction.ExchangeRate
	}
	return globalRate
}

// ToReportingAmount converts a transaction amount into the reporting currency.
// USD amounts pass through unchanged; EGP amounts are divided by the
// effective rate. Pure function, no side effects.
func ToReportingAmount(transaction *entity.Transaction, globalRate decimal.Decimal) (decimal.Decimal, error) {
	if transaction.Currency == entity.CurrencyUSD {
		return transaction.Amount, nil
	}

	rate := EffectiveRate(transaction, globalRate)
	if err := ValidateRate(rate); err != nil {
		return decimal.Zero, err
	}

	return transaction.Amount.Div(rate), nil
}
