// Package transaction contains the transaction ledger use cases.
package transaction

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/khazna-app/backend/internal/domain/entity"
	domainerror "github.com/khazna-app/backend/internal/domain/error"
)

const maxDescriptionLength = 500

func validateTransactionInput(
	transactionType entity.TransactionType,
	amount decimal.Decimal,
	currency entity.Currency,
	date time.Time,
	description string,
	category entity.Category,
) error {
	if transactionType != entity.TransactionTypeRevenue && transactionType != entity.TransactionTypeExpense {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			fmt.Sprintf("invalid transaction type: %s", transactionType),
			domainerror.ErrInvalidTransactionType,
		)
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			fmt.Sprintf("transaction amount must be positive: %s", amount),
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if currency != entity.CurrencyEGP && currency != entity.CurrencyUSD {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionCurrency,
			fmt.Sprintf("invalid currency: %s", currency),
			domainerror.ErrInvalidTransactionCurrency,
		)
	}

	if date.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"transaction date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	if len(description) > maxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description exceeds %d characters", maxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	if !entity.IsValidCategory(transactionType, category) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeCategoryMismatch,
			fmt.Sprintf("category %q is not valid for type %s", category, transactionType),
			domainerror.ErrCategoryMismatch,
		)
	}

	return nil
}
