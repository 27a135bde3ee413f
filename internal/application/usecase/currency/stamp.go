package currency

import (
	"github.com/shopspring/decimal"

	"github.com/khazna-app/backend/internal/domain/entity"
)

// Rate-snapshot policy. The snapshot is applied where a transaction is
// created or edited, never inside the normalizer itself. Only EGP expenses
// carry a snapshot rate; revenue and USD transactions must have it cleared.

// StampForCreate freezes the current global rate onto a newly created
// transaction when it is an EGP expense, and clears the rate otherwise.
func StampForCreate(transaction *entity.Transaction, globalRate decimal.Decimal) {
	if transaction.Type == entity.TransactionTypeExpense && transaction.Currency == entity.CurrencyEGP {
		rate := globalRate
		transaction.ExchangeRate = &rate
		return
	}
	transaction.ExchangeRate = nil
}

// StampForUpdate applies the snapshot policy to an edited transaction. When
// the edit supplies an explicit rate it is kept; when it does not, the
// transaction is re-stamped with the current global rate, so edits silently
// pick up rate drift. This mirrors the long-standing behavior and is kept for
// compatibility; see the open questions in DESIGN.md.
func StampForUpdate(transaction *entity.Transaction, suppliedRate *decimal.Decimal, globalRate decimal.Decimal) {
	if transaction.Type != entity.TransactionTypeExpense || transaction.Currency != entity.CurrencyEGP {
		transaction.ExchangeRate = nil
		return
	}

	if suppliedRate != nil {
		rate := *suppliedRate
		transaction.ExchangeRate = &rate
		return
	}

	rate := globalRate
	transaction.ExchangeRate = &rate
}
