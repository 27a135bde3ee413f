// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (revenue or expense).
type TransactionType string

const (
	TransactionTypeRevenue TransactionType = "REVENUE"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// Currency identifies one of the two currencies the treasury operates in.
// EGP is the primary (local) currency, USD the unified reporting currency.
type Currency string

const (
	CurrencyEGP Currency = "EGP"
	CurrencyUSD Currency = "USD"
)

// Transaction represents a single revenue or expense movement in the treasury.
type Transaction struct {
	ID          uuid.UUID
	Type        TransactionType
	Amount      decimal.Decimal // Positive magnitude in Currency
	Currency    Currency
	Date        time.Time // Calendar date, no time component
	Description string
	Category    Category

	// ExchangeRate is the USD conversion rate frozen when an EGP expense was
	// recorded or last edited. Nil means "use the current global rate at read
	// time". Never set on revenue transactions or USD transactions.
	ExchangeRate *decimal.Decimal

	ProjectID *uuid.UUID // Optional, may dangle after a project delete
	Recipient string     // Optional free text

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	transactionType TransactionType,
	amount decimal.Decimal,
	currency Currency,
	date time.Time,
	description string,
	category Category,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		Type:        transactionType,
		Amount:      amount,
		Currency:    currency,
		Date:        DateOnly(date),
		Description: description,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// DateOnly normalizes a timestamp to UTC midnight. Transaction and due dates
// carry no time component; every date comparison in the core goes through
// this normalization.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// TransactionWithProject pairs a transaction with its resolved project name.
// ProjectName is a display placeholder when the referenced project no longer
// exists.
type TransactionWithProject struct {
	Transaction *Transaction
	ProjectName string
}
