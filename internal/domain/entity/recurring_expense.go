// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Frequency represents how often a recurring expense falls due.
type Frequency string

const (
	FrequencyMonthly Frequency = "MONTHLY"
	FrequencyYearly  Frequency = "YEARLY"
)

// RecurringExpense is a template for a periodic expense obligation. The
// recurrence engine materializes one concrete transaction per elapsed
// interval and advances NextDueDate; NextDueDate never regresses.
type RecurringExpense struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal
	Currency    Currency
	Category    Category // Expense categories only
	Frequency   Frequency
	StartDate   time.Time // Calendar date anchor
	NextDueDate time.Time // First not-yet-materialized due date

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewRecurringExpense creates a new RecurringExpense entity. NextDueDate is
// expected to be derived from StartDate and Frequency by the caller.
func NewRecurringExpense(
	description string,
	amount decimal.Decimal,
	currency Currency,
	category Category,
	frequency Frequency,
	startDate time.Time,
	nextDueDate time.Time,
) *RecurringExpense {
	now := time.Now().UTC()

	return &RecurringExpense{
		ID:          uuid.New(),
		Description: description,
		Amount:      amount,
		Currency:    currency,
		Category:    category,
		Frequency:   frequency,
		StartDate:   DateOnly(startDate),
		NextDueDate: DateOnly(nextDueDate),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
