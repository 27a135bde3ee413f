// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a monthly spending cap for a single expense category. Budgets are
// always denominated in the reporting currency (USD); there is at most one
// budget per category.
type Budget struct {
	Category  Category
	Amount    decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(category Category, amount decimal.Decimal) *Budget {
	now := time.Now().UTC()

	return &Budget{
		Category:  category,
		Amount:    amount,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
