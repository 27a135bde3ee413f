// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/khazna-app/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
// A budget save replaces the full per-category set; the core never relies on
// partial-update semantics.
type BudgetRepository interface {
	// ReplaceAll replaces the entire budget collection.
	ReplaceAll(ctx context.Context, budgets []*entity.Budget) error

	// FindAll retrieves every budget, in expense-category definition order.
	FindAll(ctx context.Context) ([]*entity.Budget, error)
}
