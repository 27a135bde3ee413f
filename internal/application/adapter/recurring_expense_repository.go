// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/khazna-app/backend/internal/domain/entity"
)

// RecurringExpenseRepository defines the interface for recurring expense
// persistence operations.
type RecurringExpenseRepository interface {
	// Create creates a new recurring expense in the database.
	Create(ctx context.Context, expense *entity.RecurringExpense) error

	// FindByID retrieves a recurring expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringExpense, error)

	// FindAll retrieves every recurring expense.
	FindAll(ctx context.Context) ([]*entity.RecurringExpense, error)

	// Update updates an existing recurring expense in the database.
	Update(ctx context.Context, expense *entity.RecurringExpense) error

	// Delete removes a recurring expense from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CatchUpRunRepository records catch-up audit rows.
type CatchUpRunRepository interface {
	// Create persists one catch-up run record.
	Create(ctx context.Context, run *entity.CatchUpRun) error
}
