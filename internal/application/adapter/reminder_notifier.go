// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/khazna-app/backend/internal/domain/entity"
)

// ReminderNotification is the user-facing payload produced by a catch-up run.
type ReminderNotification struct {
	Generated []*entity.Transaction
	Upcoming  []*entity.RecurringExpense
}

// ReminderNotifier delivers the catch-up notification out of band. Delivery
// is fire-and-forget; a failed notification never fails the catch-up run.
type ReminderNotifier interface {
	// IsAvailable reports whether the notifier is configured.
	IsAvailable() bool

	// Notify delivers the notification payload.
	Notify(ctx context.Context, notification ReminderNotification) error
}
