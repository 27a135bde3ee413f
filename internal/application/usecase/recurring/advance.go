// Package recurring contains recurring-expense use cases: the recurrence
// engine and the session-start catch-up coordinator.
package recurring

import (
	"fmt"
	"time"

	"github.com/khazna-app/backend/internal/domain/entity"
	domainerror "github.com/khazna-app/backend/internal/domain/error"
)

// GeneratedSuffix marks transactions materialized from a recurring expense.
const GeneratedSuffix = " (دوري)"

// Advance materializes one expense transaction per interval elapsed between
// the obligation's next due date and today (strict date-only comparison), and
// returns the advanced next due date. Calling Advance again with the returned
// due date and the same today yields nothing, so catch-up is idempotent.
//
// Interval arithmetic uses Go's AddDate normalization: a monthly obligation
// anchored on Jan 31 rolls over to Mar 2/3 rather than clamping to month end.
// The rule is applied consistently and covered by tests at month-length
// boundaries.
//
// Materialized transactions carry no exchange-rate snapshot; they normalize
// at read time with the live global rate, exactly like any other transaction
// recorded without a rate.
func Advance(expense *entity.RecurringExpense, today time.Time) ([]*entity.Transaction, time.Time, error) {
	day := entity.DateOnly(today)
	cursor := entity.DateOnly(expense.NextDueDate)

	var materialized []*entity.Transaction
	for cursor.Before(day) {
		transaction := entity.NewTransaction(
			entity.TransactionTypeExpense,
			expense.Amount,
			expense.Currency,
			cursor,
			expense.Description+GeneratedSuffix,
			expense.Category,
		)
		materialized = append(materialized, transaction)

		next, err := NextInterval(cursor, expense.Frequency)
		if err != nil {
			return nil, cursor, err
		}
		cursor = next
	}

	return materialized, cursor, nil
}

// IsDueTomorrow reports whether the obligation's (post-advance) next due date
// falls exactly one day after today. Used for the reminder notification only,
// never for materialization.
func IsDueTomorrow(expense *entity.RecurringExpense, today time.Time) bool {
	tomorrow := entity.DateOnly(today).AddDate(0, 0, 1)
	return entity.DateOnly(expense.NextDueDate).Equal(tomorrow)
}

// NextInterval advances a due date by one frequency interval.
func NextInterval(date time.Time, frequency entity.Frequency) (time.Time, error) {
	switch frequency {
	case entity.FrequencyMonthly:
		return date.AddDate(0, 1, 0), nil
	case entity.FrequencyYearly:
		return date.AddDate(1, 0, 0), nil
	default:
		return time.Time{}, domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidFrequency,
			fmt.Sprintf("unknown frequency %q", frequency),
			domainerror.ErrInvalidFrequency,
		)
	}
}

// NextDueDateFrom walks forward from the start date until it reaches the
// first due date that is not in the past relative to today. Used when a
// recurring expense is created or its schedule edited.
func NextDueDateFrom(startDate time.Time, frequency entity.Frequency, today time.Time) (time.Time, error) {
	day := entity.DateOnly(today)
	cursor := entity.DateOnly(startDate)

	for cursor.Before(day) {
		next, err := NextInterval(cursor, frequency)
		if err != nil {
			return time.Time{}, err
		}
		cursor = next
	}

	return cursor, nil
}
