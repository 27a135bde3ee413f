package recurring

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khazna-app/backend/internal/domain/entity"
)

func newMonthlyExpense(nextDueDate time.Time) *entity.RecurringExpense {
	return entity.NewRecurringExpense(
		"إيجار المقر",
		decimal.NewFromInt(100),
		entity.CurrencyEGP,
		entity.CategoryOperational,
		entity.FrequencyMonthly,
		nextDueDate,
		nextDueDate,
	)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestAdvanceThreeMonthsOverdue(t *testing.T) {
	today := date(2025, 6, 10)
	expense := newMonthlyExpense(date(2025, 3, 10))

	materialized, next, err := Advance(expense, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(materialized) != 3 {
		t.Fatalf("expected 3 materialized transactions, got %d", len(materialized))
	}

	expectedDates := []time.Time{date(2025, 3, 10), date(2025, 4, 10), date(2025, 5, 10)}
	for i, tx := range materialized {
		if !tx.Date.Equal(expectedDates[i]) {
			t.Errorf("transaction %d: expected date %s, got %s", i, expectedDates[i], tx.Date)
		}
		if tx.Type != entity.TransactionTypeExpense {
			t.Errorf("transaction %d: expected expense type, got %s", i, tx.Type)
		}
		if !tx.Amount.Equal(expense.Amount) {
			t.Errorf("transaction %d: expected amount %s, got %s", i, expense.Amount, tx.Amount)
		}
		if tx.Category != expense.Category {
			t.Errorf("transaction %d: expected category %s, got %s", i, expense.Category, tx.Category)
		}
		if !strings.HasSuffix(tx.Description, GeneratedSuffix) {
			t.Errorf("transaction %d: description %q lacks generated suffix", i, tx.Description)
		}
		if tx.ExchangeRate != nil {
			t.Errorf("transaction %d: materialized transaction must not carry a rate snapshot", i)
		}
	}

	if !next.Equal(date(2025, 6, 10)) {
		t.Errorf("expected next due date 2025-06-10, got %s", next)
	}
}

func TestAdvanceGeneratesUniqueIDs(t *testing.T) {
	expense := newMonthlyExpense(date(2023, 1, 1))

	materialized, _, err := Advance(expense, date(2025, 1, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(materialized) != 24 {
		t.Fatalf("expected 24 materialized transactions, got %d", len(materialized))
	}

	seen := make(map[uuid.UUID]bool, len(materialized))
	for _, tx := range materialized {
		if seen[tx.ID] {
			t.Fatalf("duplicate transaction id %s", tx.ID)
		}
		seen[tx.ID] = true
	}
}

func TestAdvanceIsIdempotent(t *testing.T) {
	today := date(2025, 6, 10)
	expense := newMonthlyExpense(date(2025, 3, 10))

	first, next, err := Advance(expense, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) == 0 {
		t.Fatal("expected materialized transactions on the first pass")
	}

	expense.NextDueDate = next
	second, nextAgain, err := Advance(expense, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(second) != 0 {
		t.Errorf("expected zero materialized transactions on the second pass, got %d", len(second))
	}
	if !nextAgain.Equal(next) {
		t.Errorf("expected next due date to stay %s, got %s", next, nextAgain)
	}
}

func TestAdvanceNotYetDue(t *testing.T) {
	tests := []struct {
		name        string
		nextDueDate time.Time
		today       time.Time
	}{
		{"due today", date(2025, 6, 10), date(2025, 6, 10)},
		{"due in the future", date(2025, 9, 1), date(2025, 6, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expense := newMonthlyExpense(tt.nextDueDate)
			materialized, next, err := Advance(expense, tt.today)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(materialized) != 0 {
				t.Errorf("expected no materialized transactions, got %d", len(materialized))
			}
			if !next.Equal(tt.nextDueDate) {
				t.Errorf("expected next due date unchanged at %s, got %s", tt.nextDueDate, next)
			}
		})
	}
}

func TestAdvanceNeverRegresses(t *testing.T) {
	expense := newMonthlyExpense(date(2025, 3, 10))
	original := expense.NextDueDate

	_, next, err := Advance(expense, date(2025, 6, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Before(original) {
		t.Errorf("next due date regressed from %s to %s", original, next)
	}
}

func TestAdvanceYearly(t *testing.T) {
	expense := newMonthlyExpense(date(2023, 7, 1))
	expense.Frequency = entity.FrequencyYearly

	materialized, next, err := Advance(expense, date(2025, 7, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(materialized) != 2 {
		t.Fatalf("expected 2 materialized transactions, got %d", len(materialized))
	}
	if !materialized[0].Date.Equal(date(2023, 7, 1)) || !materialized[1].Date.Equal(date(2024, 7, 1)) {
		t.Errorf("unexpected materialized dates: %s, %s", materialized[0].Date, materialized[1].Date)
	}
	if !next.Equal(date(2025, 7, 1)) {
		t.Errorf("expected next due date 2025-07-01, got %s", next)
	}
}

func TestNextIntervalMonthEndRollover(t *testing.T) {
	// AddDate normalization: Jan 31 + 1 month lands in March, not on Feb 28.
	tests := []struct {
		name     string
		from     time.Time
		expected time.Time
	}{
		{"Jan 31 rolls into March", date(2025, 1, 31), date(2025, 3, 3)},
		{"Jan 31 leap year rolls into March", date(2024, 1, 31), date(2024, 3, 2)},
		{"Mar 31 rolls into May", date(2025, 3, 31), date(2025, 5, 1)},
		{"Apr 30 stays on the 30th", date(2025, 4, 30), date(2025, 5, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextInterval(tt.from, entity.FrequencyMonthly)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.expected) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestNextIntervalLeapYearly(t *testing.T) {
	got, err := NextInterval(date(2024, 2, 29), entity.FrequencyYearly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(date(2025, 3, 1)) {
		t.Errorf("expected 2025-03-01, got %s", got)
	}
}

func TestNextIntervalUnknownFrequency(t *testing.T) {
	_, err := NextInterval(date(2025, 1, 1), entity.Frequency("WEEKLY"))
	if err == nil {
		t.Fatal("expected an error for unknown frequency")
	}
}

func TestIsDueTomorrow(t *testing.T) {
	today := date(2025, 6, 10)

	tests := []struct {
		name        string
		nextDueDate time.Time
		expected    bool
	}{
		{"due tomorrow", date(2025, 6, 11), true},
		{"due today", date(2025, 6, 10), false},
		{"due in two days", date(2025, 6, 12), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expense := newMonthlyExpense(tt.nextDueDate)
			if got := IsDueTomorrow(expense, today); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestNextDueDateFrom(t *testing.T) {
	today := date(2025, 6, 10)

	tests := []struct {
		name      string
		startDate time.Time
		frequency entity.Frequency
		expected  time.Time
	}{
		{"past monthly anchor advances to first date not in the past", date(2025, 3, 5), entity.FrequencyMonthly, date(2025, 7, 5)},
		{"future anchor stays put", date(2025, 8, 1), entity.FrequencyMonthly, date(2025, 8, 1)},
		{"anchor on today stays put", date(2025, 6, 10), entity.FrequencyMonthly, date(2025, 6, 10)},
		{"past yearly anchor", date(2023, 2, 1), entity.FrequencyYearly, date(2026, 2, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextDueDateFrom(tt.startDate, tt.frequency, today)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.expected) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}
