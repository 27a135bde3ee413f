package recurring

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/khazna-app/backend/internal/application/adapter"
	"github.com/khazna-app/backend/internal/domain/entity"
)

// RunCatchUpInput represents the input for a catch-up run.
type RunCatchUpInput struct {
	Today time.Time
}

// RunCatchUpOutput represents the result of a catch-up run. Empty slices are
// a valid, common outcome when nothing is due.
type RunCatchUpOutput struct {
	Generated []*entity.Transaction
	Upcoming  []*entity.RecurringExpense
	Updated   []*entity.RecurringExpense
	Failed    int
}

// RunCatchUpUseCase orchestrates the recurrence engine once per session
// start: it advances every obligation, persists the results, records an audit
// row and hands the notification payload to the reminder notifier.
type RunCatchUpUseCase struct {
	recurringRepo   adapter.RecurringExpenseRepository
	transactionRepo adapter.TransactionRepository
	catchUpRunRepo  adapter.CatchUpRunRepository
	notifier        adapter.ReminderNotifier
}

// NewRunCatchUpUseCase creates a new RunCatchUpUseCase instance. The notifier
// may be nil when no notification channel is configured.
func NewRunCatchUpUseCase(
	recurringRepo adapter.RecurringExpenseRepository,
	transactionRepo adapter.TransactionRepository,
	catchUpRunRepo adapter.CatchUpRunRepository,
	notifier adapter.ReminderNotifier,
) *RunCatchUpUseCase {
	return &RunCatchUpUseCase{
		recurringRepo:   recurringRepo,
		transactionRepo: transactionRepo,
		catchUpRunRepo:  catchUpRunRepo,
		notifier:        notifier,
	}
}

// Execute performs the catch-up run. Failures are isolated per obligation:
// one obligation with invalid state or a failing update is logged and skipped
// while the rest of the run continues.
func (uc *RunCatchUpUseCase) Execute(ctx context.Context, input RunCatchUpInput) (*RunCatchUpOutput, error) {
	expenses, err := uc.recurringRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring expenses: %w", err)
	}

	output := &RunCatchUpOutput{}

	for _, expense := range expenses {
		materialized, next, err := Advance(expense, input.Today)
		if err != nil {
			output.Failed++
			slog.Error("Skipping recurring expense during catch-up",
				"recurring_expense_id", expense.ID,
				"description", expense.Description,
				"error", err,
			)
			continue
		}

		if len(materialized) > 0 {
			expense.NextDueDate = next
			expense.UpdatedAt = time.Now().UTC()
			if err := uc.recurringRepo.Update(ctx, expense); err != nil {
				// Do not append transactions whose obligation failed to
				// persist, or the next session would materialize them again.
				output.Failed++
				slog.Error("Failed to persist advanced due date",
					"recurring_expense_id", expense.ID,
					"error", err,
				)
				continue
			}
			output.Generated = append(output.Generated, materialized...)
		}

		if IsDueTomorrow(expense, input.Today) {
			output.Upcoming = append(output.Upcoming, expense)
		}
		output.Updated = append(output.Updated, expense)
	}

	// Append generated transactions in one batch, and only when there is
	// something to write.
	if len(output.Generated) > 0 {
		if err := uc.transactionRepo.CreateBatch(ctx, output.Generated); err != nil {
			return nil, fmt.Errorf("failed to append generated transactions: %w", err)
		}
	}

	uc.recordRun(ctx, input.Today, output)
	uc.notify(ctx, output)

	slog.Info("Recurring expense catch-up complete",
		"obligations", len(expenses),
		"generated", len(output.Generated),
		"upcoming", len(output.Upcoming),
		"failed", output.Failed,
	)

	return output, nil
}

// recordRun writes the catch-up audit row. Audit failures are logged, never
// propagated.
func (uc *RunCatchUpUseCase) recordRun(ctx context.Context, today time.Time, output *RunCatchUpOutput) {
	if uc.catchUpRunRepo == nil {
		return
	}

	ids := make([]string, 0, len(output.Generated))
	for _, tx := range output.Generated {
		ids = append(ids, tx.ID.String())
	}

	run := entity.NewCatchUpRun(today, ids, len(output.Updated), output.Failed)
	if err := uc.catchUpRunRepo.Create(ctx, run); err != nil {
		slog.Error("Failed to record catch-up run", "error", err)
	}
}

// notify hands the notification payload to the configured notifier,
// fire-and-forget.
func (uc *RunCatchUpUseCase) notify(ctx context.Context, output *RunCatchUpOutput) {
	if uc.notifier == nil || !uc.notifier.IsAvailable() {
		return
	}
	if len(output.Generated) == 0 && len(output.Upcoming) == 0 {
		return
	}

	notification := adapter.ReminderNotification{
		Generated: output.Generated,
		Upcoming:  output.Upcoming,
	}
	if err := uc.notifier.Notify(ctx, notification); err != nil {
		slog.Warn("Failed to deliver catch-up notification", "error", err)
	}
}
