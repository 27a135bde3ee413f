package recurring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khazna-app/backend/internal/application/adapter"
	"github.com/khazna-app/backend/internal/domain/entity"
	domainerror "github.com/khazna-app/backend/internal/domain/error"
)

type fakeRecurringRepo struct {
	expenses      []*entity.RecurringExpense
	failUpdateFor uuid.UUID
	updates       int
}

func (r *fakeRecurringRepo) Create(_ context.Context, expense *entity.RecurringExpense) error {
	r.expenses = append(r.expenses, expense)
	return nil
}

func (r *fakeRecurringRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.RecurringExpense, error) {
	for _, e := range r.expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domainerror.ErrRecurringExpenseNotFound
}

func (r *fakeRecurringRepo) FindAll(_ context.Context) ([]*entity.RecurringExpense, error) {
	return r.expenses, nil
}

func (r *fakeRecurringRepo) Update(_ context.Context, expense *entity.RecurringExpense) error {
	if expense.ID == r.failUpdateFor {
		return errors.New("simulated update failure")
	}
	r.updates++
	return nil
}

func (r *fakeRecurringRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, e := range r.expenses {
		if e.ID == id {
			r.expenses = append(r.expenses[:i], r.expenses[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrRecurringExpenseNotFound
}

type fakeTransactionRepo struct {
	adapter.TransactionRepository
	batches [][]*entity.Transaction
}

func (r *fakeTransactionRepo) CreateBatch(_ context.Context, transactions []*entity.Transaction) error {
	r.batches = append(r.batches, transactions)
	return nil
}

type fakeCatchUpRunRepo struct {
	runs []*entity.CatchUpRun
}

func (r *fakeCatchUpRunRepo) Create(_ context.Context, run *entity.CatchUpRun) error {
	r.runs = append(r.runs, run)
	return nil
}

type fakeNotifier struct {
	notifications []adapter.ReminderNotification
}

func (n *fakeNotifier) IsAvailable() bool { return true }

func (n *fakeNotifier) Notify(_ context.Context, notification adapter.ReminderNotification) error {
	n.notifications = append(n.notifications, notification)
	return nil
}

func newRecurring(description string, frequency entity.Frequency, nextDueDate time.Time) *entity.RecurringExpense {
	return entity.NewRecurringExpense(
		description,
		decimal.NewFromInt(100),
		entity.CurrencyEGP,
		entity.CategorySalaries,
		frequency,
		nextDueDate,
		nextDueDate,
	)
}

func TestRunCatchUpMaterializesOverdueObligations(t *testing.T) {
	today := date(2025, 6, 10)
	overdue := newRecurring("رواتب", entity.FrequencyMonthly, date(2025, 3, 10))
	current := newRecurring("تأمين سنوي", entity.FrequencyYearly, date(2025, 11, 1))
	tomorrow := newRecurring("اشتراك", entity.FrequencyMonthly, date(2025, 6, 11))

	recurringRepo := &fakeRecurringRepo{expenses: []*entity.RecurringExpense{overdue, current, tomorrow}}
	transactionRepo := &fakeTransactionRepo{}
	runRepo := &fakeCatchUpRunRepo{}
	notifier := &fakeNotifier{}

	uc := NewRunCatchUpUseCase(recurringRepo, transactionRepo, runRepo, notifier)
	output, err := uc.Execute(context.Background(), RunCatchUpInput{Today: today})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Generated) != 3 {
		t.Fatalf("expected 3 generated transactions, got %d", len(output.Generated))
	}
	if len(output.Upcoming) != 1 || output.Upcoming[0].ID != tomorrow.ID {
		t.Fatalf("expected exactly the due-tomorrow obligation in upcoming, got %d", len(output.Upcoming))
	}
	if len(output.Updated) != 3 {
		t.Errorf("expected all 3 obligations in updated, got %d", len(output.Updated))
	}
	if output.Failed != 0 {
		t.Errorf("expected no failures, got %d", output.Failed)
	}

	if !overdue.NextDueDate.Equal(date(2025, 6, 10)) {
		t.Errorf("expected overdue obligation advanced to 2025-06-10, got %s", overdue.NextDueDate)
	}
	if !current.NextDueDate.Equal(date(2025, 11, 1)) {
		t.Errorf("expected untouched obligation to keep 2025-11-01, got %s", current.NextDueDate)
	}

	if len(transactionRepo.batches) != 1 || len(transactionRepo.batches[0]) != 3 {
		t.Fatalf("expected one batch of 3 transactions, got %v", transactionRepo.batches)
	}
	if len(runRepo.runs) != 1 || len(runRepo.runs[0].GeneratedTransactionIDs) != 3 {
		t.Fatalf("expected one audit row with 3 generated ids")
	}
	if len(notifier.notifications) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifier.notifications))
	}
}

func TestRunCatchUpNothingDue(t *testing.T) {
	today := date(2025, 6, 10)
	recurringRepo := &fakeRecurringRepo{expenses: []*entity.RecurringExpense{
		newRecurring("تأمين", entity.FrequencyYearly, date(2025, 11, 1)),
	}}
	transactionRepo := &fakeTransactionRepo{}
	notifier := &fakeNotifier{}

	uc := NewRunCatchUpUseCase(recurringRepo, transactionRepo, &fakeCatchUpRunRepo{}, notifier)
	output, err := uc.Execute(context.Background(), RunCatchUpInput{Today: today})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Generated) != 0 || len(output.Upcoming) != 0 {
		t.Errorf("expected empty result, got %d generated, %d upcoming", len(output.Generated), len(output.Upcoming))
	}
	if len(transactionRepo.batches) != 0 {
		t.Errorf("expected no transaction writes when nothing is due")
	}
	if len(notifier.notifications) != 0 {
		t.Errorf("expected no notification when nothing is due")
	}
}

func TestRunCatchUpIsolatesFailures(t *testing.T) {
	today := date(2025, 6, 10)
	broken := newRecurring("مكرر تالف", entity.FrequencyMonthly, date(2025, 4, 10))
	broken.Frequency = entity.Frequency("WEEKLY") // unknown frequency
	healthy := newRecurring("رواتب", entity.FrequencyMonthly, date(2025, 5, 10))

	recurringRepo := &fakeRecurringRepo{expenses: []*entity.RecurringExpense{broken, healthy}}
	transactionRepo := &fakeTransactionRepo{}

	uc := NewRunCatchUpUseCase(recurringRepo, transactionRepo, &fakeCatchUpRunRepo{}, nil)
	output, err := uc.Execute(context.Background(), RunCatchUpInput{Today: today})
	if err != nil {
		t.Fatalf("expected per-obligation isolation, got run-level error: %v", err)
	}

	if output.Failed != 1 {
		t.Errorf("expected 1 failed obligation, got %d", output.Failed)
	}
	if len(output.Generated) != 1 {
		t.Fatalf("expected the healthy obligation to generate 1 transaction, got %d", len(output.Generated))
	}
	if !healthy.NextDueDate.Equal(date(2025, 6, 10)) {
		t.Errorf("expected healthy obligation advanced, got %s", healthy.NextDueDate)
	}
}

func TestRunCatchUpSkipsTransactionsWhenUpdateFails(t *testing.T) {
	today := date(2025, 6, 10)
	failing := newRecurring("فشل الحفظ", entity.FrequencyMonthly, date(2025, 5, 10))

	recurringRepo := &fakeRecurringRepo{
		expenses:      []*entity.RecurringExpense{failing},
		failUpdateFor: failing.ID,
	}
	transactionRepo := &fakeTransactionRepo{}

	uc := NewRunCatchUpUseCase(recurringRepo, transactionRepo, &fakeCatchUpRunRepo{}, nil)
	output, err := uc.Execute(context.Background(), RunCatchUpInput{Today: today})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Failed != 1 {
		t.Errorf("expected 1 failure, got %d", output.Failed)
	}
	if len(output.Generated) != 0 || len(transactionRepo.batches) != 0 {
		t.Errorf("transactions must not be appended when the obligation update failed")
	}
}
