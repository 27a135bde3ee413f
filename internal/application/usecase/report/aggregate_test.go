package report

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/khazna-app/backend/internal/domain/entity"
	domainerror "github.com/khazna-app/backend/internal/domain/error"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func rate(value int64) decimal.Decimal {
	return decimal.NewFromInt(value)
}

func revenueUSD(amount int64, category entity.Category, day time.Time) *entity.Transaction {
	return entity.NewTransaction(
		entity.TransactionTypeRevenue,
		decimal.NewFromInt(amount),
		entity.CurrencyUSD,
		day,
		"test revenue",
		category,
	)
}

func expenseEGP(amount int64, snapshotRate int64, category entity.Category, day time.Time) *entity.Transaction {
	snapshot := decimal.NewFromInt(snapshotRate)
	tx := entity.NewTransaction(
		entity.TransactionTypeExpense,
		decimal.NewFromInt(amount),
		entity.CurrencyEGP,
		day,
		"test expense",
		category,
	)
	tx.ExchangeRate = &snapshot
	return tx
}

func TestComputeTotals(t *testing.T) {
	transactions := []*entity.Transaction{
		revenueUSD(1000, entity.CategoryGeneralRevenue, date(2025, 6, 1)),
		revenueUSD(500, entity.CategoryZakat, date(2025, 6, 2)),
		// 5000 EGP at snapshot rate 50 = 100 USD
		expenseEGP(5000, 50, entity.CategorySalaries, date(2025, 6, 3)),
	}

	totals, err := ComputeTotals(transactions, rate(48))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !totals.TotalRevenue.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("expected revenue 1500, got %s", totals.TotalRevenue)
	}
	if !totals.TotalExpense.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected expense 100, got %s", totals.TotalExpense)
	}
	if !totals.Balance.Equal(decimal.NewFromInt(1400)) {
		t.Errorf("expected balance 1400, got %s", totals.Balance)
	}
}

func TestComputeTotalsEmptyCollection(t *testing.T) {
	totals, err := ComputeTotals(nil, rate(48))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !totals.Balance.IsZero() || !totals.TotalRevenue.IsZero() || !totals.TotalExpense.IsZero() {
		t.Errorf("expected all-zero totals, got %+v", totals)
	}
}

func TestComputeTotalsAbortsOnBadRate(t *testing.T) {
	// EGP revenue has no snapshot, so the zero global rate is used and rejected.
	egpRevenue := entity.NewTransaction(
		entity.TransactionTypeRevenue,
		decimal.NewFromInt(480),
		entity.CurrencyEGP,
		date(2025, 6, 1),
		"test revenue",
		entity.CategoryGeneralRevenue,
	)

	_, err := ComputeTotals([]*entity.Transaction{egpRevenue}, decimal.Zero)
	if !errors.Is(err, domainerror.ErrNonPositiveRate) {
		t.Fatalf("expected ErrNonPositiveRate, got %v", err)
	}
}

func TestComputeByCategoryFiltersAndOrders(t *testing.T) {
	transactions := []*entity.Transaction{
		expenseEGP(4800, 48, entity.CategoryUtilities, date(2025, 6, 1)),  // 100 USD
		expenseEGP(9600, 48, entity.CategorySalaries, date(2025, 6, 2)),   // 200 USD
		expenseEGP(4800, 48, entity.CategorySalaries, date(2025, 6, 3)),   // 100 USD
		revenueUSD(999, entity.CategoryGeneralRevenue, date(2025, 6, 4)),  // wrong type, excluded
	}

	result, err := ComputeByCategory(transactions, rate(48), entity.TransactionTypeExpense)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result) != 2 {
		t.Fatalf("expected 2 categories with activity, got %d", len(result))
	}
	// Salaries is declared before Utilities in the expense enumeration.
	if result[0].Category != entity.CategorySalaries || !result[0].Amount.Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected salaries 300 first, got %s %s", result[0].Category, result[0].Amount)
	}
	if result[1].Category != entity.CategoryUtilities || !result[1].Amount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected utilities 100 second, got %s %s", result[1].Category, result[1].Amount)
	}
}

func TestComputeByCategoryOmitsInactiveCategories(t *testing.T) {
	result, err := ComputeByCategory(nil, rate(48), entity.TransactionTypeRevenue)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("expected no rows for an empty collection, got %d", len(result))
	}
}

func TestComputeMonthlyTrend(t *testing.T) {
	reference := date(2025, 6, 15)
	transactions := []*entity.Transaction{
		revenueUSD(100, entity.CategoryGeneralRevenue, date(2025, 1, 5)),
		revenueUSD(200, entity.CategoryGeneralRevenue, date(2025, 6, 1)),
		expenseEGP(4800, 48, entity.CategorySalaries, date(2025, 6, 20)),
		revenueUSD(999, entity.CategoryGeneralRevenue, date(2024, 12, 31)), // outside window
		revenueUSD(999, entity.CategoryGeneralRevenue, date(2025, 7, 1)),   // outside window
	}

	buckets, err := ComputeMonthlyTrend(transactions, rate(48), 6, reference)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(buckets) != 6 {
		t.Fatalf("expected 6 buckets, got %d", len(buckets))
	}
	if buckets[0].Year != 2025 || buckets[0].Month != time.January {
		t.Fatalf("expected oldest bucket 2025-01, got %d-%s", buckets[0].Year, buckets[0].Month)
	}
	if buckets[5].Year != 2025 || buckets[5].Month != time.June {
		t.Fatalf("expected newest bucket 2025-06, got %d-%s", buckets[5].Year, buckets[5].Month)
	}

	if !buckets[0].Revenue.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected January revenue 100, got %s", buckets[0].Revenue)
	}
	if !buckets[5].Revenue.Equal(decimal.NewFromInt(200)) {
		t.Errorf("expected June revenue 200, got %s", buckets[5].Revenue)
	}
	if !buckets[5].Expense.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected June expense 100, got %s", buckets[5].Expense)
	}
	for i := 1; i < 5; i++ {
		if !buckets[i].Revenue.IsZero() || !buckets[i].Expense.IsZero() {
			t.Errorf("expected empty bucket at %d-%s", buckets[i].Year, buckets[i].Month)
		}
	}
}

func TestComputeMonthlyTrendCrossesYearBoundary(t *testing.T) {
	buckets, err := ComputeMonthlyTrend(nil, rate(48), 6, date(2025, 2, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if buckets[0].Year != 2024 || buckets[0].Month != time.September {
		t.Errorf("expected oldest bucket 2024-09, got %d-%s", buckets[0].Year, buckets[0].Month)
	}
	if buckets[5].Year != 2025 || buckets[5].Month != time.February {
		t.Errorf("expected newest bucket 2025-02, got %d-%s", buckets[5].Year, buckets[5].Month)
	}
}

func TestComputeBudgetVsActual(t *testing.T) {
	transactions := []*entity.Transaction{
		expenseEGP(4800, 48, entity.CategorySalaries, date(2025, 6, 5)),  // 100 USD
		expenseEGP(9600, 48, entity.CategorySalaries, date(2025, 6, 20)), // 200 USD
		expenseEGP(4800, 48, entity.CategoryUtilities, date(2025, 6, 8)), // 100 USD
		expenseEGP(4800, 48, entity.CategorySalaries, date(2025, 5, 31)), // before period
		revenueUSD(500, entity.CategoryGeneralRevenue, date(2025, 6, 10)),
	}
	budgets := []*entity.Budget{
		entity.NewBudget(entity.CategorySalaries, decimal.NewFromInt(250)),
		entity.NewBudget(entity.CategoryUtilities, decimal.NewFromInt(400)),
	}

	lines, err := ComputeBudgetVsActual(transactions, budgets, rate(48), date(2025, 6, 1), date(2025, 6, 30))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(lines) != 2 {
		t.Fatalf("expected 2 budget lines, got %d", len(lines))
	}

	salaries := lines[0]
	if salaries.Category != entity.CategorySalaries {
		t.Fatalf("expected salaries line first, got %s", salaries.Category)
	}
	if !salaries.Actual.Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected salaries actual 300, got %s", salaries.Actual)
	}
	if !salaries.Remaining.Equal(decimal.NewFromInt(-50)) {
		t.Errorf("expected overspend remaining -50, got %s", salaries.Remaining)
	}
	if !salaries.PercentUsed.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected percent used capped at 100, got %s", salaries.PercentUsed)
	}

	utilities := lines[1]
	if !utilities.Actual.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected utilities actual 100, got %s", utilities.Actual)
	}
	if !utilities.Remaining.Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected utilities remaining 300, got %s", utilities.Remaining)
	}
	if !utilities.PercentUsed.Equal(decimal.NewFromInt(25)) {
		t.Errorf("expected utilities percent used 25, got %s", utilities.PercentUsed)
	}
}

func TestComputeBudgetVsActualZeroBudget(t *testing.T) {
	transactions := []*entity.Transaction{
		expenseEGP(4800, 48, entity.CategorySalaries, date(2025, 6, 5)),
	}
	budgets := []*entity.Budget{
		entity.NewBudget(entity.CategorySalaries, decimal.Zero),
	}

	lines, err := ComputeBudgetVsActual(transactions, budgets, rate(48), date(2025, 6, 1), date(2025, 6, 30))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if !lines[0].PercentUsed.IsZero() {
		t.Errorf("expected zero percent for a zero budget, got %s", lines[0].PercentUsed)
	}
	if !lines[0].Remaining.Equal(decimal.NewFromInt(-100)) {
		t.Errorf("expected remaining -100, got %s", lines[0].Remaining)
	}
}
