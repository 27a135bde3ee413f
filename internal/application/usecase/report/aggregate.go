// Package report contains the aggregation engine: pure folds of the
// transaction collection into derived, reporting-currency views, plus the use
// cases that feed them from persistence.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/khazna-app/backend/internal/application/usecase/currency"
	"github.com/khazna-app/backend/internal/domain/entity"
)

// Totals is the dashboard headline aggregate, in USD.
type Totals struct {
	TotalRevenue decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}

// CategoryAmount is one category's summed USD amount.
type CategoryAmount struct {
	Category entity.Category
	Amount   decimal.Decimal
}

// MonthBucket is one month of the trend series.
type MonthBucket struct {
	Year    int
	Month   time.Month
	Revenue decimal.Decimal
	Expense decimal.Decimal
}

// BudgetLine is one category row of the budget-vs-actual report.
type BudgetLine struct {
	Category    entity.Category
	Budget      decimal.Decimal
	Actual      decimal.Decimal
	Remaining   decimal.Decimal // Negative remaining signals overspend, not an error
	PercentUsed decimal.Decimal // Capped at 100 for display
}

// ComputeTotals sums every transaction into revenue/expense totals and the
// resulting balance.
func ComputeTotals(transactions []*entity.Transaction, globalRate decimal.Decimal) (Totals, error) {
	totals := Totals{
		TotalRevenue: decimal.Zero,
		TotalExpense: decimal.Zero,
		Balance:      decimal.Zero,
	}

	for _, tx := range transactions {
		amount, err := currency.ToReportingAmount(tx, globalRate)
		if err != nil {
			return Totals{}, err
		}
		if tx.Type == entity.TransactionTypeRevenue {
			totals.TotalRevenue = totals.TotalRevenue.Add(amount)
		} else {
			totals.TotalExpense = totals.TotalExpense.Add(amount)
		}
	}

	totals.Balance = totals.TotalRevenue.Sub(totals.TotalExpense)
	return totals, nil
}

// ComputeByCategory filters transactions by type and groups their USD amounts
// by category. Categories appear in enumeration-definition order so reports
// are stable across runs; categories with no matching transaction are absent.
func ComputeByCategory(
	transactions []*entity.Transaction,
	globalRate decimal.Decimal,
	typeFilter entity.TransactionType,
) ([]CategoryAmount, error) {
	sums := make(map[entity.Category]decimal.Decimal)

	for _, tx := range transactions {
		if tx.Type != typeFilter {
			continue
		}
		amount, err := currency.ToReportingAmount(tx, globalRate)
		if err != nil {
			return nil, err
		}
		sums[tx.Category] = sums[tx.Category].Add(amount)
	}

	result := make([]CategoryAmount, 0, len(sums))
	for _, category := range entity.CategoriesForType(typeFilter) {
		if amount, ok := sums[category]; ok {
			result = append(result, CategoryAmount{Category: category, Amount: amount})
		}
	}
	return result, nil
}

// ComputeMonthlyTrend builds monthCount consecutive calendar-month buckets
// ending at referenceDate's month, oldest first, and accumulates each
// transaction into the bucket matching its own month and year. Transactions
// outside the window are dropped silently.
func ComputeMonthlyTrend(
	transactions []*entity.Transaction,
	globalRate decimal.Decimal,
	monthCount int,
	referenceDate time.Time,
) ([]MonthBucket, error) {
	buckets := make([]MonthBucket, 0, monthCount)
	index := make(map[string]int, monthCount)

	// First of the oldest month in the window.
	start := time.Date(referenceDate.Year(), referenceDate.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, -(monthCount - 1), 0)
	for i := 0; i < monthCount; i++ {
		m := start.AddDate(0, i, 0)
		buckets = append(buckets, MonthBucket{
			Year:    m.Year(),
			Month:   m.Month(),
			Revenue: decimal.Zero,
			Expense: decimal.Zero,
		})
		index[monthKey(m.Year(), m.Month())] = i
	}

	for _, tx := range transactions {
		i, ok := index[monthKey(tx.Date.Year(), tx.Date.Month())]
		if !ok {
			continue
		}
		amount, err := currency.ToReportingAmount(tx, globalRate)
		if err != nil {
			return nil, err
		}
		if tx.Type == entity.TransactionTypeRevenue {
			buckets[i].Revenue = buckets[i].Revenue.Add(amount)
		} else {
			buckets[i].Expense = buckets[i].Expense.Add(amount)
		}
	}

	return buckets, nil
}

func monthKey(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

var hundred = decimal.NewFromInt(100)

// ComputeBudgetVsActual compares budgeted and actual spending per expense
// category over [periodStart, periodEnd]. Every budgeted category gets a row
// in enumeration order. PercentUsed is capped at 100 for display; Remaining
// goes negative on overspend.
func ComputeBudgetVsActual(
	transactions []*entity.Transaction,
	budgets []*entity.Budget,
	globalRate decimal.Decimal,
	periodStart, periodEnd time.Time,
) ([]BudgetLine, error) {
	start := entity.DateOnly(periodStart)
	end := entity.DateOnly(periodEnd)

	actuals := make(map[entity.Category]decimal.Decimal)
	for _, tx := range transactions {
		if tx.Type != entity.TransactionTypeExpense {
			continue
		}
		if tx.Date.Before(start) || tx.Date.After(end) {
			continue
		}
		amount, err := currency.ToReportingAmount(tx, globalRate)
		if err != nil {
			return nil, err
		}
		actuals[tx.Category] = actuals[tx.Category].Add(amount)
	}

	budgetByCategory := make(map[entity.Category]decimal.Decimal, len(budgets))
	for _, b := range budgets {
		budgetByCategory[b.Category] = b.Amount
	}

	lines := make([]BudgetLine, 0, len(budgets))
	for _, category := range entity.ExpenseCategories() {
		budget, ok := budgetByCategory[category]
		if !ok {
			continue
		}

		actual := actuals[category]
		percentUsed := decimal.Zero
		if budget.GreaterThan(decimal.Zero) {
			percentUsed = actual.Div(budget).Mul(hundred)
			if percentUsed.GreaterThan(hundred) {
				percentUsed = hundred
			}
		}

		lines = append(lines, BudgetLine{
			Category:    category,
			Budget:      budget,
			Actual:      actual,
			Remaining:   budget.Sub(actual),
			PercentUsed: percentUsed,
		})
	}

	return lines, nil
}
