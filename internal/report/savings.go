package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/peopleperf/dailyowo/internal/category"
	"github.com/peopleperf/dailyowo/internal/transaction"
)

// maxStreakLookback bounds how many prior calendar months the streak
// computation walks back through.
const maxStreakLookback = 24

// SavingsReport carries the two deliberately distinct notions of savings:
// Rate is the cash-flow margin (income minus expenses over income) while
// TotalSavings is the period sum of asset transfers into savings categories.
// The two do not reconcile and must not be conflated.
type SavingsReport struct {
	Rate           float64
	TotalSavings   decimal.Decimal
	MonthlySavings decimal.Decimal
	Streak         int
}

// Savings computes the savings rate and asset-based savings total for
// [start, end] inclusive, plus the streak of consecutive prior calendar
// months with a positive savings rate.
func Savings(txs []transaction.Transaction, start, end time.Time) SavingsReport {
	period := transaction.FilterPeriod(txs, start, end)

	income := transaction.SumByType(period, transaction.TypeIncome)
	expenses := transaction.SumByType(period, transaction.TypeExpense)

	rate := 0.0
	if income.IsPositive() {
		rate = income.Sub(expenses).Div(income).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}

	totalSavings := decimal.Zero

	for _, t := range period {
		if t.Type == transaction.TypeAsset && category.IsSavings(t.Category) {
			totalSavings = totalSavings.Add(t.Amount)
		}
	}

	margin := income.Sub(expenses)

	return SavingsReport{
		Rate:           rate,
		TotalSavings:   totalSavings,
		MonthlySavings: monthlyNormalized(margin, start, end),
		Streak:         streak(txs, start),
	}
}

// streak counts consecutive calendar months before the month containing
// start where income exceeded expenses.
func streak(txs []transaction.Transaction, start time.Time) int {
	month := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())

	count := 0

	for i := 0; i < maxStreakLookback; i++ {
		month = month.AddDate(0, -1, 0)
		next := month.AddDate(0, 1, 0)

		income := sumWindow(txs, transaction.TypeIncome, month, next)
		expenses := sumWindow(txs, transaction.TypeExpense, month, next)

		if !income.IsPositive() || !income.GreaterThan(expenses) {
			break
		}

		count++
	}

	return count
}
