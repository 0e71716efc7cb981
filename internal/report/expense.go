package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/peopleperf/dailyowo/internal/category"
	"github.com/peopleperf/dailyowo/internal/transaction"
)

// NatureBreakdown splits period expenses into the mutually exclusive
// spending natures. Categories in none of the configured nature sets
// contribute to no bucket, so the four fields can sum to less than Total.
type NatureBreakdown struct {
	Essential     decimal.Decimal
	Fixed         decimal.Decimal
	Variable      decimal.Decimal
	Discretionary decimal.Decimal
}

// ExpenseReport summarises expenses in [start, end] inclusive.
type ExpenseReport struct {
	Total            decimal.Decimal
	ByCategory       map[string]decimal.Decimal
	ByNature         NatureBreakdown
	MonthlyExpenses  decimal.Decimal
	GrowthPercentage float64
}

// Expenses totals expense transactions in the period with per-category and
// per-nature breakdowns, a 30-day normalised monthly figure and growth
// versus the preceding window of equal length.
func Expenses(txs []transaction.Transaction, start, end time.Time) ExpenseReport {
	period := transaction.FilterPeriod(txs, start, end)

	total := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)

	var byNature NatureBreakdown

	for _, t := range period {
		if t.Type != transaction.TypeExpense {
			continue
		}

		total = total.Add(t.Amount)

		key := category.Normalize(t.Category)
		byCategory[key] = byCategory[key].Add(t.Amount)

		nature, ok := category.NatureOf(t.Category)
		if !ok {
			continue
		}

		switch nature {
		case category.NatureEssential:
			byNature.Essential = byNature.Essential.Add(t.Amount)
		case category.NatureFixed:
			byNature.Fixed = byNature.Fixed.Add(t.Amount)
		case category.NatureVariable:
			byNature.Variable = byNature.Variable.Add(t.Amount)
		case category.NatureDiscretionary:
			byNature.Discretionary = byNature.Discretionary.Add(t.Amount)
		}
	}

	prior := sumWindow(txs, transaction.TypeExpense, priorWindowStart(start, end), start)

	return ExpenseReport{
		Total:            total,
		ByCategory:       byCategory,
		ByNature:         byNature,
		MonthlyExpenses:  monthlyNormalized(total, start, end),
		GrowthPercentage: growth(total, prior),
	}
}
