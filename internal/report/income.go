package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/peopleperf/dailyowo/internal/category"
	"github.com/peopleperf/dailyowo/internal/transaction"
)

// IncomeReport summarises income in [start, end] inclusive.
type IncomeReport struct {
	Total            decimal.Decimal
	ByCategory       map[string]decimal.Decimal
	MonthlyIncome    decimal.Decimal
	GrowthPercentage float64
}

// Income totals income transactions in the period, broken down by category,
// with a 30-day normalised monthly figure and growth versus the preceding
// window of equal length.
func Income(txs []transaction.Transaction, start, end time.Time) IncomeReport {
	period := transaction.FilterPeriod(txs, start, end)

	total := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)

	for _, t := range period {
		if t.Type != transaction.TypeIncome {
			continue
		}

		total = total.Add(t.Amount)

		key := category.Normalize(t.Category)
		byCategory[key] = byCategory[key].Add(t.Amount)
	}

	prior := sumWindow(txs, transaction.TypeIncome, priorWindowStart(start, end), start)

	return IncomeReport{
		Total:            total,
		ByCategory:       byCategory,
		MonthlyIncome:    monthlyNormalized(total, start, end),
		GrowthPercentage: growth(total, prior),
	}
}
