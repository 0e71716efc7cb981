// Package report computes period-scoped income, expense and savings reports
// plus the composite financial health score. Every function is a pure
// transform over the supplied transaction list.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/peopleperf/dailyowo/internal/transaction"
)

var thirty = decimal.NewFromInt(30)

// periodDays is the length of [start, end] in whole days, floored at 1 so
// degenerate periods normalize instead of dividing by zero.
func periodDays(start, end time.Time) int64 {
	days := int64(end.Sub(start).Hours() / 24)
	if days < 1 {
		days = 1
	}

	return days
}

// monthlyNormalized scales a period total to a 30-day month:
// total / periodLengthInDays * 30. Deliberately not a calendar-month lookup.
func monthlyNormalized(total decimal.Decimal, start, end time.Time) decimal.Decimal {
	return total.Div(decimal.NewFromInt(periodDays(start, end))).Mul(thirty)
}

// growth is the percentage change against the prior window total, 0 when
// there is no prior total to compare against.
func growth(current, prior decimal.Decimal) float64 {
	if !prior.IsPositive() {
		return 0
	}

	return current.Sub(prior).Div(prior).Mul(decimal.NewFromInt(100)).InexactFloat64()
}

// sumWindow sums amounts of the given type dated in [start, end), exclusive
// on the right so adjacent windows never double count.
func sumWindow(txs []transaction.Transaction, typ transaction.Type, start, end time.Time) decimal.Decimal {
	total := decimal.Zero

	for _, t := range txs {
		if t.Type == typ && !t.Date.Before(start) && t.Date.Before(end) {
			total = total.Add(t.Amount)
		}
	}

	return total
}

// priorWindowStart returns the start of the window of equal length
// immediately preceding [start, end].
func priorWindowStart(start, end time.Time) time.Time {
	return start.Add(-end.Sub(start))
}
