// Package networth aggregates asset and liability transactions into a
// point-in-time net worth figure and derives savings-goal progress.
package networth

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/peopleperf/dailyowo/internal/transaction"
)

// Options carries the auxiliary inputs for a net worth calculation.
// PriorNetWorth is an externally supplied historical snapshot; when zero the
// growth percentage defaults to 0 rather than failing.
type Options struct {
	AsOf            time.Time
	MonthlyExpenses decimal.Decimal
	PriorNetWorth   decimal.Decimal
}

// Summary is the derived net worth report.
type Summary struct {
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	NetWorth         decimal.Decimal
	SavingsGoals     []Goal
	GrowthPercentage float64
}

// Calculate sums assets and liabilities across the supplied transactions.
// No period filtering is applied beyond the AsOf cutoff; callers wanting a
// narrower window pre-filter the list.
func Calculate(txs []transaction.Transaction, opts Options) Summary {
	scoped := cutoff(txs, opts.AsOf)

	assets := transaction.SumByType(scoped, transaction.TypeAsset)
	liabilities := transaction.SumByType(scoped, transaction.TypeLiability)
	net := assets.Sub(liabilities)

	growth := 0.0
	if !opts.PriorNetWorth.IsZero() {
		growth = net.Sub(opts.PriorNetWorth).
			Div(opts.PriorNetWorth).
			Mul(decimal.NewFromInt(100)).
			InexactFloat64()
	}

	return Summary{
		TotalAssets:      assets,
		TotalLiabilities: liabilities,
		NetWorth:         net,
		SavingsGoals:     SavingsGoals(txs, opts.AsOf, opts.MonthlyExpenses),
		GrowthPercentage: growth,
	}
}

// cutoff drops transactions dated after asOf. A zero asOf means "now is
// unbounded" and keeps everything.
func cutoff(txs []transaction.Transaction, asOf time.Time) []transaction.Transaction {
	if asOf.IsZero() {
		return txs
	}

	out := make([]transaction.Transaction, 0, len(txs))

	for _, t := range txs {
		if !t.Date.After(asOf) {
			out = append(out, t)
		}
	}

	return out
}
