package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/peopleperf/dailyowo/internal/networth"
	"github.com/peopleperf/dailyowo/internal/transaction"
)

// debtRatioThreshold is the debt-to-income percentage above which the
// debt-reduction recommendation triggers.
const debtRatioThreshold = 36.0

// Breakdown holds the three 0-100 subscores that feed the overall score.
type Breakdown struct {
	NetWorth    float64
	SavingsRate float64
	DebtRatio   float64
}

// Health is the composite financial health report.
type Health struct {
	Overall         int
	Breakdown       Breakdown
	Recommendations []string
}

// FinancialHealth combines net worth trend, savings rate and debt-to-income
// ratio into one 0-100 score with threshold-keyed recommendations. Weights
// are fixed: net worth 40%, savings rate 35%, debt ratio 25%.
func FinancialHealth(txs []transaction.Transaction, start, end time.Time) Health {
	income := Income(txs, start, end)
	expenses := Expenses(txs, start, end)
	savings := Savings(txs, start, end)

	worth := networth.Calculate(txs, networth.Options{
		AsOf:            end,
		MonthlyExpenses: expenses.MonthlyExpenses,
	})

	breakdown := Breakdown{
		NetWorth:    netWorthScore(worth.NetWorth, expenses.MonthlyExpenses),
		SavingsRate: savingsRateScore(savings.Rate),
		DebtRatio:   debtScore(debtRatio(worth.TotalLiabilities, income.MonthlyIncome)),
	}

	overall := int(0.40*breakdown.NetWorth + 0.35*breakdown.SavingsRate + 0.25*breakdown.DebtRatio + 0.5)
	overall = min(100, max(0, overall))

	return Health{
		Overall:         overall,
		Breakdown:       breakdown,
		Recommendations: recommendations(worth, savings, debtRatio(worth.TotalLiabilities, income.MonthlyIncome)),
	}
}

// netWorthScore scales months of expenses covered by net worth: twelve or
// more months is full marks.
func netWorthScore(netWorth, monthlyExpenses decimal.Decimal) float64 {
	if !monthlyExpenses.IsPositive() {
		if netWorth.IsPositive() {
			return 100
		}

		return 0
	}

	months := netWorth.Div(monthlyExpenses).InexactFloat64()

	return min(100, max(0, months/12*100))
}

// savingsRateScore treats a 20% savings rate as full marks.
func savingsRateScore(rate float64) float64 {
	return min(100, max(0, rate/20*100))
}

// debtRatio is total liabilities over annualised income, as a percentage.
// With no income it saturates at 100 when any liabilities exist.
func debtRatio(liabilities, monthlyIncome decimal.Decimal) float64 {
	if !monthlyIncome.IsPositive() {
		if liabilities.IsPositive() {
			return 100
		}

		return 0
	}

	annualIncome := monthlyIncome.Mul(decimal.NewFromInt(12))

	return liabilities.Div(annualIncome).Mul(decimal.NewFromInt(100)).InexactFloat64()
}

// debtScore maps a debt ratio onto 0-100: ratio 0 scores 100, 72% or more
// scores 0, the 36% threshold lands at 50.
func debtScore(ratio float64) float64 {
	return min(100, max(0, 100-ratio*100/72))
}

func recommendations(worth networth.Summary, savings SavingsReport, ratio float64) []string {
	var out []string

	if ratio > debtRatioThreshold {
		out = append(out, "Debt-to-income ratio is above 36%: prioritize paying down liabilities")
	}

	if savings.Rate < 10 {
		out = append(out, "Savings rate is below 10%: set up an automatic transfer to savings")
	}

	if worth.NetWorth.IsNegative() {
		out = append(out, "Net worth is negative: liabilities exceed assets")
	}

	if len(out) == 0 {
		out = append(out, "Financial position looks healthy: keep contributions steady")
	}

	return out
}
