package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/peopleperf/dailyowo/internal/report"
	"github.com/peopleperf/dailyowo/internal/transaction"
)

var (
	marchStart = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	marchEnd   = time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
)

func tx(typ transaction.Type, amount float64, cat string, date time.Time) transaction.Transaction {
	return transaction.Transaction{
		Type:     typ,
		Amount:   decimal.NewFromFloat(amount),
		Category: cat,
		Date:     date,
	}
}

func march(day int) time.Time {
	return time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC)
}

func february(day int) time.Time {
	return time.Date(2024, 2, day, 0, 0, 0, 0, time.UTC)
}

func TestIncome(t *testing.T) {
	txs := []transaction.Transaction{
		tx(transaction.TypeIncome, 5000, "Salary", march(1)),
		tx(transaction.TypeIncome, 1000, "freelance", march(15)),
		tx(transaction.TypeExpense, 1200, "rent", march(1)),
		// Prior window.
		tx(transaction.TypeIncome, 5000, "salary", february(1)),
		// Outside both windows.
		tx(transaction.TypeIncome, 9999, "salary", time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)),
	}

	rep := report.Income(txs, marchStart, marchEnd)

	assert.True(t, rep.Total.Equal(decimal.NewFromInt(6000)))
	assert.True(t, rep.ByCategory["salary"].Equal(decimal.NewFromInt(5000)), "category keys are normalized")
	assert.True(t, rep.ByCategory["freelance"].Equal(decimal.NewFromInt(1000)))
	assert.True(t, rep.MonthlyIncome.Equal(decimal.NewFromInt(6000)), "30-day period normalizes to itself")
	assert.InDelta(t, 20.0, rep.GrowthPercentage, 0.001)
}

func TestIncome_NoPriorWindow(t *testing.T) {
	txs := []transaction.Transaction{
		tx(transaction.TypeIncome, 5000, "salary", march(1)),
	}

	rep := report.Income(txs, marchStart, marchEnd)

	assert.Zero(t, rep.GrowthPercentage)
}

func TestExpenses(t *testing.T) {
	txs := []transaction.Transaction{
		tx(transaction.TypeExpense, 1200, "rent", march(1)),
		tx(transaction.TypeExpense, 50, "internet", march(5)),
		tx(transaction.TypeExpense, 300, "restaurants", march(10)),
		tx(transaction.TypeExpense, 150, "entertainment", march(12)),
		// No configured nature: counts in Total but no nature bucket.
		tx(transaction.TypeExpense, 100, "misc", march(20)),
		tx(transaction.TypeIncome, 5000, "salary", march(1)),
		// Prior window.
		tx(transaction.TypeExpense, 2000, "rent", february(1)),
	}

	rep := report.Expenses(txs, marchStart, marchEnd)

	assert.True(t, rep.Total.Equal(decimal.NewFromInt(1800)))
	assert.True(t, rep.ByNature.Essential.Equal(decimal.NewFromInt(1200)))
	assert.True(t, rep.ByNature.Fixed.Equal(decimal.NewFromInt(50)))
	assert.True(t, rep.ByNature.Variable.Equal(decimal.NewFromInt(300)))
	assert.True(t, rep.ByNature.Discretionary.Equal(decimal.NewFromInt(150)))
	assert.True(t, rep.ByCategory["misc"].Equal(decimal.NewFromInt(100)))
	assert.InDelta(t, -10.0, rep.GrowthPercentage, 0.001)
}

func TestSavings(t *testing.T) {
	txs := []transaction.Transaction{
		tx(transaction.TypeIncome, 5000, "salary", march(1)),
		tx(transaction.TypeExpense, 3000, "rent", march(1)),
		tx(transaction.TypeAsset, 500, "savings", march(5)),
		tx(transaction.TypeAsset, 200, "emergency-fund", march(10)),
		// Assets outside the savings categories are not savings transfers.
		tx(transaction.TypeAsset, 1000, "investment", march(15)),
		// Streak months.
		tx(transaction.TypeIncome, 5000, "salary", february(1)),
		tx(transaction.TypeExpense, 2000, "rent", february(1)),
		tx(transaction.TypeIncome, 5000, "salary", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		tx(transaction.TypeExpense, 1000, "rent", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
	}

	rep := report.Savings(txs, marchStart, marchEnd)

	// Cash-flow rate and category-based total deliberately disagree.
	assert.InDelta(t, 40.0, rep.Rate, 0.001)
	assert.True(t, rep.TotalSavings.Equal(decimal.NewFromInt(700)))
	assert.True(t, rep.MonthlySavings.Equal(decimal.NewFromInt(2000)))
	assert.Equal(t, 2, rep.Streak)
}

func TestSavings_NoIncome(t *testing.T) {
	txs := []transaction.Transaction{
		tx(transaction.TypeExpense, 500, "rent", march(1)),
	}

	rep := report.Savings(txs, marchStart, marchEnd)

	assert.Zero(t, rep.Rate)
	assert.Equal(t, 0, rep.Streak)
}

func TestSavings_StreakBrokenByDeficitMonth(t *testing.T) {
	txs := []transaction.Transaction{
		// February saved, January overspent, December saved.
		tx(transaction.TypeIncome, 5000, "salary", february(1)),
		tx(transaction.TypeExpense, 2000, "rent", february(1)),
		tx(transaction.TypeIncome, 1000, "salary", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		tx(transaction.TypeExpense, 3000, "rent", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		tx(transaction.TypeIncome, 5000, "salary", time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)),
	}

	rep := report.Savings(txs, marchStart, marchEnd)

	assert.Equal(t, 1, rep.Streak)
}

func TestFinancialHealth(t *testing.T) {
	txs := []transaction.Transaction{
		tx(transaction.TypeIncome, 6000, "salary", march(1)),
		tx(transaction.TypeExpense, 1000, "rent", march(1)),
		tx(transaction.TypeAsset, 20000, "savings", march(1)),
		tx(transaction.TypeLiability, 9000, "student-loan", march(1)),
	}

	h := report.FinancialHealth(txs, marchStart, marchEnd)

	// Net worth 11000 covers 11 months of expenses.
	assert.InDelta(t, 91.667, h.Breakdown.NetWorth, 0.01)
	// Savings rate is far above the 20% full-marks threshold.
	assert.InDelta(t, 100.0, h.Breakdown.SavingsRate, 0.001)
	// Debt ratio 12.5% of annual income.
	assert.InDelta(t, 82.639, h.Breakdown.DebtRatio, 0.01)
	assert.Equal(t, 92, h.Overall)
	assert.Equal(t, []string{"Financial position looks healthy: keep contributions steady"}, h.Recommendations)
}

func TestFinancialHealth_Indebted(t *testing.T) {
	txs := []transaction.Transaction{
		tx(transaction.TypeIncome, 1000, "salary", march(1)),
		tx(transaction.TypeExpense, 950, "rent", march(1)),
		tx(transaction.TypeLiability, 30000, "student-loan", march(1)),
	}

	h := report.FinancialHealth(txs, marchStart, marchEnd)

	assert.Contains(t, h.Recommendations, "Debt-to-income ratio is above 36%: prioritize paying down liabilities")
	assert.Contains(t, h.Recommendations, "Savings rate is below 10%: set up an automatic transfer to savings")
	assert.Contains(t, h.Recommendations, "Net worth is negative: liabilities exceed assets")
}

func TestFinancialHealth_Empty(t *testing.T) {
	h := report.FinancialHealth(nil, marchStart, marchEnd)

	// No debt scores full debt marks; everything else bottoms out.
	assert.Zero(t, h.Breakdown.NetWorth)
	assert.Zero(t, h.Breakdown.SavingsRate)
	assert.InDelta(t, 100.0, h.Breakdown.DebtRatio, 0.001)
	assert.Equal(t, 25, h.Overall)
}
