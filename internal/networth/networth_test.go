package networth_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopleperf/dailyowo/internal/networth"
	"github.com/peopleperf/dailyowo/internal/transaction"
)

func tx(typ transaction.Type, amount float64, cat, desc string, date time.Time) transaction.Transaction {
	return transaction.Transaction{
		Type:        typ,
		Amount:      decimal.NewFromFloat(amount),
		Category:    cat,
		Description: desc,
		Date:        date,
	}
}

func TestCalculate(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	txs := []transaction.Transaction{
		tx(transaction.TypeAsset, 10000, "savings", "house deposit", date),
		tx(transaction.TypeAsset, 7500, "investment", "brokerage", date),
		tx(transaction.TypeLiability, 2000, "credit-card", "card balance", date),
		tx(transaction.TypeIncome, 5000, "salary", "salary", date),
		tx(transaction.TypeExpense, 1200, "rent", "rent", date),
	}

	summary := networth.Calculate(txs, networth.Options{})

	assert.True(t, summary.TotalAssets.Equal(decimal.NewFromInt(17500)))
	assert.True(t, summary.TotalLiabilities.Equal(decimal.NewFromInt(2000)))
	assert.True(t, summary.NetWorth.Equal(decimal.NewFromInt(15500)))
	assert.Zero(t, summary.GrowthPercentage)
}

func TestCalculate_AsOfCutoff(t *testing.T) {
	asOf := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	txs := []transaction.Transaction{
		tx(transaction.TypeAsset, 1000, "savings", "", asOf.AddDate(0, 0, -1)),
		tx(transaction.TypeAsset, 9999, "savings", "", asOf.AddDate(0, 0, 1)),
	}

	summary := networth.Calculate(txs, networth.Options{AsOf: asOf})

	assert.True(t, summary.TotalAssets.Equal(decimal.NewFromInt(1000)))
}

func TestCalculate_Growth(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	txs := []transaction.Transaction{
		tx(transaction.TypeAsset, 11000, "savings", "", date),
	}

	summary := networth.Calculate(txs, networth.Options{
		PriorNetWorth: decimal.NewFromInt(10000),
	})

	assert.InDelta(t, 10.0, summary.GrowthPercentage, 0.001)
}

func TestCalculate_EmptyHistory(t *testing.T) {
	summary := networth.Calculate(nil, networth.Options{})

	assert.True(t, summary.NetWorth.IsZero())
	assert.Zero(t, summary.GrowthPercentage)
	require.Len(t, summary.SavingsGoals, 2)

	for _, g := range summary.SavingsGoals {
		assert.True(t, g.CurrentAmount.IsZero())
		assert.Zero(t, g.Progress)
		assert.False(t, g.IsCompleted)
	}
}
