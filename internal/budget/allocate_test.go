package budget_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopleperf/dailyowo/internal/budget"
	"github.com/peopleperf/dailyowo/internal/category"
)

func monthly(t *testing.T) budget.Period {
	t.Helper()
	return budget.NewPeriod(budget.FrequencyMonthly, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
}

func TestNewFromMethod_FiftyThirtyTwenty(t *testing.T) {
	income := decimal.NewFromInt(5000)

	b, err := budget.NewFromMethod(budget.Method{Type: budget.MethodFiftyThirtyTwenty}, income, monthly(t), "user-1")
	require.NoError(t, err)
	require.Len(t, b.Categories, 9)

	byName := make(map[string]decimal.Decimal)
	for _, c := range b.Categories {
		byName[c.Name] = c.Allocated
	}

	want := map[string]string{
		"Housing":        "1000",
		"Utilities":      "500",
		"Food":           "625",
		"Transportation": "375",
		"Entertainment":  "500",
		"Shopping":       "500",
		"Other":          "500",
		"Savings":        "500",
		"Retirement":     "500",
	}

	for name, amount := range want {
		assert.True(t, byName[name].Equal(decimal.RequireFromString(amount)),
			"%s: got %s want %s", name, byName[name], amount)
	}

	assert.True(t, b.TotalAllocated().Equal(income))
}

func TestNewFromMethod_ZeroBased(t *testing.T) {
	b, err := budget.NewFromMethod(budget.Method{Type: budget.MethodZeroBased}, decimal.NewFromInt(5000), monthly(t), "user-1")
	require.NoError(t, err)
	require.Len(t, b.Categories, 4)

	for _, c := range b.Categories {
		assert.True(t, c.Allocated.IsZero(), "%s should start unallocated", c.Name)
	}

	assert.True(t, b.TotalAllocated().IsZero())
}

func TestNewFromMethod_Custom(t *testing.T) {
	method := budget.Method{
		Type: budget.MethodCustom,
		Allocations: map[string]decimal.Decimal{
			"rent":      decimal.NewFromInt(1500),
			"groceries": decimal.NewFromInt(600),
			"unknown":   decimal.NewFromInt(100),
		},
	}

	b, err := budget.NewFromMethod(method, decimal.NewFromInt(5000), monthly(t), "user-1")
	require.NoError(t, err)
	require.Len(t, b.Categories, 3)

	// Keys are sorted, names title-cased, buckets classified.
	assert.Equal(t, "Groceries", b.Categories[0].Name)
	assert.Equal(t, category.BucketFood, b.Categories[0].Bucket)
	assert.Equal(t, "Rent", b.Categories[1].Name)
	assert.Equal(t, category.BucketHousing, b.Categories[1].Bucket)
	assert.Equal(t, "Unknown", b.Categories[2].Name)
	assert.Equal(t, category.BucketOther, b.Categories[2].Bucket)

	assert.True(t, b.TotalAllocated().Equal(decimal.NewFromInt(2200)))
}

func TestNewFromMethod_Envelope(t *testing.T) {
	_, err := budget.NewFromMethod(budget.Method{Type: budget.MethodEnvelope}, decimal.NewFromInt(5000), monthly(t), "user-1")
	assert.ErrorIs(t, err, budget.ErrUnsupportedMethod)
}

func TestNewFromMethod_ZeroIncome(t *testing.T) {
	b, err := budget.NewFromMethod(budget.Method{Type: budget.MethodFiftyThirtyTwenty}, decimal.Zero, monthly(t), "user-1")
	require.NoError(t, err)

	assert.True(t, b.TotalAllocated().IsZero())
}

func TestNewPeriod(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		frequency budget.Frequency
		wantEnd   time.Time
	}{
		{budget.FrequencyWeekly, time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)},
		{budget.FrequencyMonthly, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
		{budget.FrequencyAnnual, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(string(tt.frequency), func(t *testing.T) {
			p := budget.NewPeriod(tt.frequency, start)
			assert.Equal(t, start, p.StartDate)
			assert.Equal(t, tt.wantEnd, p.EndDate)
		})
	}
}
