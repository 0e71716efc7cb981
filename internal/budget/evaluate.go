package budget

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/peopleperf/dailyowo/internal/category"
	"github.com/peopleperf/dailyowo/internal/transaction"
)

// Status is the human-readable band a health score falls into.
type Status string

const (
	StatusExcellent Status = "excellent"
	StatusGood      Status = "good"
	StatusFair      Status = "fair"
	StatusPoor      Status = "poor"
)

// Health is the 0-100 composite adherence score with its band and
// template suggestions.
type Health struct {
	Score       int
	Status      Status
	Suggestions []string
}

// Severity classifies how far over budget a category is.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Alert flags a single over-budget category.
type Alert struct {
	Category string
	Overage  decimal.Decimal
	Severity Severity
}

// Report is the full spend-versus-budget evaluation. It is derived from
// scratch on every call and carries no identity of its own.
type Report struct {
	CurrentBudget  *Budget
	TotalIncome    decimal.Decimal
	TotalAllocated decimal.Decimal
	TotalSpent     decimal.Decimal
	Unallocated    decimal.Decimal
	Health         Health
	Alerts         []Alert
}

// Evaluate computes spending per category and the overall budget health for
// the given transactions. A nil budget yields the zeroed sentinel report
// rather than an error. Income is summed across all supplied transactions;
// callers wanting period totals pre-filter the list.
func Evaluate(txs []transaction.Transaction, b *Budget) Report {
	if b == nil {
		return Report{
			TotalIncome:    decimal.Zero,
			TotalAllocated: decimal.Zero,
			TotalSpent:     decimal.Zero,
			Unallocated:    decimal.Zero,
			Health:         Health{Score: 0, Status: StatusPoor},
		}
	}

	totalIncome := transaction.SumByType(txs, transaction.TypeIncome)

	spentByBucket := make(map[category.Bucket]decimal.Decimal)

	for _, t := range txs {
		if t.Type != transaction.TypeExpense {
			continue
		}

		bucket := category.Classify(t.Category)
		spentByBucket[bucket] = spentByBucket[bucket].Add(t.Amount)
	}

	// Work on a copy so the caller's budget keeps only stored fields.
	eval := *b
	eval.Categories = append([]Category(nil), b.Categories...)

	totalAllocated := decimal.Zero
	totalSpent := decimal.Zero

	for i := range eval.Categories {
		c := &eval.Categories[i]
		c.Spent = spentByBucket[c.Bucket]
		c.OverBudget = c.Spent.GreaterThan(c.Allocated)

		totalAllocated = totalAllocated.Add(c.Allocated)
		totalSpent = totalSpent.Add(c.Spent)
	}

	report := Report{
		CurrentBudget:  &eval,
		TotalIncome:    totalIncome,
		TotalAllocated: totalAllocated,
		TotalSpent:     totalSpent,
		Unallocated:    totalIncome.Sub(totalAllocated),
	}

	report.Health = health(&eval, totalIncome, totalAllocated, totalSpent)
	report.Alerts = alerts(&eval)

	return report
}

// health weighs allocation closeness (40%), the fraction of categories over
// budget (35%) and the spend-to-income ratio (25%) into one 0-100 score.
func health(b *Budget, income, allocated, spent decimal.Decimal) Health {
	var allocComponent, overComponent, spendComponent float64

	if income.IsPositive() {
		ratio := allocated.Div(income).InexactFloat64()
		if ratio <= 1 {
			allocComponent = ratio
		} else {
			allocComponent = max(0, 1-(ratio-1))
		}

		spendRatio := spent.Div(income).InexactFloat64()
		spendComponent = max(0, 1-min(1, spendRatio))
	}

	overCount := 0

	for _, c := range b.Categories {
		if c.OverBudget {
			overCount++
		}
	}

	if n := len(b.Categories); n > 0 {
		overComponent = 1 - float64(overCount)/float64(n)
	}

	score := int(100*(0.40*allocComponent+0.35*overComponent+0.25*spendComponent) + 0.5)
	score = min(100, max(0, score))

	return Health{
		Score:       score,
		Status:      statusFor(score),
		Suggestions: suggestions(b, income, allocated, spent),
	}
}

func statusFor(score int) Status {
	switch {
	case score >= 85:
		return StatusExcellent
	case score >= 70:
		return StatusGood
	case score >= 55:
		return StatusFair
	default:
		return StatusPoor
	}
}

func suggestions(b *Budget, income, allocated, spent decimal.Decimal) []string {
	var out []string

	for _, c := range b.Categories {
		if c.OverBudget {
			overage := c.Spent.Sub(c.Allocated)
			out = append(out, fmt.Sprintf("Reduce %s spending: %s over budget", c.Name, overage.StringFixed(2)))
		}
	}

	if unallocated := income.Sub(allocated); unallocated.IsPositive() {
		out = append(out, fmt.Sprintf("Allocate the remaining %s of income to a category", unallocated.StringFixed(2)))
	}

	if spent.GreaterThan(income) {
		out = append(out, "Spending exceeds income for this period")
	}

	if len(out) == 0 {
		out = append(out, "Budget is on track")
	}

	return out
}

// alerts emits one alert per over-budget category. Expenses whose bucket has
// no matching budget category raise no alert even though they were spent;
// the category mapping is authoritative for both spent totals and alerts.
func alerts(b *Budget) []Alert {
	var out []Alert

	for _, c := range b.Categories {
		if !c.OverBudget {
			continue
		}

		overage := c.Spent.Sub(c.Allocated)
		severity := SeverityCritical

		if c.Allocated.IsPositive() {
			pct := overage.Div(c.Allocated).Mul(decimal.NewFromInt(100)).InexactFloat64()
			switch {
			case pct >= 50:
				severity = SeverityCritical
			case pct >= 20:
				severity = SeverityWarning
			default:
				severity = SeverityInfo
			}
		}

		out = append(out, Alert{Category: c.Name, Overage: overage, Severity: severity})
	}

	return out
}
