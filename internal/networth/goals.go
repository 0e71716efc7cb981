package networth

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/peopleperf/dailyowo/internal/category"
	"github.com/peopleperf/dailyowo/internal/transaction"
)

// GoalType identifies a derived savings goal.
type GoalType string

const (
	GoalEmergencyFund GoalType = "emergency-fund"
	GoalRetirement    GoalType = "retirement"
)

// Goal is a derived progress tracker. It is recomputed from transaction
// history on every call and never persisted.
type Goal struct {
	Type          GoalType
	Name          string
	CurrentAmount decimal.Decimal
	TargetAmount  decimal.Decimal
	Progress      float64
	IsCompleted   bool
}

var (
	minEmergencyTarget = decimal.NewFromInt(5000)
	retirementTarget   = decimal.NewFromInt(500000)
	sixMonths          = decimal.NewFromInt(6)
)

// SavingsGoals derives emergency-fund and retirement progress from the
// transaction history. Both goals are always returned, zeroed when nothing
// matches.
//
// A transaction contributes only when its category is whitelisted or its
// category/description carries a goal keyword. An asset with an unrelated
// category and no keyword contributes to neither goal.
func SavingsGoals(txs []transaction.Transaction, asOf time.Time, monthlyExpenses decimal.Decimal) []Goal {
	scoped := cutoff(txs, asOf)

	emergency := decimal.Zero
	retirement := decimal.Zero

	for _, t := range scoped {
		if t.Type != transaction.TypeAsset && t.Type != transaction.TypeExpense {
			continue
		}

		if contributesToEmergency(t) {
			emergency = emergency.Add(t.Amount)
		}

		if contributesToRetirement(t) {
			retirement = retirement.Add(t.Amount)
		}
	}

	emergencyTarget := decimal.Max(minEmergencyTarget, monthlyExpenses.Mul(sixMonths))

	return []Goal{
		newGoal(GoalEmergencyFund, "Emergency Fund", emergency, emergencyTarget),
		newGoal(GoalRetirement, "Retirement", retirement, retirementTarget),
	}
}

// contributesToEmergency matches asset transactions in the configured savings
// categories, plus any asset or expense transaction mentioning "emergency".
// Expense-type savings transfers count by design.
func contributesToEmergency(t transaction.Transaction) bool {
	if t.Type == transaction.TypeAsset && category.IsSavings(t.Category) {
		return true
	}

	return hasKeyword(t, "emergency")
}

func contributesToRetirement(t transaction.Transaction) bool {
	if category.IsRetirement(t.Category) {
		return true
	}

	return hasKeyword(t, "retirement") || hasKeyword(t, "ira")
}

func hasKeyword(t transaction.Transaction, keyword string) bool {
	return strings.Contains(strings.ToLower(t.Category), keyword) ||
		strings.Contains(strings.ToLower(t.Description), keyword)
}

func newGoal(typ GoalType, name string, current, target decimal.Decimal) Goal {
	progress := 0.0
	if target.IsPositive() {
		progress = min(100, current.Div(target).Mul(decimal.NewFromInt(100)).InexactFloat64())
	}

	return Goal{
		Type:          typ,
		Name:          name,
		CurrentAmount: current,
		TargetAmount:  target,
		Progress:      progress,
		IsCompleted:   current.GreaterThanOrEqual(target),
	}
}
