// Package budget derives target allocations from a budgeting method and
// evaluates actual spending against them. All computation here is pure;
// persistence lives in the store subpackage.
package budget

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrUnsupportedMethod is returned for method types the allocator has no
// branch for. The envelope method exists in the API surface but has no
// allocation semantics yet, so it fails fast instead of silently behaving
// like zero-based.
var ErrUnsupportedMethod = errors.New("unsupported budget method")

// MethodType identifies the strategy used to derive allocations from income.
type MethodType string

const (
	MethodFiftyThirtyTwenty MethodType = "50-30-20"
	MethodZeroBased         MethodType = "zero-based"
	MethodCustom            MethodType = "custom"
	MethodEnvelope          MethodType = "envelope"
)

// Method is the tagged budgeting strategy. Allocations is only meaningful
// for MethodCustom.
type Method struct {
	Type        MethodType
	Allocations map[string]decimal.Decimal
}

// Frequency is how often a budget period repeats.
type Frequency string

const (
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyAnnual  Frequency = "annual"
)

// Period is a budgeting window. EndDate is always derived from StartDate and
// Frequency, never set independently.
type Period struct {
	Frequency Frequency
	StartDate time.Time
	EndDate   time.Time
}

// NewPeriod derives a period from its start date: weekly adds 7 days,
// monthly one calendar month, annual one calendar year.
func NewPeriod(frequency Frequency, start time.Time) Period {
	end := start

	switch frequency {
	case FrequencyWeekly:
		end = start.AddDate(0, 0, 7)
	case FrequencyMonthly:
		end = start.AddDate(0, 1, 0)
	case FrequencyAnnual:
		end = start.AddDate(1, 0, 0)
	}

	return Period{Frequency: frequency, StartDate: start, EndDate: end}
}
