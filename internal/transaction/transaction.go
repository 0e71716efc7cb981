package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a transaction does not exist or was deleted.
var ErrNotFound = errors.New("transaction not found")

// Type represents the kind of transaction. It determines which aggregator
// buckets the record into: income/expense feed the cash-flow reports, asset
// and liability feed net worth.
type Type string

const (
	TypeIncome    Type = "income"
	TypeExpense   Type = "expense"
	TypeAsset     Type = "asset"
	TypeLiability Type = "liability"
)

// Transaction represents a financial transaction. Records are immutable once
// created; corrections are field overwrites performed through the store, not
// in-place mutation by the calculation engine.
type Transaction struct {
	ID          uuid.UUID
	Type        Type
	Amount      decimal.Decimal // non-negative magnitude; sign implied by Type
	Currency    string          // ISO-4217 code; no conversion is performed
	Category    string
	Description string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
}

// InPeriod reports whether the transaction date falls in [start, end],
// inclusive on both ends.
func (t Transaction) InPeriod(start, end time.Time) bool {
	return !t.Date.Before(start) && !t.Date.After(end)
}

// FilterPeriod returns the transactions dated within [start, end] inclusive.
func FilterPeriod(txs []Transaction, start, end time.Time) []Transaction {
	out := make([]Transaction, 0, len(txs))

	for _, t := range txs {
		if t.InPeriod(start, end) {
			out = append(out, t)
		}
	}

	return out
}

// SumByType adds up the amounts of all transactions of the given type.
func SumByType(txs []Transaction, typ Type) decimal.Decimal {
	total := decimal.Zero

	for _, t := range txs {
		if t.Type == typ {
			total = total.Add(t.Amount)
		}
	}

	return total
}
