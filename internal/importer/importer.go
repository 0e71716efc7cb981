package importer

import (
	"io"

	"github.com/peopleperf/dailyowo/internal/transaction"
)

// Source identifies the CSV layout being imported.
type Source string

const (
	// SourceLedger is the application's own export format, carrying the
	// full transaction shape including type and category.
	SourceLedger Source = "ledger"
	// SourceStatement is a generic bank statement with signed amounts.
	SourceStatement Source = "statement"
)

type Importer interface {
	Parse(r io.Reader) ([]transaction.CreateParams, error)
}
