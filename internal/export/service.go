package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/peopleperf/dailyowo/internal/transaction"
)

// Service writes transactions out as CSV in the ledger export layout, the
// same column set the importer's "ledger" profile reads back.
type Service struct {
	transactions *transaction.Service
}

func NewService(txService *transaction.Service) *Service {
	return &Service{transactions: txService}
}

var header = []string{"Date", "Type", "Amount", "Currency", "Category", "Description"}

// WriteCSV exports transactions matching the filter to w.
// It returns the number of transactions written.
func (s *Service) WriteCSV(ctx context.Context, filter transaction.ListFilter, w io.Writer) (int, error) {
	txs, err := s.transactions.List(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("listing transactions: %w", err)
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}

	for _, t := range txs {
		record := []string{
			t.Date.Format(time.DateOnly),
			string(t.Type),
			t.Amount.StringFixed(2),
			t.Currency,
			t.Category,
			t.Description,
		}

		if err := cw.Write(record); err != nil {
			return 0, fmt.Errorf("writing transaction %s: %w", t.ID, err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("flushing csv: %w", err)
	}

	return len(txs), nil
}
