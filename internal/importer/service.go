package importer

import (
	"fmt"
	"io"

	"github.com/peopleperf/dailyowo/internal/importer/ledger"
	"github.com/peopleperf/dailyowo/internal/transaction"
)

type Service struct {
	ledgerImporter Importer
}

func NewService() *Service {
	return &Service{
		ledgerImporter: ledger.NewParser(),
	}
}

func (s *Service) Import(source Source, r io.Reader) ([]transaction.CreateParams, error) {
	switch source {
	case SourceLedger, SourceStatement:
		// Both layouts are auto-detected by the profile matcher.
		return s.ledgerImporter.Parse(r)
	default:
		return nil, fmt.Errorf("unknown source: %s", source)
	}
}
