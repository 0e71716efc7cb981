package ledger

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/peopleperf/dailyowo/internal/encoding"
	"github.com/peopleperf/dailyowo/internal/transaction"
)

// Parser reads CSV exports and produces transaction params. It auto-detects
// which layout (ledger export or generic bank statement) is being used by
// matching column headers against known profiles, trying both comma and
// semicolon separators.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]transaction.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	for _, comma := range []rune{',', ';'} {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = comma
		reader.FieldsPerRecord = -1
		reader.LazyQuotes = true

		rows, err := reader.ReadAll()
		if err != nil {
			continue
		}

		profile, cols, headerIdx := detectProfile(rows)
		if profile != nil {
			return parseRows(profile, cols, rows[headerIdx+1:])
		}
	}

	return nil, fmt.Errorf("no matching import format found: expected ledger or statement columns")
}

// colIndex maps column names to their index in the header row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
// Returns the matched profile, column index map, and header row index.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, col := range row {
			cols[strings.TrimSpace(col)] = i
		}

		for i := range profiles {
			profile := &profiles[i]

			matched := true

			for _, required := range profile.requiredCols() {
				if _, ok := cols[required]; !ok {
					matched = false
					break
				}
			}

			if matched {
				return profile, cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

// dateFormats are tried in order; bank exports disagree about date layout.
var dateFormats = []string{time.DateOnly, "02-01-2006", "02/01/2006"}

func parseDate(s string) (time.Time, bool) {
	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

var validTypes = map[transaction.Type]bool{
	transaction.TypeIncome:    true,
	transaction.TypeExpense:   true,
	transaction.TypeAsset:     true,
	transaction.TypeLiability: true,
}

func parseRows(profile *Profile, cols colIndex, rows [][]string) ([]transaction.CreateParams, error) {
	var txs []transaction.CreateParams

	for _, row := range rows {
		cell := func(name string) string {
			idx, ok := cols[name]
			if !ok || idx >= len(row) {
				return ""
			}

			return strings.TrimSpace(row[idx])
		}

		date, ok := parseDate(cell(profile.DateCol))
		if !ok {
			// Probably a footer or blank separator row.
			continue
		}

		amount, err := parseAmount(cell(profile.AmountCol))
		if err != nil {
			continue
		}

		params := transaction.CreateParams{
			Amount:      amount,
			Description: cell(profile.DescCol),
			Date:        date,
		}

		switch profile.AmountMode {
		case amountTyped:
			typ := transaction.Type(strings.ToLower(cell(profile.TypeCol)))
			if !validTypes[typ] {
				continue
			}

			params.Type = typ

		case amountSigned:
			params.Type = transaction.TypeIncome
			if amount.IsNegative() {
				params.Type = transaction.TypeExpense
				params.Amount = amount.Neg()
			}
		}

		if profile.CategoryCol != "" {
			params.Category = cell(profile.CategoryCol)
		}

		if profile.CurrencyCol != "" {
			params.Currency = cell(profile.CurrencyCol)
		}

		txs = append(txs, params)
	}

	return txs, nil
}
