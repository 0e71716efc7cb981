package ledger_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/peopleperf/dailyowo/internal/importer/ledger"
	"github.com/peopleperf/dailyowo/internal/transaction"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParser_LedgerExport(t *testing.T) {
	csv := `Date,Type,Amount,Currency,Category,Description
2024-03-01,income,5000.00,EUR,salary,March salary
2024-03-05,expense,1200.00,EUR,rent,Monthly rent
2024-03-10,asset,500.00,EUR,savings,Savings transfer
`

	p := ledger.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 3)

	assert.Equal(t, date(2024, 3, 1), txs[0].Date)
	assert.Equal(t, transaction.TypeIncome, txs[0].Type)
	assert.True(t, txs[0].Amount.Equal(decimal.NewFromInt(5000)))
	assert.Equal(t, "EUR", txs[0].Currency)
	assert.Equal(t, "salary", txs[0].Category)
	assert.Equal(t, "March salary", txs[0].Description)

	assert.Equal(t, transaction.TypeExpense, txs[1].Type)
	assert.Equal(t, transaction.TypeAsset, txs[2].Type)
}

func TestParser_Statement(t *testing.T) {
	csv := `Date;Description;Amount
15-03-2024;SUPERMARKET PURCHASE;-42,50
20-03-2024;SALARY MARCH;2.500,00
`

	p := ledger.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, date(2024, 3, 15), txs[0].Date)
	assert.Equal(t, transaction.TypeExpense, txs[0].Type)
	assert.True(t, txs[0].Amount.Equal(decimal.NewFromFloat(42.50)), "signed amounts flip to positive expenses")

	assert.Equal(t, transaction.TypeIncome, txs[1].Type)
	assert.True(t, txs[1].Amount.Equal(decimal.NewFromInt(2500)))
}

func TestParser_Latin1Encoding(t *testing.T) {
	utf8CSV := "Date;Description;Amount\n15-03-2024;CAFÉ CENTRAL;-10,00\n"

	encoder := charmap.Windows1252.NewEncoder()
	latin1Bytes, err := encoder.Bytes([]byte(utf8CSV))
	require.NoError(t, err)

	p := ledger.NewParser()
	txs, err := p.Parse(bytes.NewReader(latin1Bytes))
	require.NoError(t, err)
	require.Len(t, txs, 1)

	assert.Equal(t, "CAFÉ CENTRAL", txs[0].Description)
}

func TestParser_HeaderNotOnFirstRow(t *testing.T) {
	csv := `Exported at,2024-04-01
Account,main

Date,Type,Amount,Currency,Category,Description
2024-03-01,expense,10.00,EUR,takeout,Lunch
`

	p := ledger.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 1)

	assert.Equal(t, "Lunch", txs[0].Description)
}

func TestParser_SkipsUnparseableRows(t *testing.T) {
	csv := `Date,Type,Amount,Currency,Category,Description
2024-03-01,expense,10.00,EUR,takeout,Lunch
not-a-date,expense,10.00,EUR,takeout,Broken
2024-03-02,teleport,10.00,EUR,takeout,Unknown type
2024-03-03,expense,not-a-number,EUR,takeout,Bad amount
Total,,,,,
`

	p := ledger.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 1)

	assert.Equal(t, "Lunch", txs[0].Description)
}

func TestParser_EmptyFile(t *testing.T) {
	p := ledger.NewParser()
	_, err := p.Parse(strings.NewReader(""))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no matching import format")
}

func TestParser_HeaderOnly(t *testing.T) {
	csv := `Date;Description;Amount`

	p := ledger.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestParser_LargeAmounts(t *testing.T) {
	csv := `Date;Description;Amount
15-03-2024;BIG TRANSFER;-1.234.567,89
`

	p := ledger.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 1)

	assert.True(t, txs[0].Amount.Equal(decimal.NewFromFloat(1234567.89)))
	assert.Equal(t, transaction.TypeExpense, txs[0].Type)
}
