package ledger

// amountMode determines how amounts are extracted from a row.
type amountMode int

const (
	// amountTyped means an unsigned magnitude plus an explicit type column.
	amountTyped amountMode = iota
	// amountSigned means one signed column where the sign decides
	// income versus expense.
	amountSigned
)

// Profile describes the column layout of a supported CSV export.
// Adding a new format is just adding a new Profile to the profiles slice.
type Profile struct {
	Name        string
	DateCol     string
	DescCol     string
	AmountCol   string
	AmountMode  amountMode
	TypeCol     string // used when AmountMode == amountTyped
	CategoryCol string // optional
	CurrencyCol string // optional
}

// requiredCols returns the column names that must be present for this
// profile to match.
func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol, p.DescCol, p.AmountCol}

	if p.AmountMode == amountTyped {
		cols = append(cols, p.TypeCol)
	}

	return cols
}

// profiles is the ordered list of export formats to try during
// auto-detection. More specific profiles come first to avoid false matches.
var profiles = []Profile{
	{
		Name:        "ledger",
		DateCol:     "Date",
		DescCol:     "Description",
		AmountCol:   "Amount",
		AmountMode:  amountTyped,
		TypeCol:     "Type",
		CategoryCol: "Category",
		CurrencyCol: "Currency",
	},
	{
		Name:       "statement",
		DateCol:    "Date",
		DescCol:    "Description",
		AmountCol:  "Amount",
		AmountMode: amountSigned,
	},
}
