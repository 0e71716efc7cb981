package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount parses a currency string into a decimal, accepting both US
// ("1,234.56") and European ("1.234,56") separator conventions. When both
// separators appear, whichever comes last is the decimal separator.
func parseAmount(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(s)

	lastComma := strings.LastIndex(clean, ",")
	lastDot := strings.LastIndex(clean, ".")

	switch {
	case lastComma > lastDot:
		// European: dots are thousand separators, comma is decimal.
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	default:
		// US or no separators: commas are thousand separators.
		clean = strings.ReplaceAll(clean, ",", "")
	}

	return decimal.NewFromString(clean)
}
