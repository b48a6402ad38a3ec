package csvpay

import (
	"strings"

	"github.com/shopspring/decimal"
)

type numberStyle int

const (
	// numberBrazilian uses "." for thousands and "," for decimals: "1.234,56".
	numberBrazilian numberStyle = iota
	// numberPlain is "1234.56".
	numberPlain
)

// parseAmount accepts an optional "R$" or currency prefix and the style's separators.
func parseAmount(s string, style numberStyle) (decimal.Decimal, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "R$")
	clean = strings.TrimSpace(clean)

	if style == numberBrazilian {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	} else {
		clean = strings.ReplaceAll(clean, ",", "")
	}

	return decimal.NewFromString(clean)
}
