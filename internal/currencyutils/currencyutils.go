// Package currencyutils provides amount parsing helpers for values coming
// back from the model, which are not guaranteed to be clean numbers.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var symbolPattern = regexp.MustCompile(`[€$£¥₣₤₧₹₺₽₩฿₫₲₴₸₼₪\s]|CHF|THB|USD|EUR`)

// ParseAmount parses a string amount into a decimal value. It tolerates
// currency symbols, thousand separators and European decimal commas.
// An empty string parses to zero.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if strings.TrimSpace(amountStr) == "" {
		return decimal.Zero, nil
	}

	standardized := StandardizeAmount(amountStr)

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// StandardizeAmount converts formats like "CHF 1'234.56", "€1.234,56",
// "$1,234.56" or "1 234,56" to a form decimal.NewFromString accepts.
func StandardizeAmount(amountStr string) string {
	amountStr = symbolPattern.ReplaceAllString(amountStr, "")
	amountStr = strings.ReplaceAll(amountStr, "'", "")

	hasComma := strings.Contains(amountStr, ",")
	hasDot := strings.Contains(amountStr, ".")

	switch {
	case hasComma && hasDot:
		if strings.LastIndex(amountStr, ",") > strings.LastIndex(amountStr, ".") {
			// European style: 1.234,56
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.Replace(amountStr, ",", ".", 1)
		} else {
			// US style: 1,234.56
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	case hasComma:
		// A single comma with exactly two trailing digits is a decimal comma.
		idx := strings.LastIndex(amountStr, ",")
		if len(amountStr)-idx-1 == 2 && strings.Count(amountStr, ",") == 1 {
			amountStr = strings.Replace(amountStr, ",", ".", 1)
		} else {
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	}

	return strings.TrimSpace(amountStr)
}
