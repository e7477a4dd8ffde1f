package cli

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseIndex reads a 1-based project number such as "2" or "#2".
// Range checking is left to the catalog.
func ParseIndex(s string) (int, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ParseError{Field: "project number", Input: s, Want: "a whole number"}
	}
	return n, nil
}

// ParseHours reads an estimated hour count. Negative values are accepted.
func ParseHours(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &ParseError{Field: "hours", Input: s, Want: "a whole number"}
	}
	return n, nil
}

// ParseRate reads an hourly rate as an exact decimal.
// A single comma is accepted as the decimal separator ("25,50").
func ParseRate(s string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(s)
	if strings.Count(raw, ",") == 1 && !strings.Contains(raw, ".") {
		raw = strings.Replace(raw, ",", ".", 1)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &ParseError{Field: "rate", Input: s, Want: "a decimal number like 25.50"}
	}
	return d, nil
}

// FormatMoney renders an amount with two decimals, grouped thousands and
// the currency symbol in front: "$1,234.50", "-$20.00".
func FormatMoney(symbol string, amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	sign := ""
	if amount.Round(2).IsNegative() {
		sign = "-"
	}
	return sign + symbol + b.String() + "." + frac
}
