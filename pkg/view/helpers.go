package view

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money formats an amount with the currency symbol, always with two decimals.
// E.g. 1299.5 EUR -> "€1299.50"
func Money(amount decimal.Decimal, currency string) string {
	s := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	return sign + currencySymbol(currency) + s
}

func currencySymbol(code string) string {
	switch code {
	case "EUR":
		return "€"
	case "USD":
		return "$"
	case "GBP":
		return "£"
	case "JPY":
		return "¥"
	case "TRY":
		return "₺"
	default:
		return code + " "
	}
}
