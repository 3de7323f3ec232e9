// Package moneyfmt renders amounts with locale-aware currency formatting.
package moneyfmt

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Format renders an amount with the symbol and decimal conventions of the
// given ISO 4217 code (JPY has no minor unit).
// Example: 2450 USD returns "$ 2,450.00"; 5000 JPY returns "¥ 5,000".
func Format(amount decimal.Decimal, currencyCode string) (string, error) {
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return "", fmt.Errorf("unsupported currency code '%s': %w", currencyCode, err)
	}

	// Round to the currency's standard scale before handing off to the
	// formatter, so the decimal value and the rendered value agree.
	scale, _ := currency.Standard.Rounding(unit)
	rounded, _ := amount.Round(int32(scale)).Float64()

	return printer.Sprint(currency.Symbol(unit.Amount(rounded))), nil
}
