package models

import "github.com/shopspring/decimal"

// Currency is an entry in the static rate reference table.
// RateToUSD is always positive; the table is immutable after seeding.
type Currency struct {
	CurrencyCode string          `json:"code"`      // Primary Key (e.g., "USD")
	RateToUSD    decimal.Decimal `json:"rateToUSD"` // Simplified: everything relative to USD
	Symbol       string          `json:"symbol"`    // e.g., "$"
	Name         string          `json:"name"`      // e.g., "US Dollar"
}
