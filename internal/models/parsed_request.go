package models

import "github.com/shopspring/decimal"

// ParsedRequest is the structured form of a free-text exchange request as
// extracted by the AI gateway. It only lives between a successful parse and
// the user's confirmation or discard.
//
// Amount and ToCurrency are mandatory; FromCurrency defaults to "USD" when
// the text does not specify one.
type ParsedRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Notes        string          `json:"notes"`
}
