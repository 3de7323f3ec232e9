package dto

import "github.com/shopspring/decimal"

// SelectExchangeRequest identifies the nearby request to put under review.
type SelectExchangeRequest struct {
	NearbyRequestID string `json:"nearbyRequestID" binding:"required"`
}

// AnalyzeExchangeRequest carries the free-text exchange description to parse.
type AnalyzeExchangeRequest struct {
	Text string `json:"text" binding:"required"`
}

// ComposeExchangeRequest sets the broadcast preview directly, bypassing the
// AI parse. Used as a manual fallback when the free-text analysis cannot
// produce a preview.
type ComposeExchangeRequest struct {
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	FromCurrency string          `json:"fromCurrency" binding:"omitempty,iso4217"`
	ToCurrency   string          `json:"toCurrency" binding:"required,iso4217"`
	Notes        string          `json:"notes"`
}

// ExchangeReview is the structured preview of a selected nearby request,
// including the AI safety annotation once resolved.
type ExchangeReview struct {
	Request            NearbyRequestResponse `json:"request"`
	YouPay             decimal.Decimal       `json:"youPay"`
	YouPayCurrency     string                `json:"youPayCurrency"`
	YouReceive         decimal.Decimal       `json:"youReceive"`
	YouReceiveCurrency string                `json:"youReceiveCurrency"`
	Rate               decimal.Decimal       `json:"rate"`
	SafetyTip          string                `json:"safetyTip"`
}

// ExchangeResult is returned by a confirmed exchange commit.
type ExchangeResult struct {
	Transaction TransactionResponse `json:"transaction"`
	NewBalance  decimal.Decimal     `json:"newBalance"`
}

// ParsedPreview is the confirm-stage preview of a free-text request.
// FromCurrency is always populated ("USD" when the parse omitted it).
type ParsedPreview struct {
	Amount       decimal.Decimal `json:"amount"`
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Notes        string          `json:"notes,omitempty"`
}

// BroadcastResult confirms a posted broadcast request.
type BroadcastResult struct {
	Message string `json:"message"`
}
