package models

import "github.com/shopspring/decimal"

// NearbyRequest is a peer's advertised offer to exchange Amount of
// FromCurrency into ToCurrency at the quoted Rate. Requests leave the
// active set once fulfilled. ExpiresAt is carried from the seed source
// but expiry is not enforced.
type NearbyRequest struct {
	RequestID    string          `json:"id"`
	UserID       string          `json:"userId"`
	UserName     string          `json:"userName"`
	UserAvatar   string          `json:"userAvatar"`
	DistanceKm   float64         `json:"distanceKm"`
	Amount       decimal.Decimal `json:"amount"` // > 0
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Rate         decimal.Decimal `json:"rate"`      // > 0
	ExpiresAt    int64           `json:"expiresAt"` // epoch millis
}
