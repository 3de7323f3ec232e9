package models

import "github.com/shopspring/decimal"

// User represents the wallet owner for the current session.
// There is exactly one user per session; the balance is mutated only by
// completed exchange transactions.
type User struct {
	UserID        string          `json:"userID"`
	Name          string          `json:"name"`
	Avatar        string          `json:"avatar"`
	WalletBalance decimal.Decimal `json:"walletBalance"`
	BaseCurrency  string          `json:"baseCurrency"` // ISO 4217 code, e.g. "USD"
}
