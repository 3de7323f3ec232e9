package models

import "github.com/shopspring/decimal"

// TransactionType indicates the direction of a ledger entry.
type TransactionType string

const (
	TransactionSent     TransactionType = "sent"
	TransactionReceived TransactionType = "received"
	TransactionExchange TransactionType = "exchange"
)

// TransactionStatus is the settlement state of a ledger entry.
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "completed"
	StatusPending   TransactionStatus = "pending"
	StatusFailed    TransactionStatus = "failed"
)

// Transaction is a single append-only ledger entry. Entries are never
// mutated or deleted once recorded.
// Note: Amount uses a precise decimal type, per github.com/shopspring/decimal.
type Transaction struct {
	TransactionID string            `json:"id"` // UUID
	Type          TransactionType   `json:"type"`
	Amount        decimal.Decimal   `json:"amount"`
	CurrencyCode  string            `json:"currency"`
	Counterparty  string            `json:"counterparty"`
	Date          string            `json:"date"` // YYYY-MM-DD
	Status        TransactionStatus `json:"status"`
}
