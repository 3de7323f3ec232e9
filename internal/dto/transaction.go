package dto

import (
	"github.com/FlowCashApp/flowcash_backend/internal/models"
	"github.com/shopspring/decimal"
)

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	TransactionID string          `json:"id"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currency"`
	Counterparty  string          `json:"counterparty"`
	Date          string          `json:"date"`
	Status        string          `json:"status"`
}

// ToTransactionResponse converts a models.Transaction to a DTO.
func ToTransactionResponse(txn *models.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Type:          string(txn.Type),
		Amount:        txn.Amount,
		CurrencyCode:  txn.CurrencyCode,
		Counterparty:  txn.Counterparty,
		Date:          txn.Date,
		Status:        string(txn.Status),
	}
}

// ToListTransactionResponse converts a slice of models.Transaction to DTOs.
func ToListTransactionResponse(txns []models.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}
