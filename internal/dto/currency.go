package dto

import (
	"github.com/FlowCashApp/flowcash_backend/internal/models"
	"github.com/shopspring/decimal"
)

// CurrencyResponse defines the data returned for a rate-table entry.
type CurrencyResponse struct {
	CurrencyCode string          `json:"code"`
	RateToUSD    decimal.Decimal `json:"rateToUSD"`
	Symbol       string          `json:"symbol"`
	Name         string          `json:"name"`
}

// ToCurrencyResponse converts a models.Currency to a CurrencyResponse DTO.
func ToCurrencyResponse(curr *models.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: curr.CurrencyCode,
		RateToUSD:    curr.RateToUSD,
		Symbol:       curr.Symbol,
		Name:         curr.Name,
	}
}

// ToListCurrencyResponse converts a slice of models.Currency to DTOs.
func ToListCurrencyResponse(currencies []models.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr)
	}
	return res
}
