package services

import (
	"context"

	"github.com/FlowCashApp/flowcash_backend/internal/models"
	"github.com/shopspring/decimal"
)

// AIGatewaySvcFacade wraps the external text-generation service behind three
// domain operations. Every operation isolates failures: no error ever
// crosses this boundary, callers always receive a usable value.
type AIGatewaySvcFacade interface {
	// ParseNaturalLanguageRequest extracts a structured exchange request
	// from free text. Returns nil when the call fails, the response is
	// empty, or the JSON does not decode. Failure is binary, never a
	// partial result.
	ParseNaturalLanguageRequest(ctx context.Context, freeText string) *models.ParsedRequest

	// GetSafetyAnalysis returns a one-sentence risk assessment for a nearby
	// request, or a fixed fallback sentence on failure.
	GetSafetyAnalysis(ctx context.Context, req models.NearbyRequest) string

	// GetFinancialInsight returns a short friendly tip over at most the 5
	// most recent transactions and the current balance, or a fixed fallback
	// on failure.
	GetFinancialInsight(ctx context.Context, transactions []models.Transaction, balance decimal.Decimal) string
}
