package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	portsai "github.com/FlowCashApp/flowcash_backend/internal/core/ports/ai"
	portssvc "github.com/FlowCashApp/flowcash_backend/internal/core/ports/services"
	"github.com/FlowCashApp/flowcash_backend/internal/models"
	"github.com/shopspring/decimal"
)

// Fallback values returned when the text-generation service fails or answers
// with an empty body. These exact strings are part of the gateway contract.
const (
	safetyFailureFallback  = "Unable to generate safety analysis."
	safetyEmptyFallback    = "Proceed with caution."
	insightFailureFallback = "Insight generation failed."
	insightEmptyFallback   = "Keep tracking your expenses!"
)

// maxInsightTransactions caps how much ledger history is sent to the
// insight prompt.
const maxInsightTransactions = 5

// AIGatewayService adapts the generic text-generation port to the three
// domain operations. Every operation contains failures locally: callers
// always receive a usable value and never see the underlying fault.
type AIGatewayService struct {
	generator portsai.TextGenerator
	model     string
}

// NewAIGatewayService creates a new AIGatewayService bound to a model name.
func NewAIGatewayService(generator portsai.TextGenerator, model string) *AIGatewayService {
	return &AIGatewayService{generator: generator, model: model}
}

// parsedRequestSchema describes the structured output expected from the
// parse operation. Amount and toCurrency are mandatory.
var parsedRequestSchema = &portsai.Schema{
	Type: portsai.TypeObject,
	Properties: map[string]*portsai.Schema{
		"amount":       {Type: portsai.TypeNumber},
		"fromCurrency": {Type: portsai.TypeString},
		"toCurrency":   {Type: portsai.TypeString},
		"notes":        {Type: portsai.TypeString},
	},
	Required: []string{"amount", "toCurrency"},
}

// ParseNaturalLanguageRequest extracts a structured exchange request from
// free text. Failure is binary: any error, empty response or undecodable
// JSON yields nil, never a partial result.
func (s *AIGatewayService) ParseNaturalLanguageRequest(ctx context.Context, freeText string) *models.ParsedRequest {
	prompt := fmt.Sprintf(`Extract the currency exchange details from this user request: %q.
Assume the user wants to convert FROM a currency TO another.
If not specified, assume 'fromCurrency' is USD.
Return a JSON object.`, freeText)

	text, err := s.generator.Generate(ctx, portsai.GenerateRequest{
		Model:            s.model,
		Prompt:           prompt,
		ResponseMIMEType: "application/json",
		ResponseSchema:   parsedRequestSchema,
	})
	if err != nil {
		slog.WarnContext(ctx, "Natural language parse call failed", slog.String("error", err.Error()))
		return nil
	}
	if text == "" {
		return nil
	}

	var parsed models.ParsedRequest
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		slog.WarnContext(ctx, "Natural language parse returned undecodable JSON", slog.String("error", err.Error()))
		return nil
	}
	if parsed.Amount.IsZero() || strings.TrimSpace(parsed.ToCurrency) == "" {
		return nil
	}
	parsed.ToCurrency = strings.ToUpper(strings.TrimSpace(parsed.ToCurrency))
	parsed.FromCurrency = strings.ToUpper(strings.TrimSpace(parsed.FromCurrency))
	if parsed.FromCurrency == "" {
		parsed.FromCurrency = "USD"
	}
	return &parsed
}

// GetSafetyAnalysis returns a one-sentence risk assessment of the request.
func (s *AIGatewayService) GetSafetyAnalysis(ctx context.Context, req models.NearbyRequest) string {
	details, err := json.Marshal(req)
	if err != nil {
		return safetyFailureFallback
	}
	prompt := fmt.Sprintf(`Analyze the safety of this P2P currency transaction request: %s.
Consider the distance (closer is usually better for cash, irrelevant for digital) and amount.
Provide a concise 1-sentence safety tip or risk assessment.`, details)

	text, err := s.generator.Generate(ctx, portsai.GenerateRequest{Model: s.model, Prompt: prompt})
	if err != nil {
		slog.WarnContext(ctx, "Safety analysis call failed", slog.String("error", err.Error()))
		return safetyFailureFallback
	}
	if strings.TrimSpace(text) == "" {
		return safetyEmptyFallback
	}
	return text
}

// GetFinancialInsight returns a short friendly tip over at most the five
// most recent transactions and the current balance.
func (s *AIGatewayService) GetFinancialInsight(ctx context.Context, transactions []models.Transaction, balance decimal.Decimal) string {
	if len(transactions) > maxInsightTransactions {
		transactions = transactions[:maxInsightTransactions]
	}
	recent, err := json.Marshal(transactions)
	if err != nil {
		return insightFailureFallback
	}
	prompt := fmt.Sprintf(`Analyze this user's wallet balance ($%s) and recent transactions: %s.
Provide a helpful, friendly, and brief financial insight or tip suitable for a mobile app notification.`, balance.StringFixed(2), recent)

	text, err := s.generator.Generate(ctx, portsai.GenerateRequest{Model: s.model, Prompt: prompt})
	if err != nil {
		slog.WarnContext(ctx, "Financial insight call failed", slog.String("error", err.Error()))
		return insightFailureFallback
	}
	if strings.TrimSpace(text) == "" {
		return insightEmptyFallback
	}
	return text
}

var _ portssvc.AIGatewaySvcFacade = (*AIGatewayService)(nil)
