package services_test

import (
	"context"
	"strings"
	"testing"

	portsai "github.com/FlowCashApp/flowcash_backend/internal/core/ports/ai"
	portssvc "github.com/FlowCashApp/flowcash_backend/internal/core/ports/services"
	"github.com/FlowCashApp/flowcash_backend/internal/core/services"
	"github.com/FlowCashApp/flowcash_backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TextGenerator ---
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Generate(ctx context.Context, req portsai.GenerateRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

// --- Test Suite ---
type GatewayServiceTestSuite struct {
	suite.Suite
	mockGenerator *MockTextGenerator
	gateway       portssvc.AIGatewaySvcFacade
}

func (suite *GatewayServiceTestSuite) SetupTest() {
	suite.mockGenerator = new(MockTextGenerator)
	suite.gateway = services.NewAIGatewayService(suite.mockGenerator, "gemini-2.5-flash")
}

// --- ParseNaturalLanguageRequest ---

func (suite *GatewayServiceTestSuite) TestParse_Success() {
	ctx := context.Background()

	suite.mockGenerator.On("Generate", ctx, mock.MatchedBy(func(req portsai.GenerateRequest) bool {
		return req.ResponseMIMEType == "application/json" && req.ResponseSchema != nil
	})).Return(`{"amount":100,"fromCurrency":"usd","toCurrency":"eur","notes":"for rent"}`, nil).Once()

	parsed := suite.gateway.ParseNaturalLanguageRequest(ctx, "I need 100 euros for rent")

	suite.Require().NotNil(parsed)
	suite.True(parsed.Amount.Equal(decimal.NewFromInt(100)))
	suite.Equal("USD", parsed.FromCurrency)
	suite.Equal("EUR", parsed.ToCurrency)
	suite.Equal("for rent", parsed.Notes)
	suite.mockGenerator.AssertExpectations(suite.T())
}

func (suite *GatewayServiceTestSuite) TestParse_DefaultsFromCurrencyToUSD() {
	ctx := context.Background()

	suite.mockGenerator.On("Generate", ctx, mock.Anything).
		Return(`{"amount":50,"toCurrency":"gbp"}`, nil).Once()

	parsed := suite.gateway.ParseNaturalLanguageRequest(ctx, "swap 50 to pounds")

	suite.Require().NotNil(parsed)
	suite.Equal("USD", parsed.FromCurrency)
	suite.Equal("GBP", parsed.ToCurrency)
}

func (suite *GatewayServiceTestSuite) TestParse_GeneratorErrorYieldsNil() {
	ctx := context.Background()

	suite.mockGenerator.On("Generate", ctx, mock.Anything).
		Return("", assert.AnError).Once()

	suite.Nil(suite.gateway.ParseNaturalLanguageRequest(ctx, "trade 20 dollars"))
}

func (suite *GatewayServiceTestSuite) TestParse_EmptyResponseYieldsNil() {
	ctx := context.Background()

	suite.mockGenerator.On("Generate", ctx, mock.Anything).
		Return("", nil).Once()

	suite.Nil(suite.gateway.ParseNaturalLanguageRequest(ctx, "trade 20 dollars"))
}

func (suite *GatewayServiceTestSuite) TestParse_UndecodableJSONYieldsNil() {
	ctx := context.Background()

	suite.mockGenerator.On("Generate", ctx, mock.Anything).
		Return("not json at all", nil).Once()

	suite.Nil(suite.gateway.ParseNaturalLanguageRequest(ctx, "trade 20 dollars"))
}

func (suite *GatewayServiceTestSuite) TestParse_MissingMandatoryFieldsYieldsNil() {
	ctx := context.Background()

	suite.mockGenerator.On("Generate", ctx, mock.Anything).
		Return(`{"amount":0,"toCurrency":""}`, nil).Once()

	suite.Nil(suite.gateway.ParseNaturalLanguageRequest(ctx, "trade something"))
}

// --- GetSafetyAnalysis ---

func (suite *GatewayServiceTestSuite) TestSafety_Success() {
	ctx := context.Background()
	req := models.NearbyRequest{RequestID: "r1", Amount: decimal.NewFromInt(100)}

	suite.mockGenerator.On("Generate", ctx, mock.MatchedBy(func(gr portsai.GenerateRequest) bool {
		return gr.ResponseSchema == nil && gr.ResponseMIMEType == ""
	})).Return("Looks reasonable for a short-distance cash trade.", nil).Once()

	tip := suite.gateway.GetSafetyAnalysis(ctx, req)

	suite.Equal("Looks reasonable for a short-distance cash trade.", tip)
	suite.mockGenerator.AssertExpectations(suite.T())
}

func (suite *GatewayServiceTestSuite) TestSafety_ErrorYieldsFailureFallback() {
	ctx := context.Background()

	suite.mockGenerator.On("Generate", ctx, mock.Anything).
		Return("", assert.AnError).Once()

	suite.Equal("Unable to generate safety analysis.", suite.gateway.GetSafetyAnalysis(ctx, models.NearbyRequest{}))
}

func (suite *GatewayServiceTestSuite) TestSafety_EmptyResponseYieldsEmptyFallback() {
	ctx := context.Background()

	suite.mockGenerator.On("Generate", ctx, mock.Anything).
		Return("", nil).Once()

	suite.Equal("Proceed with caution.", suite.gateway.GetSafetyAnalysis(ctx, models.NearbyRequest{}))
}

// --- GetFinancialInsight ---

func (suite *GatewayServiceTestSuite) TestInsight_Success() {
	ctx := context.Background()
	txns := []models.Transaction{{TransactionID: "t1", Amount: decimal.NewFromInt(50)}}

	suite.mockGenerator.On("Generate", ctx, mock.Anything).
		Return("You spent less this week than last. Nice!", nil).Once()

	insight := suite.gateway.GetFinancialInsight(ctx, txns, decimal.RequireFromString("2450.00"))

	suite.Equal("You spent less this week than last. Nice!", insight)
}

func (suite *GatewayServiceTestSuite) TestInsight_ErrorYieldsFailureFallback() {
	ctx := context.Background()

	suite.mockGenerator.On("Generate", ctx, mock.Anything).
		Return("", assert.AnError).Once()

	suite.Equal("Insight generation failed.", suite.gateway.GetFinancialInsight(ctx, nil, decimal.Zero))
}

func (suite *GatewayServiceTestSuite) TestInsight_EmptyResponseYieldsEmptyFallback() {
	ctx := context.Background()

	suite.mockGenerator.On("Generate", ctx, mock.Anything).
		Return("", nil).Once()

	suite.Equal("Keep tracking your expenses!", suite.gateway.GetFinancialInsight(ctx, nil, decimal.Zero))
}

func (suite *GatewayServiceTestSuite) TestInsight_CapsTransactionHistoryAtFive() {
	ctx := context.Background()

	txns := make([]models.Transaction, 8)
	for i := range txns {
		txns[i] = models.Transaction{TransactionID: string(rune('a' + i)), Amount: decimal.NewFromInt(int64(i))}
	}

	suite.mockGenerator.On("Generate", ctx, mock.MatchedBy(func(gr portsai.GenerateRequest) bool {
		// The prompt embeds the transactions as JSON; only 5 entries may
		// survive the cap.
		var count int
		for _, txn := range txns {
			if strings.Contains(gr.Prompt, `"id":"`+txn.TransactionID+`"`) {
				count++
			}
		}
		return count == 5
	})).Return("tip", nil).Once()

	suite.Equal("tip", suite.gateway.GetFinancialInsight(ctx, txns, decimal.NewFromInt(100)))
	suite.mockGenerator.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestGatewayService(t *testing.T) {
	suite.Run(t, new(GatewayServiceTestSuite))
}
