package services_test

import (
	"context"
	"testing"

	"github.com/FlowCashApp/flowcash_backend/internal/adapters/database/memory"
	"github.com/FlowCashApp/flowcash_backend/internal/core/services"
	"github.com/FlowCashApp/flowcash_backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingGateway struct {
	stubGateway
	gotTransactions []models.Transaction
	gotBalance      decimal.Decimal
}

func (g *recordingGateway) GetFinancialInsight(ctx context.Context, transactions []models.Transaction, balance decimal.Decimal) string {
	g.gotTransactions = transactions
	g.gotBalance = balance
	return "watch your exchange fees"
}

func TestInsightService_PassesRecentHistoryAndBalance(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider(memory.DefaultSeed())
	gateway := &recordingGateway{}
	service := services.NewInsightService(repos.WalletRepo, repos.LedgerRepo, gateway)

	insight, err := service.GetFinancialInsight(ctx)

	require.NoError(t, err)
	assert.Equal(t, "watch your exchange fees", insight)
	assert.Len(t, gateway.gotTransactions, 3)
	assert.Equal(t, "t1", gateway.gotTransactions[0].TransactionID)
	assert.True(t, gateway.gotBalance.Equal(decimal.RequireFromString("2450.00")))
}
