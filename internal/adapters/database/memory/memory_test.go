package memory_test

import (
	"context"
	"testing"

	"github.com/FlowCashApp/flowcash_backend/internal/adapters/database/memory"
	"github.com/FlowCashApp/flowcash_backend/internal/apperrors"
	"github.com/FlowCashApp/flowcash_backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerRepository_PrependOrderAndLimit(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider(memory.DefaultSeed())

	txns, err := repos.LedgerRepo.ListTransactions(ctx, 0)
	require.NoError(t, err)
	require.Len(t, txns, 3)
	assert.Equal(t, "t1", txns[0].TransactionID)

	err = repos.LedgerRepo.SaveTransaction(ctx, models.Transaction{
		TransactionID: "t4",
		Type:          models.TransactionSent,
		Amount:        decimal.NewFromInt(10),
		CurrencyCode:  "USD",
	})
	require.NoError(t, err)

	txns, err = repos.LedgerRepo.ListTransactions(ctx, 0)
	require.NoError(t, err)
	require.Len(t, txns, 4)
	assert.Equal(t, "t4", txns[0].TransactionID, "new entry must head the ledger")

	limited, err := repos.LedgerRepo.ListTransactions(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "t4", limited[0].TransactionID)
	assert.Equal(t, "t1", limited[1].TransactionID)
}

func TestLedgerRepository_ListedSliceIsACopy(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider(memory.DefaultSeed())

	txns, err := repos.LedgerRepo.ListTransactions(ctx, 0)
	require.NoError(t, err)
	txns[0].TransactionID = "mutated"

	again, err := repos.LedgerRepo.ListTransactions(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "t1", again[0].TransactionID)
}

func TestWalletRepository_AdjustBalanceMayGoNegative(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider(memory.DefaultSeed())

	newBalance, err := repos.WalletRepo.AdjustBalance(ctx, decimal.RequireFromString("-3000"))
	require.NoError(t, err)
	assert.True(t, newBalance.IsNegative())

	user, err := repos.WalletRepo.FindUser(ctx)
	require.NoError(t, err)
	assert.True(t, user.WalletBalance.Equal(newBalance))
}

func TestNearbyRepository_RemoveAndReset(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider(memory.DefaultSeed())

	require.NoError(t, repos.NearbyRepo.RemoveRequest(ctx, "r2"))

	_, err := repos.NearbyRepo.FindRequestByID(ctx, "r2")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = repos.NearbyRepo.RemoveRequest(ctx, "r2")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, repos.NearbyRepo.Reset(ctx))
	active, err := repos.NearbyRepo.ListActiveRequests(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 3)
}

func TestCurrencyRepository_LookupIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider(memory.DefaultSeed())

	curr, err := repos.CurrencyRepo.FindCurrencyByCode(ctx, "eur")
	require.NoError(t, err)
	assert.Equal(t, "EUR", curr.CurrencyCode)
	assert.True(t, curr.RateToUSD.Equal(decimal.RequireFromString("1.08")))

	_, err = repos.CurrencyRepo.FindCurrencyByCode(ctx, "XYZ")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	all, err := repos.CurrencyRepo.ListCurrencies(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}
