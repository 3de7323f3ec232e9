package repositories

import (
	"context"

	"github.com/FlowCashApp/flowcash_backend/internal/models"
	"github.com/shopspring/decimal"
)

// WalletRepositoryFacade defines storage operations for the session wallet.
// There is a single user per session, so lookups take no identifier.
type WalletRepositoryFacade interface {
	// FindUser returns the session user. Never nil on a nil error.
	FindUser(ctx context.Context) (*models.User, error)

	// AdjustBalance applies a signed delta to the wallet balance and returns
	// the new balance. There is deliberately no floor: the balance may go
	// negative.
	AdjustBalance(ctx context.Context, delta decimal.Decimal) (decimal.Decimal, error)

	// Reset restores the wallet to its seeded state.
	Reset(ctx context.Context) error
}
