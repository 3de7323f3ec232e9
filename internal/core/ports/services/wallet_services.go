package services

import (
	"context"

	"github.com/FlowCashApp/flowcash_backend/internal/models"
)

// WalletSvcFacade exposes read access to the session wallet. The balance is
// written only through the exchange service's commit transition.
type WalletSvcFacade interface {
	GetWallet(ctx context.Context) (*models.User, error)

	// FormattedBalance renders the balance with locale-aware currency
	// formatting for the wallet's base currency (JPY has no minor unit).
	FormattedBalance(ctx context.Context) (string, error)
}
