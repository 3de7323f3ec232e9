package services

import (
	"context"
	"fmt"

	portsrepo "github.com/FlowCashApp/flowcash_backend/internal/core/ports/repositories"
	portssvc "github.com/FlowCashApp/flowcash_backend/internal/core/ports/services"
	"github.com/FlowCashApp/flowcash_backend/internal/models"
	"github.com/FlowCashApp/flowcash_backend/internal/utils/moneyfmt"
)

// WalletService exposes read access to the session wallet.
type WalletService struct {
	walletRepo portsrepo.WalletRepositoryFacade
}

// NewWalletService creates a new WalletService.
func NewWalletService(walletRepo portsrepo.WalletRepositoryFacade) *WalletService {
	return &WalletService{walletRepo: walletRepo}
}

func (s *WalletService) GetWallet(ctx context.Context) (*models.User, error) {
	user, err := s.walletRepo.FindUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet in service: %w", err)
	}
	return user, nil
}

// FormattedBalance renders the balance with the symbol and decimal
// conventions of the wallet's base currency.
func (s *WalletService) FormattedBalance(ctx context.Context) (string, error) {
	user, err := s.walletRepo.FindUser(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get wallet for formatting: %w", err)
	}
	formatted, err := moneyfmt.Format(user.WalletBalance, user.BaseCurrency)
	if err != nil {
		return "", fmt.Errorf("failed to format wallet balance: %w", err)
	}
	return formatted, nil
}

var _ portssvc.WalletSvcFacade = (*WalletService)(nil)
