package services

import (
	"context"
	"fmt"

	portsrepo "github.com/FlowCashApp/flowcash_backend/internal/core/ports/repositories"
	portssvc "github.com/FlowCashApp/flowcash_backend/internal/core/ports/services"
)

// InsightService assembles the inputs for the financial insight prompt: the
// most recent ledger entries plus the current balance.
type InsightService struct {
	walletRepo portsrepo.WalletRepositoryFacade
	ledgerRepo portsrepo.LedgerRepositoryFacade
	gateway    portssvc.AIGatewaySvcFacade
}

// NewInsightService creates a new InsightService.
func NewInsightService(
	walletRepo portsrepo.WalletRepositoryFacade,
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	gateway portssvc.AIGatewaySvcFacade,
) *InsightService {
	return &InsightService{
		walletRepo: walletRepo,
		ledgerRepo: ledgerRepo,
		gateway:    gateway,
	}
}

// GetFinancialInsight returns the AI insight blurb. Gateway failures never
// surface as errors; the fixed fallback strings come through instead. Only
// repository failures are reported.
func (s *InsightService) GetFinancialInsight(ctx context.Context) (string, error) {
	user, err := s.walletRepo.FindUser(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load wallet for insight: %w", err)
	}
	txns, err := s.ledgerRepo.ListTransactions(ctx, maxInsightTransactions)
	if err != nil {
		return "", fmt.Errorf("failed to load transactions for insight: %w", err)
	}
	return s.gateway.GetFinancialInsight(ctx, txns, user.WalletBalance), nil
}

var _ portssvc.InsightSvcFacade = (*InsightService)(nil)
