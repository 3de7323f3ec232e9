package services

import (
	"context"
	"fmt"

	portsrepo "github.com/FlowCashApp/flowcash_backend/internal/core/ports/repositories"
	portssvc "github.com/FlowCashApp/flowcash_backend/internal/core/ports/services"
	"github.com/FlowCashApp/flowcash_backend/internal/models"
)

// LedgerService exposes the append-only transaction ledger.
type LedgerService struct {
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade) *LedgerService {
	return &LedgerService{ledgerRepo: ledgerRepo}
}

func (s *LedgerService) ListTransactions(ctx context.Context, limit int) ([]models.Transaction, error) {
	txns, err := s.ledgerRepo.ListTransactions(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions in service: %w", err)
	}
	if txns == nil {
		return []models.Transaction{}, nil
	}
	return txns, nil
}

func (s *LedgerService) RecordTransaction(ctx context.Context, txn models.Transaction) error {
	if err := s.ledgerRepo.SaveTransaction(ctx, txn); err != nil {
		return fmt.Errorf("failed to record transaction in service: %w", err)
	}
	return nil
}

var _ portssvc.LedgerSvcFacade = (*LedgerService)(nil)
