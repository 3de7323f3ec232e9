package services

import (
	"context"

	"github.com/FlowCashApp/flowcash_backend/internal/models"
)

// LedgerSvcFacade exposes the append-only transaction ledger.
type LedgerSvcFacade interface {
	// ListTransactions returns entries most recent first; limit <= 0 lists
	// everything.
	ListTransactions(ctx context.Context, limit int) ([]models.Transaction, error)

	// RecordTransaction prepends a completed entry to the ledger.
	RecordTransaction(ctx context.Context, txn models.Transaction) error
}
