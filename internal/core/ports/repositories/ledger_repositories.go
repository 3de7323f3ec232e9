package repositories

import (
	"context"

	"github.com/FlowCashApp/flowcash_backend/internal/models"
)

// LedgerRepositoryFacade defines storage operations for the append-only
// transaction ledger. The ledger keeps insertion order reversed: the most
// recently recorded entry is listed first.
type LedgerRepositoryFacade interface {
	// SaveTransaction prepends a new entry. Entries are immutable afterwards.
	SaveTransaction(ctx context.Context, txn models.Transaction) error

	// ListTransactions returns entries most recent first. A limit <= 0 means
	// no limit. The returned slice is a copy; callers may not mutate ledger
	// state through it.
	ListTransactions(ctx context.Context, limit int) ([]models.Transaction, error)

	// Reset restores the ledger to its seeded state.
	Reset(ctx context.Context) error
}
