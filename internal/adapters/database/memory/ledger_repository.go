package memory

import (
	"context"
	"sync"

	portsrepo "github.com/FlowCashApp/flowcash_backend/internal/core/ports/repositories"
	"github.com/FlowCashApp/flowcash_backend/internal/models"
)

// LedgerRepository keeps the append-only transaction ledger in process
// memory, most recent entry first.
type LedgerRepository struct {
	mu   sync.RWMutex
	txns []models.Transaction
	seed []models.Transaction
}

// NewLedgerRepository creates a ledger repository seeded with historical
// entries (already ordered most recent first).
func NewLedgerRepository(seed []models.Transaction) *LedgerRepository {
	r := &LedgerRepository{seed: seed}
	r.txns = append([]models.Transaction(nil), seed...)
	return r
}

func (r *LedgerRepository) SaveTransaction(_ context.Context, txn models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txns = append([]models.Transaction{txn}, r.txns...)
	return nil
}

func (r *LedgerRepository) ListTransactions(_ context.Context, limit int) ([]models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := len(r.txns)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]models.Transaction, n)
	copy(out, r.txns[:n])
	return out, nil
}

func (r *LedgerRepository) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txns = append([]models.Transaction(nil), r.seed...)
	return nil
}

var _ portsrepo.LedgerRepositoryFacade = (*LedgerRepository)(nil)
