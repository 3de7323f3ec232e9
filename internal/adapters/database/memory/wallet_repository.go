package memory

import (
	"context"
	"sync"

	portsrepo "github.com/FlowCashApp/flowcash_backend/internal/core/ports/repositories"
	"github.com/FlowCashApp/flowcash_backend/internal/models"
	"github.com/shopspring/decimal"
)

// WalletRepository keeps the session wallet in process memory.
type WalletRepository struct {
	mu   sync.RWMutex
	user models.User
	seed models.User
}

// NewWalletRepository creates a wallet repository seeded with the given user.
func NewWalletRepository(seed models.User) *WalletRepository {
	return &WalletRepository{user: seed, seed: seed}
}

func (r *WalletRepository) FindUser(_ context.Context) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user := r.user
	return &user, nil
}

// AdjustBalance applies delta to the balance and returns the new value.
// The balance may go negative; there is no guard.
func (r *WalletRepository) AdjustBalance(_ context.Context, delta decimal.Decimal) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.user.WalletBalance = r.user.WalletBalance.Add(delta)
	return r.user.WalletBalance, nil
}

func (r *WalletRepository) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.user = r.seed
	return nil
}

var _ portsrepo.WalletRepositoryFacade = (*WalletRepository)(nil)
