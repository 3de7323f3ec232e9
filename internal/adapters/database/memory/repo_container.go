package memory

import (
	portsrepo "github.com/FlowCashApp/flowcash_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all in-memory repositories over a single seed.
func NewRepositoryProvider(seed SeedData) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		WalletRepo:   NewWalletRepository(seed.User),
		LedgerRepo:   NewLedgerRepository(seed.Transactions),
		NearbyRepo:   NewNearbyRequestRepository(seed.NearbyRequests),
		CurrencyRepo: NewCurrencyRepository(seed.Currencies),
	}
}
