package services

import (
	portsai "github.com/FlowCashApp/flowcash_backend/internal/core/ports/ai"
	portsrepo "github.com/FlowCashApp/flowcash_backend/internal/core/ports/repositories"
	portssvc "github.com/FlowCashApp/flowcash_backend/internal/core/ports/services"
	"github.com/FlowCashApp/flowcash_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, generator portsai.TextGenerator) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The gateway is created first since the orchestrator and insight
	// services depend on it.
	container.Gateway = NewAIGatewayService(generator, cfg.GeminiModel)

	container.Wallet = NewWalletService(repos.WalletRepo)
	container.Ledger = NewLedgerService(repos.LedgerRepo)
	container.Currency = NewCurrencyService(repos.CurrencyRepo)

	container.Exchange = NewExchangeService(
		repos.NearbyRepo,
		repos.WalletRepo,
		repos.CurrencyRepo,
		repos.LedgerRepo,
		container.Gateway,
		cfg.ConvertDeduction,
	)

	container.Insight = NewInsightService(repos.WalletRepo, repos.LedgerRepo, container.Gateway)

	return container
}
