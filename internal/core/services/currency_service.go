package services

import (
	"context"
	"fmt"

	portsrepo "github.com/FlowCashApp/flowcash_backend/internal/core/ports/repositories"
	portssvc "github.com/FlowCashApp/flowcash_backend/internal/core/ports/services"
	"github.com/FlowCashApp/flowcash_backend/internal/models"
)

// CurrencyService serves the static currency rate table.
type CurrencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*models.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]models.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []models.Currency{}, nil
	}
	return currencies, nil
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)
