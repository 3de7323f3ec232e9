package services

import (
	"context"

	"github.com/FlowCashApp/flowcash_backend/internal/models"
)

// CurrencySvcFacade exposes the static currency rate table.
type CurrencySvcFacade interface {
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*models.Currency, error)
	ListCurrencies(ctx context.Context) ([]models.Currency, error)
}
