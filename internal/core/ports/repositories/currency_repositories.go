package repositories

import (
	"context"

	"github.com/FlowCashApp/flowcash_backend/internal/models"
)

// CurrencyRepositoryFacade defines read operations on the static currency
// rate table. The table is immutable after seeding.
type CurrencyRepositoryFacade interface {
	// FindCurrencyByCode returns apperrors.ErrNotFound for unknown codes.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*models.Currency, error)

	ListCurrencies(ctx context.Context) ([]models.Currency, error)
}
