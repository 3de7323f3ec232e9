package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/FlowCashApp/flowcash_backend/internal/apperrors"
	portsrepo "github.com/FlowCashApp/flowcash_backend/internal/core/ports/repositories"
	"github.com/FlowCashApp/flowcash_backend/internal/models"
)

// CurrencyRepository serves the static rate table. The table is immutable
// after construction, so no locking is needed.
type CurrencyRepository struct {
	byCode  map[string]models.Currency
	ordered []models.Currency
}

// NewCurrencyRepository creates a repository over the seeded rate table.
func NewCurrencyRepository(seed []models.Currency) *CurrencyRepository {
	r := &CurrencyRepository{
		byCode:  make(map[string]models.Currency, len(seed)),
		ordered: seed,
	}
	for _, curr := range seed {
		r.byCode[curr.CurrencyCode] = curr
	}
	return r
}

func (r *CurrencyRepository) FindCurrencyByCode(_ context.Context, currencyCode string) (*models.Currency, error) {
	curr, ok := r.byCode[strings.ToUpper(currencyCode)]
	if !ok {
		return nil, fmt.Errorf("currency '%s': %w", currencyCode, apperrors.ErrNotFound)
	}
	return &curr, nil
}

func (r *CurrencyRepository) ListCurrencies(_ context.Context) ([]models.Currency, error) {
	out := make([]models.Currency, len(r.ordered))
	copy(out, r.ordered)
	return out, nil
}

var _ portsrepo.CurrencyRepositoryFacade = (*CurrencyRepository)(nil)
