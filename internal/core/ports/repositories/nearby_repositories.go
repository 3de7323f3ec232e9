package repositories

import (
	"context"

	"github.com/FlowCashApp/flowcash_backend/internal/models"
)

// NearbyRequestRepositoryFacade defines storage operations for the active set
// of nearby exchange requests.
type NearbyRequestRepositoryFacade interface {
	ListActiveRequests(ctx context.Context) ([]models.NearbyRequest, error)

	// FindRequestByID returns apperrors.ErrNotFound when the request is not
	// in the active set.
	FindRequestByID(ctx context.Context, requestID string) (*models.NearbyRequest, error)

	// RemoveRequest takes a fulfilled request out of the active set.
	RemoveRequest(ctx context.Context, requestID string) error

	// Reset restores the active set to its seeded state.
	Reset(ctx context.Context) error
}
