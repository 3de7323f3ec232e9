package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/FlowCashApp/flowcash_backend/internal/apperrors"
	portsrepo "github.com/FlowCashApp/flowcash_backend/internal/core/ports/repositories"
	"github.com/FlowCashApp/flowcash_backend/internal/models"
)

// NearbyRequestRepository keeps the active set of nearby exchange requests
// in process memory.
type NearbyRequestRepository struct {
	mu       sync.RWMutex
	requests []models.NearbyRequest
	seed     []models.NearbyRequest
}

// NewNearbyRequestRepository creates a repository seeded with the given
// active requests.
func NewNearbyRequestRepository(seed []models.NearbyRequest) *NearbyRequestRepository {
	r := &NearbyRequestRepository{seed: seed}
	r.requests = append([]models.NearbyRequest(nil), seed...)
	return r
}

func (r *NearbyRequestRepository) ListActiveRequests(_ context.Context) ([]models.NearbyRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.NearbyRequest, len(r.requests))
	copy(out, r.requests)
	return out, nil
}

func (r *NearbyRequestRepository) FindRequestByID(_ context.Context, requestID string) (*models.NearbyRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.requests {
		if r.requests[i].RequestID == requestID {
			req := r.requests[i]
			return &req, nil
		}
	}
	return nil, fmt.Errorf("nearby request '%s': %w", requestID, apperrors.ErrNotFound)
}

func (r *NearbyRequestRepository) RemoveRequest(_ context.Context, requestID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.requests {
		if r.requests[i].RequestID == requestID {
			r.requests = append(r.requests[:i], r.requests[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("nearby request '%s': %w", requestID, apperrors.ErrNotFound)
}

func (r *NearbyRequestRepository) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append([]models.NearbyRequest(nil), r.seed...)
	return nil
}

var _ portsrepo.NearbyRequestRepositoryFacade = (*NearbyRequestRepository)(nil)
