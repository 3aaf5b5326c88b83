package cart

import (
	"context"
	"sync"

	"robux-storefront/internal/domain"
)

type memoryRepo struct {
	mu     sync.RWMutex
	states map[string]domain.CartState
}

// NewMemory returns an in-process Repository. It backs the service when
// no database is configured and doubles as the test repository.
func NewMemory() Repository {
	return &memoryRepo{states: map[string]domain.CartState{}}
}

func (r *memoryRepo) Save(_ context.Context, ownerID string, state domain.CartState) error {
	items := make([]domain.LineItem, len(state.Items))
	copy(items, state.Items)
	r.mu.Lock()
	r.states[ownerID] = domain.CartState{Items: items, Total: state.Total}
	r.mu.Unlock()
	return nil
}

func (r *memoryRepo) Load(_ context.Context, ownerID string) (domain.CartState, error) {
	r.mu.RLock()
	state, ok := r.states[ownerID]
	r.mu.RUnlock()
	if !ok {
		return domain.CartState{}, domain.ErrNotFound
	}
	items := make([]domain.LineItem, len(state.Items))
	copy(items, state.Items)
	return domain.CartState{Items: items, Total: state.Total}, nil
}

func (r *memoryRepo) Delete(_ context.Context, ownerID string) error {
	r.mu.Lock()
	delete(r.states, ownerID)
	r.mu.Unlock()
	return nil
}
