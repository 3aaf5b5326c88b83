package contact

import (
	"context"
	"sync"

	"robux-storefront/internal/domain"
)

type memoryRepo struct {
	mu        sync.RWMutex
	addresses map[string]string
}

// NewMemory returns an in-process Repository.
func NewMemory() Repository {
	return &memoryRepo{addresses: map[string]string{}}
}

func (r *memoryRepo) Save(_ context.Context, ownerID, address string) error {
	r.mu.Lock()
	r.addresses[ownerID] = address
	r.mu.Unlock()
	return nil
}

func (r *memoryRepo) Load(_ context.Context, ownerID string) (string, error) {
	r.mu.RLock()
	address, ok := r.addresses[ownerID]
	r.mu.RUnlock()
	if !ok {
		return "", domain.ErrNotFound
	}
	return address, nil
}
