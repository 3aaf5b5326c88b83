package cart

import (
	"context"
	"log"
	"sync"

	cartrepo "robux-storefront/internal/repository/cart"
)

// Registry hands out one Store per session, restoring persisted
// contents the first time a session is seen. Sessions sharing a storage
// key across processes are last-writer-wins; nothing coordinates them.
type Registry struct {
	mu     sync.Mutex
	stores map[string]*Store
	repo   cartrepo.Repository
	logger *log.Logger
}

func NewRegistry(repo cartrepo.Repository, logger *log.Logger) *Registry {
	return &Registry{
		stores: map[string]*Store{},
		repo:   repo,
		logger: logger,
	}
}

// Get returns the Store for an owner, creating and restoring it on
// first use.
func (r *Registry) Get(ctx context.Context, ownerID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.stores[ownerID]; ok {
		return s
	}
	s := New(ctx, ownerID, r.repo, r.logger)
	r.stores[ownerID] = s
	return s
}
