// Package cart implements the cart store: the single source of truth
// for a session's selections and the only writer of their persisted
// state.
package cart

import (
	"context"
	"errors"
	"log"
	"sync"

	"robux-storefront/internal/domain"
	cartrepo "robux-storefront/internal/repository/cart"
)

// Store owns one session's cart. All mutations are serialized by the
// store's mutex and synchronously written through the repository before
// returning; a failed write is logged and swallowed so cart operations
// never fail because of a storage problem.
type Store struct {
	mu      sync.Mutex
	ownerID string
	items   []domain.LineItem
	repo    cartrepo.Repository
	logger  *log.Logger
}

// New builds a Store for an owner, restoring persisted contents. A
// missing or unreadable snapshot yields an empty cart.
func New(ctx context.Context, ownerID string, repo cartrepo.Repository, logger *log.Logger) *Store {
	s := &Store{ownerID: ownerID, repo: repo, logger: logger}
	state, err := repo.Load(ctx, ownerID)
	switch {
	case err == nil:
		s.items = state.Items
	case errors.Is(err, domain.ErrNotFound):
	default:
		logger.Printf("restore cart %s: %v", ownerID, err)
	}
	return s
}

// AddItem inserts a new line item with quantity 1, or increments the
// quantity of an existing item with the same ID. The candidate's price
// and display fields are ignored for an existing item: first write wins.
func (s *Store) AddItem(ctx context.Context, candidate domain.LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == candidate.ID {
			s.items[i].Quantity++
			s.persistLocked(ctx)
			return
		}
	}
	candidate.Quantity = 1
	s.items = append(s.items, candidate)
	s.persistLocked(ctx)
}

// RemoveItem deletes the line item with the given ID. Removing an
// absent ID is a no-op.
func (s *Store) RemoveItem(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persistLocked(ctx)
			return
		}
	}
}

// UpdateQuantity sets the quantity of a line item. A quantity of zero
// or below removes the item; an absent ID is a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, id string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(ctx, id)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			s.persistLocked(ctx)
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persistLocked(ctx)
}

// TotalItems is the sum of quantities over all line items.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, li := range s.items {
		total += li.Quantity
	}
	return total
}

// TotalPrice is the sum of unit price times quantity over all line
// items, recomputed from the current contents.
func (s *Store) TotalPrice() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, li := range s.items {
		total += li.LineTotal()
	}
	return total
}

// Items returns a copy of the current line items.
func (s *Store) Items() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Snapshot returns the derived view of the cart: a value copy of the
// items plus freshly computed totals.
func (s *Store) Snapshot() domain.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.SnapshotOf(s.items)
}

func (s *Store) persistLocked(ctx context.Context) {
	state := domain.CartState{Items: make([]domain.LineItem, len(s.items))}
	copy(state.Items, s.items)
	for _, li := range s.items {
		state.Total += li.LineTotal()
	}
	if err := s.repo.Save(ctx, s.ownerID, state); err != nil {
		s.logger.Printf("persist cart %s: %v", s.ownerID, err)
	}
}
