package checkout

import (
	"context"
	"errors"
	"log"
	"sync"

	"robux-storefront/internal/cart"
	"robux-storefront/internal/domain"
	contactrepo "robux-storefront/internal/repository/contact"
)

// Service manages one active wizard per session. Opening a checkout
// snapshots the session's cart and pre-fills the remembered contact
// address; completing one clears the cart and remembers the address the
// buyer actually typed.
type Service struct {
	mu      sync.Mutex
	wizards map[string]*Wizard

	carts    *cart.Registry
	contacts contactrepo.Repository
	gateway  Gateway
	cfg      Config
	logger   *log.Logger
}

func NewService(carts *cart.Registry, contacts contactrepo.Repository, gateway Gateway, cfg Config, logger *log.Logger) *Service {
	return &Service{
		wizards:  map[string]*Wizard{},
		carts:    carts,
		contacts: contacts,
		gateway:  gateway,
		cfg:      cfg,
		logger:   logger,
	}
}

// Open starts a checkout for a session, replacing any previous wizard.
// The replaced wizard is closed so a stray processing timer cannot act.
func (s *Service) Open(ctx context.Context, ownerID string) *Wizard {
	snapshot := s.carts.Get(ctx, ownerID).Snapshot()

	prefill := ""
	if addr, err := s.contacts.Load(ctx, ownerID); err == nil {
		prefill = addr
	} else if !errors.Is(err, domain.ErrNotFound) {
		s.logger.Printf("load remembered contact %s: %v", ownerID, err)
	}

	w := NewWizard(snapshot, prefill, s.gateway, s.cfg, s.logger, func(summary domain.OrderSummary, contactEntered bool) {
		s.completed(ownerID, summary, contactEntered)
	})

	s.mu.Lock()
	if old, ok := s.wizards[ownerID]; ok {
		old.Close()
	}
	s.wizards[ownerID] = w
	s.mu.Unlock()
	return w
}

// Get returns the session's active wizard, if any.
func (s *Service) Get(ownerID string) (*Wizard, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wizards[ownerID]
	return w, ok
}

// Close cancels the session's wizard without touching the cart.
func (s *Service) Close(ownerID string) {
	s.mu.Lock()
	w, ok := s.wizards[ownerID]
	delete(s.wizards, ownerID)
	s.mu.Unlock()
	if ok {
		w.Close()
	}
}

func (s *Service) completed(ownerID string, summary domain.OrderSummary, contactEntered bool) {
	ctx := context.Background()
	s.carts.Get(ctx, ownerID).Clear(ctx)
	if contactEntered {
		if err := s.contacts.Save(ctx, ownerID, summary.ContactAddress); err != nil {
			s.logger.Printf("remember contact %s: %v", ownerID, err)
		}
	}
	s.logger.Printf("order %s completed for %q: %d items, total %d via %s",
		summary.OrderID, summary.RecipientHandle, len(summary.LineItems), summary.TotalPrice, summary.PaymentMethod)
}
