package contact

import "context"

// Repository remembers the contact address a buyer last used, keyed by
// the owning session. It is independent of cart storage: a cleared cart
// does not forget the address.
type Repository interface {
	// Save stores or replaces the remembered address for an owner.
	Save(ctx context.Context, ownerID, address string) error
	// Load returns the remembered address, or domain.ErrNotFound when
	// nothing has been remembered yet.
	Load(ctx context.Context, ownerID string) (string, error)
}
