package cart

import (
	"context"

	"robux-storefront/internal/domain"
)

// Repository persists full cart states keyed by the owning session.
// Persistence is best-effort; callers are expected to treat errors as
// diagnostics, not as failures of the cart operation itself.
type Repository interface {
	// Save writes the complete serialized cart for an owner,
	// replacing whatever was stored before.
	Save(ctx context.Context, ownerID string, state domain.CartState) error
	// Load returns the stored cart for an owner, or domain.ErrNotFound.
	Load(ctx context.Context, ownerID string) (domain.CartState, error)
	// Delete removes the stored cart. Deleting an absent cart is not
	// an error.
	Delete(ctx context.Context, ownerID string) error
}
