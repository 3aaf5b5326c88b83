package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"robux-storefront/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

// NewPostgres returns a Repository backed by the cart_snapshots table.
// Each owner holds exactly one row with the full cart serialized as JSON.
func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Save(ctx context.Context, ownerID string, state domain.CartState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal cart state: %w", err)
	}
	const q = `
INSERT INTO cart_snapshots (owner_id, payload, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (owner_id) DO UPDATE
SET payload = EXCLUDED.payload, updated_at = now()
`
	if _, err := r.pool.Exec(ctx, q, ownerID, payload); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (r *postgresRepo) Load(ctx context.Context, ownerID string) (domain.CartState, error) {
	const q = `
SELECT payload
FROM cart_snapshots
WHERE owner_id = $1
`
	var payload []byte
	if err := r.pool.QueryRow(ctx, q, ownerID).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.CartState{}, domain.ErrNotFound
		}
		return domain.CartState{}, fmt.Errorf("load cart: %w", err)
	}
	var state domain.CartState
	if err := json.Unmarshal(payload, &state); err != nil {
		return domain.CartState{}, fmt.Errorf("decode cart state: %w", err)
	}
	return state, nil
}

func (r *postgresRepo) Delete(ctx context.Context, ownerID string) error {
	const q = `
DELETE FROM cart_snapshots
WHERE owner_id = $1
`
	if _, err := r.pool.Exec(ctx, q, ownerID); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}
