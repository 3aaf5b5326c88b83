package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"robux-storefront/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

// NewPostgres returns a Repository backed by the remembered_contacts table.
func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Save(ctx context.Context, ownerID, address string) error {
	const q = `
INSERT INTO remembered_contacts (owner_id, address, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (owner_id) DO UPDATE
SET address = EXCLUDED.address, updated_at = now()
`
	if _, err := r.pool.Exec(ctx, q, ownerID, address); err != nil {
		return fmt.Errorf("save contact: %w", err)
	}
	return nil
}

func (r *postgresRepo) Load(ctx context.Context, ownerID string) (string, error) {
	const q = `
SELECT address
FROM remembered_contacts
WHERE owner_id = $1
`
	var address string
	if err := r.pool.QueryRow(ctx, q, ownerID).Scan(&address); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("load contact: %w", err)
	}
	return address, nil
}
