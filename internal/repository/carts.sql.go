package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/dukerupert/kestrel/internal/domain"
)

func scanCart(row rowScanner) (domain.Cart, error) {
	var (
		c     domain.Cart
		items []byte
	)
	if err := row.Scan(&c.MemberID, &items, &c.UpdatedAt); err != nil {
		return c, err
	}
	if err := json.Unmarshal(items, &c.Items); err != nil {
		return c, fmt.Errorf("decode cart items: %w", err)
	}
	if c.Items == nil {
		c.Items = []domain.CartItem{}
	}
	return c, nil
}

const ensureCart = `-- name: EnsureCart :exec
INSERT INTO carts (member_id) VALUES ($1)
ON CONFLICT (member_id) DO NOTHING`

func (q *Queries) EnsureCart(ctx context.Context, memberID uuid.UUID) error {
	_, err := q.db.Exec(ctx, ensureCart, memberID)
	return err
}

const getCart = `-- name: GetCart :one
SELECT member_id, items, updated_at FROM carts WHERE member_id = $1`

func (q *Queries) GetCart(ctx context.Context, memberID uuid.UUID) (domain.Cart, error) {
	return scanCart(q.db.QueryRow(ctx, getCart, memberID))
}

const getCartForUpdate = `-- name: GetCartForUpdate :one
SELECT member_id, items, updated_at FROM carts WHERE member_id = $1 FOR UPDATE`

// GetCartForUpdate locks the cart row until the surrounding transaction ends.
func (q *Queries) GetCartForUpdate(ctx context.Context, memberID uuid.UUID) (domain.Cart, error) {
	return scanCart(q.db.QueryRow(ctx, getCartForUpdate, memberID))
}

const saveCart = `-- name: SaveCart :one
INSERT INTO carts (member_id, items, updated_at) VALUES ($1, $2, NOW())
ON CONFLICT (member_id) DO UPDATE SET items = EXCLUDED.items, updated_at = NOW()
RETURNING member_id, items, updated_at`

func (q *Queries) SaveCart(ctx context.Context, memberID uuid.UUID, items []domain.CartItem) (domain.Cart, error) {
	if items == nil {
		items = []domain.CartItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("encode cart items: %w", err)
	}
	return scanCart(q.db.QueryRow(ctx, saveCart, memberID, data))
}

const clearCart = `-- name: ClearCart :exec
UPDATE carts SET items = '[]', updated_at = NOW() WHERE member_id = $1`

func (q *Queries) ClearCart(ctx context.Context, memberID uuid.UUID) error {
	_, err := q.db.Exec(ctx, clearCart, memberID)
	return err
}
