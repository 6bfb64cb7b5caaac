package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dukerupert/kestrel/internal/domain"
)

const productColumns = `id, name, description, price, category, colors, image, stock, sold,
bestseller, active, created_at, updated_at`

func scanProduct(row rowScanner) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Category,
		&p.Colors,
		&p.Image,
		&p.Stock,
		&p.Sold,
		&p.Bestseller,
		&p.Active,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if p.Colors == nil {
		p.Colors = []string{}
	}
	return p, err
}

// ProductParams carries the writable product columns.
type ProductParams struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Colors      []string
	Image       string
	Stock       int
	Bestseller  bool
	Active      bool
}

func (p ProductParams) args() []any {
	colors := p.Colors
	if colors == nil {
		colors = []string{}
	}
	return []any{p.Name, p.Description, p.Price, p.Category, colors, p.Image, p.Stock, p.Bestseller, p.Active}
}

const createProduct = `-- name: CreateProduct :one
INSERT INTO products (name, description, price, category, colors, image, stock, bestseller, active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + productColumns

func (q *Queries) CreateProduct(ctx context.Context, arg ProductParams) (domain.Product, error) {
	return scanProduct(q.db.QueryRow(ctx, createProduct, arg.args()...))
}

const updateProduct = `-- name: UpdateProduct :one
UPDATE products
SET name = $2, description = $3, price = $4, category = $5, colors = $6, image = $7,
    stock = $8, bestseller = $9, active = $10, updated_at = NOW()
WHERE id = $1
RETURNING ` + productColumns

func (q *Queries) UpdateProduct(ctx context.Context, id uuid.UUID, arg ProductParams) (domain.Product, error) {
	args := append([]any{id}, arg.args()...)
	return scanProduct(q.db.QueryRow(ctx, updateProduct, args...))
}

const getProduct = `-- name: GetProduct :one
SELECT ` + productColumns + ` FROM products WHERE id = $1`

func (q *Queries) GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	return scanProduct(q.db.QueryRow(ctx, getProduct, id))
}

const getProductsByIDs = `-- name: GetProductsByIDs :many
SELECT ` + productColumns + ` FROM products WHERE id = ANY($1::uuid[])`

func (q *Queries) GetProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error) {
	rows, err := q.db.Query(ctx, getProductsByIDs, toPgUUIDs(ids))
	if err != nil {
		return nil, err
	}
	return collect(rows, scanProduct)
}

const listProducts = `-- name: ListProducts :many
SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`

func (q *Queries) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := q.db.Query(ctx, listProducts)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanProduct)
}

const listActiveProductsInCategories = `-- name: ListActiveProductsInCategories :many
SELECT ` + productColumns + `
FROM products
WHERE active AND category = ANY($1::text[])
ORDER BY bestseller DESC, created_at DESC`

func (q *Queries) ListActiveProductsInCategories(ctx context.Context, categories []string) ([]domain.Product, error) {
	if categories == nil {
		categories = []string{}
	}
	rows, err := q.db.Query(ctx, listActiveProductsInCategories, categories)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanProduct)
}

const incrementProductSold = `-- name: IncrementProductSold :exec
UPDATE products SET sold = sold + $2, updated_at = NOW() WHERE id = $1`

func (q *Queries) IncrementProductSold(ctx context.Context, id uuid.UUID, quantity int) error {
	_, err := q.db.Exec(ctx, incrementProductSold, id, quantity)
	return err
}
