package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dukerupert/kestrel/internal/domain"
)

const orderColumns = `id, member_id, items, amount, address, payment_method, gateway_payment_id,
gateway_order_id, status, created_at, updated_at`

func scanOrder(row rowScanner) (domain.Order, error) {
	var (
		o       domain.Order
		items   []byte
		address []byte
	)
	err := row.Scan(
		&o.ID,
		&o.MemberID,
		&items,
		&o.Amount,
		&address,
		&o.PaymentMethod,
		&o.GatewayPaymentID,
		&o.GatewayOrderID,
		&o.Status,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return o, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return o, fmt.Errorf("decode order items: %w", err)
	}
	if err := json.Unmarshal(address, &o.Address); err != nil {
		return o, fmt.Errorf("decode order address: %w", err)
	}
	return o, nil
}

const createOrder = `-- name: CreateOrder :one
INSERT INTO orders (member_id, items, amount, address, payment_method, gateway_payment_id,
    gateway_order_id, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + orderColumns

type CreateOrderParams struct {
	MemberID         uuid.UUID
	Items            []domain.LineItem
	Amount           decimal.Decimal
	Address          domain.Address
	PaymentMethod    domain.PaymentMethod
	GatewayPaymentID *string
	GatewayOrderID   *string
	Status           domain.OrderStatus
}

func (q *Queries) CreateOrder(ctx context.Context, arg CreateOrderParams) (domain.Order, error) {
	items, err := json.Marshal(arg.Items)
	if err != nil {
		return domain.Order{}, fmt.Errorf("encode order items: %w", err)
	}
	address, err := json.Marshal(arg.Address)
	if err != nil {
		return domain.Order{}, fmt.Errorf("encode order address: %w", err)
	}
	row := q.db.QueryRow(ctx, createOrder,
		arg.MemberID,
		items,
		arg.Amount,
		address,
		string(arg.PaymentMethod),
		arg.GatewayPaymentID,
		arg.GatewayOrderID,
		string(arg.Status),
	)
	return scanOrder(row)
}

const getOrder = `-- name: GetOrder :one
SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

func (q *Queries) GetOrder(ctx context.Context, id uuid.UUID) (domain.Order, error) {
	return scanOrder(q.db.QueryRow(ctx, getOrder, id))
}

const getOrderForUpdate = `-- name: GetOrderForUpdate :one
SELECT ` + orderColumns + ` FROM orders WHERE id = $1 FOR UPDATE`

// GetOrderForUpdate locks the order row until the surrounding transaction ends.
func (q *Queries) GetOrderForUpdate(ctx context.Context, id uuid.UUID) (domain.Order, error) {
	return scanOrder(q.db.QueryRow(ctx, getOrderForUpdate, id))
}

const getOrderByGatewayOrderID = `-- name: GetOrderByGatewayOrderID :one
SELECT ` + orderColumns + ` FROM orders WHERE gateway_order_id = $1`

func (q *Queries) GetOrderByGatewayOrderID(ctx context.Context, gatewayOrderID string) (domain.Order, error) {
	return scanOrder(q.db.QueryRow(ctx, getOrderByGatewayOrderID, gatewayOrderID))
}

const listOrdersByMember = `-- name: ListOrdersByMember :many
SELECT ` + orderColumns + ` FROM orders WHERE member_id = $1 ORDER BY created_at DESC`

func (q *Queries) ListOrdersByMember(ctx context.Context, memberID uuid.UUID) ([]domain.Order, error) {
	rows, err := q.db.Query(ctx, listOrdersByMember, memberID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanOrder)
}

const listOrders = `-- name: ListOrders :many
SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`

func (q *Queries) ListOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := q.db.Query(ctx, listOrders)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanOrder)
}

const updateOrderStatus = `-- name: UpdateOrderStatus :one
UPDATE orders SET status = $2, updated_at = NOW()
WHERE id = $1
RETURNING ` + orderColumns

func (q *Queries) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) (domain.Order, error) {
	return scanOrder(q.db.QueryRow(ctx, updateOrderStatus, id, string(status)))
}

const createOrderStatusEvent = `-- name: CreateOrderStatusEvent :one
INSERT INTO order_status_events (order_id, from_status, to_status, actor_id, reason)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, order_id, from_status, to_status, actor_id, reason, created_at`

type CreateOrderStatusEventParams struct {
	OrderID uuid.UUID
	From    domain.OrderStatus
	To      domain.OrderStatus
	ActorID *uuid.UUID
	Reason  string
}

func scanOrderStatusEvent(row rowScanner) (domain.OrderStatusEvent, error) {
	var e domain.OrderStatusEvent
	err := row.Scan(&e.ID, &e.OrderID, &e.From, &e.To, &e.ActorID, &e.Reason, &e.CreatedAt)
	return e, err
}

func (q *Queries) CreateOrderStatusEvent(ctx context.Context, arg CreateOrderStatusEventParams) (domain.OrderStatusEvent, error) {
	row := q.db.QueryRow(ctx, createOrderStatusEvent,
		arg.OrderID,
		string(arg.From),
		string(arg.To),
		arg.ActorID,
		arg.Reason,
	)
	return scanOrderStatusEvent(row)
}

const listOrderStatusEvents = `-- name: ListOrderStatusEvents :many
SELECT id, order_id, from_status, to_status, actor_id, reason, created_at
FROM order_status_events WHERE order_id = $1 ORDER BY created_at`

func (q *Queries) ListOrderStatusEvents(ctx context.Context, orderID uuid.UUID) ([]domain.OrderStatusEvent, error) {
	rows, err := q.db.Query(ctx, listOrderStatusEvents, orderID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanOrderStatusEvent)
}

const categoryPerformance = `-- name: CategoryPerformance :many
SELECT
    item->>'category' AS category,
    COALESCE(SUM(
        (item->>'price')::numeric * (item->>'quantity')::int
        * (1 - COALESCE((item->>'discount')::numeric, 0) / 100)
    ), 0)::numeric(14, 2) AS total_sales,
    COUNT(DISTINCT o.id) AS order_count,
    COALESCE(SUM((item->>'quantity')::int), 0) AS item_count
FROM orders o
CROSS JOIN LATERAL jsonb_array_elements(o.items) AS item
WHERE o.status <> 'cancelled'
GROUP BY item->>'category'
ORDER BY total_sales DESC`

func (q *Queries) CategoryPerformance(ctx context.Context) ([]domain.CategoryPerformance, error) {
	rows, err := q.db.Query(ctx, categoryPerformance)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row rowScanner) (domain.CategoryPerformance, error) {
		var c domain.CategoryPerformance
		err := row.Scan(&c.Category, &c.TotalSales, &c.OrderCount, &c.ItemCount)
		return c, err
	})
}
