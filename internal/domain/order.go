package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// ORDER DOMAIN TYPES
// =============================================================================

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// orderTransitions lists the states reachable from each state. States not
// listed as keys are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
}

// ParseOrderStatus validates s against the five known statuses.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch status := OrderStatus(s); status {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return status, nil
	}
	return "", NewValidationError("order.status", "status", "must be one of pending, processing, shipped, delivered, cancelled")
}

// CanTransitionTo reports whether the lifecycle table allows moving from s
// to next. Same-state writes are not transitions.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

// PaymentMethod selects how an order is paid.
type PaymentMethod string

const (
	PaymentMethodOnline PaymentMethod = "online"
	PaymentMethodCOD    PaymentMethod = "cod"
)

// Address is a shipping address. Postal code and phone are digit strings.
type Address struct {
	Street  string `json:"street" validate:"required,max=300"`
	City    string `json:"city" validate:"required,max=100"`
	State   string `json:"state" validate:"required,max=100"`
	Pincode string `json:"pincode" validate:"required,len=6,digits"`
	Phone   string `json:"phone" validate:"required,len=10,digits"`
}

// LineItem is one product, quantity, price and discount tuple of an order,
// snapshotted at purchase time.
type LineItem struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Image     string          `json:"image,omitempty"`
	Category  string          `json:"category"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Discount  decimal.Decimal `json:"discount"`
	Size      string          `json:"size,omitempty"`
}

// Order is immutable after creation except for Status and the gateway
// identifiers.
type Order struct {
	ID               uuid.UUID       `json:"id"`
	MemberID         uuid.UUID       `json:"member_id"`
	Items            []LineItem      `json:"items"`
	Amount           decimal.Decimal `json:"amount"`
	Address          Address         `json:"address"`
	PaymentMethod    PaymentMethod   `json:"payment_method"`
	GatewayPaymentID *string         `json:"gateway_payment_id,omitempty"`
	GatewayOrderID   *string         `json:"gateway_order_id,omitempty"`
	Status           OrderStatus     `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// OrderStatusEvent records one accepted status transition.
type OrderStatusEvent struct {
	ID        uuid.UUID   `json:"id"`
	OrderID   uuid.UUID   `json:"order_id"`
	From      OrderStatus `json:"from"`
	To        OrderStatus `json:"to"`
	ActorID   *uuid.UUID  `json:"actor_id,omitempty"`
	Reason    string      `json:"reason,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// LineItemInput is a line of a submitted cart snapshot. Price and Discount
// are optional client claims checked against server pricing.
type LineItemInput struct {
	ProductID uuid.UUID        `json:"product_id" validate:"required"`
	Quantity  int              `json:"quantity" validate:"min=1,max=1000"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	Discount  *decimal.Decimal `json:"discount,omitempty"`
	Size      string           `json:"size,omitempty" validate:"max=20"`
}

// CreateOrderParams is a cart snapshot submitted for order placement.
type CreateOrderParams struct {
	Items            []LineItemInput  `json:"items" validate:"required,min=1,max=100,dive"`
	Address          Address          `json:"address"`
	PaymentMethod    PaymentMethod    `json:"payment_method" validate:"required,oneof=online cod"`
	Amount           *decimal.Decimal `json:"amount,omitempty"`
	GatewayPaymentID string           `json:"gateway_payment_id,omitempty"`
	GatewayOrderID   string           `json:"gateway_order_id,omitempty"`
}

// Order-related domain errors.
var (
	ErrOrderNotFound       = &Error{Code: ENOTFOUND, Message: "Order not found"}
	ErrNotOrderOwner       = &Error{Code: EFORBIDDEN, Message: "You don't have permission to access this order"}
	ErrAmountMismatch      = &Error{Code: EINVALID, Message: "Order amount does not match calculated total"}
	ErrPaymentRequired     = &Error{Code: EPAYMENT, Message: "Online orders require a confirmed payment"}
	ErrPaymentNotSucceeded = &Error{Code: EPAYMENT, Message: "Payment has not succeeded"}
	ErrPaymentMismatch     = &Error{Code: EPAYMENT, Message: "Payment does not match this order"}
	ErrPaymentAlreadyUsed  = &Error{Code: ECONFLICT, Message: "Payment is already attached to another order"}
	ErrIllegalTransition   = &Error{Code: ECONFLICT, Message: "Order status transition is not allowed"}
	ErrUnexpectedPayment   = &Error{Code: EINVALID, Message: "Cash on delivery orders cannot carry payment identifiers"}
)

// OrderService assembles cart snapshots into persisted orders.
type OrderService interface {
	// CreateOrder validates and prices params for the caller in context and
	// persists the order with status pending. The member's cart is cleared
	// in the same transaction. No write happens on failure.
	CreateOrder(ctx context.Context, params CreateOrderParams) (*Order, error)
}

// OrderLifecycleService governs reads and status changes of existing orders.
type OrderLifecycleService interface {
	// GetOrder returns the order if the caller owns it or is an administrator.
	GetOrder(ctx context.Context, id uuid.UUID) (*Order, error)

	// ListOrdersForMember returns the member's orders, newest first.
	ListOrdersForMember(ctx context.Context, memberID uuid.UUID) ([]Order, error)

	// ListAllOrders returns every order, newest first. Administrators only.
	ListAllOrders(ctx context.Context) ([]Order, error)

	// UpdateStatus moves an order along the lifecycle table.
	// Administrators only.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*Order, error)

	// CancelByGatewayOrder cancels the order paid through gatewayOrderID when
	// the lifecycle allows it. Used by verified gateway notifications.
	CancelByGatewayOrder(ctx context.Context, gatewayOrderID, reason string) (*Order, error)

	// ListStatusEvents returns the transition audit trail of an order.
	ListStatusEvents(ctx context.Context, id uuid.UUID) ([]OrderStatusEvent, error)
}

// PaymentIntent is a gateway-side intent to collect an order amount.
type PaymentIntent struct {
	ID           string          `json:"id"`
	ClientSecret string          `json:"client_secret"`
	Amount       decimal.Decimal `json:"amount"`
	AmountMinor  int64           `json:"amount_minor"`
	Currency     string          `json:"currency"`
}

// ConfirmPaymentParams carries gateway identifiers reported by the client
// after a successful payment, together with the order draft.
type ConfirmPaymentParams struct {
	GatewayPaymentID string            `json:"gateway_payment_id" validate:"required"`
	GatewayOrderID   string            `json:"gateway_order_id" validate:"required"`
	Order            CreateOrderParams `json:"order"`
}

// PaymentService coordinates the payment gateway with order placement.
type PaymentService interface {
	// CreatePaymentIntent opens a gateway intent for amount. No order exists yet.
	CreatePaymentIntent(ctx context.Context, amount decimal.Decimal) (*PaymentIntent, error)

	// ConfirmPayment verifies the payment with the gateway and places the
	// order with the gateway identifiers attached. Retried confirmations
	// return the order already placed for the same gateway order.
	ConfirmPayment(ctx context.Context, params ConfirmPaymentParams) (*Order, error)
}
