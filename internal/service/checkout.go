package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dukerupert/kestrel/internal/billing"
	"github.com/dukerupert/kestrel/internal/domain"
	"github.com/dukerupert/kestrel/internal/entitlement"
	"github.com/dukerupert/kestrel/internal/events"
	"github.com/dukerupert/kestrel/internal/pricing"
	"github.com/dukerupert/kestrel/internal/repository"
	"github.com/dukerupert/kestrel/internal/telemetry"
)

// minorUnitsPerMajor converts order amounts to gateway subunits.
const minorUnitsPerMajor = 100

// Partial unique indexes on the gateway identifiers.
const (
	ordersGatewayOrderIDKey   = "orders_gateway_order_id_key"
	ordersGatewayPaymentIDKey = "orders_gateway_payment_id_key"
)

// CheckoutConfig holds the gateway settings shared by order placement and
// payment coordination.
type CheckoutConfig struct {
	// Currency is the gateway currency code. Defaults to billing.DefaultCurrency.
	Currency string
}

// checkout holds what both order placement paths need: server-side
// repricing, payment verification and the order transaction.
type checkout struct {
	store     repository.Store
	resolver  Resolver
	provider  billing.Provider
	publisher events.Publisher
	currency  string
	logger    *slog.Logger
}

func newCheckout(store repository.Store, resolver Resolver, provider billing.Provider, publisher events.Publisher, cfg CheckoutConfig, logger *slog.Logger) *checkout {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	currency := cfg.Currency
	if currency == "" {
		currency = billing.DefaultCurrency
	}
	return &checkout{
		store:     store,
		resolver:  resolver,
		provider:  provider,
		publisher: publisher,
		currency:  currency,
		logger:    logger,
	}
}

// assemble validates params and reprices every line against the current
// catalog and the caller's scope. Client price and discount claims must
// equal the server values; the client amount must match the server total
// within pricing.Epsilon. Nothing is written.
func (c *checkout) assemble(ctx context.Context, scope *entitlement.Scope, params domain.CreateOrderParams) (repository.CreateOrderParams, error) {
	const op = "order.create"

	if err := domain.Validate(op, params); err != nil {
		telemetry.Business.RecordOrderRejected("validation")
		return repository.CreateOrderParams{}, err
	}

	ids := make([]uuid.UUID, 0, len(params.Items))
	for _, item := range params.Items {
		ids = append(ids, item.ProductID)
	}
	products, err := c.store.GetProductsByIDs(ctx, ids)
	if err != nil {
		return repository.CreateOrderParams{}, domain.Internal(err, op, "failed to load products")
	}
	byID := make(map[uuid.UUID]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]domain.LineItem, 0, len(params.Items))
	for i, in := range params.Items {
		field := fmt.Sprintf("items[%d]", i)

		product, ok := byID[in.ProductID]
		if !ok {
			telemetry.Business.RecordOrderRejected("product_not_found")
			return repository.CreateOrderParams{}, domain.NotFound(op, "product", in.ProductID.String())
		}
		if !product.Active {
			telemetry.Business.RecordOrderRejected("product_inactive")
			return repository.CreateOrderParams{}, domain.NewValidationError(op, field+".product_id", ErrProductInactive.Error())
		}
		if !scope.Allows(product.Category) {
			telemetry.Business.RecordOrderRejected("category_not_allowed")
			return repository.CreateOrderParams{}, domain.ErrCategoryNotAllowed
		}

		discount := scope.DiscountFor(product)
		if in.Price != nil && !in.Price.Equal(product.Price) {
			telemetry.Business.RecordOrderRejected("price_changed")
			return repository.CreateOrderParams{}, domain.NewValidationError(op, field+".price", "line price changed")
		}
		if in.Discount != nil && !in.Discount.Equal(discount) {
			telemetry.Business.RecordOrderRejected("price_changed")
			return repository.CreateOrderParams{}, domain.NewValidationError(op, field+".discount", "line price changed")
		}

		items = append(items, domain.LineItem{
			ProductID: product.ID,
			Name:      product.Name,
			Image:     product.Image,
			Category:  product.Category,
			Quantity:  in.Quantity,
			Price:     product.Price,
			Discount:  discount,
			Size:      in.Size,
		})
	}

	total := pricing.OrderTotal(items)
	if err := pricing.ValidateAmount(op, "amount", total); err != nil {
		telemetry.Business.RecordOrderRejected("amount_too_large")
		return repository.CreateOrderParams{}, err
	}
	if params.Amount != nil && !pricing.AmountMatches(*params.Amount, total) {
		telemetry.Business.RecordOrderRejected("amount_mismatch")
		c.logger.Warn("order amount mismatch",
			"member_id", scope.Identity.MemberID,
			"claimed", params.Amount.String(),
			"computed", total.String(),
		)
		return repository.CreateOrderParams{}, domain.ErrAmountMismatch
	}

	return repository.CreateOrderParams{
		MemberID:      scope.Identity.MemberID,
		Items:         items,
		Amount:        total.Round(2),
		Address:       params.Address,
		PaymentMethod: params.PaymentMethod,
		Status:        domain.OrderStatusPending,
	}, nil
}

// verifyPayment fetches the intent from the gateway and attaches the
// identifiers to arg only if the intent succeeded for this member, this
// amount and this charge.
func (c *checkout) verifyPayment(ctx context.Context, arg *repository.CreateOrderParams, gatewayPaymentID, gatewayOrderID string) error {
	const op = "payment.verify"

	if c.provider == nil {
		return domain.ErrPaymentRequired
	}

	start := time.Now()
	intent, err := c.provider.GetPaymentIntent(ctx, gatewayOrderID)
	telemetry.Business.ObserveStripeCall("get_payment_intent", start)
	if err != nil {
		telemetry.Business.RecordPaymentConfirmation("gateway_error")
		if errors.Is(err, billing.ErrPaymentIntentNotFound) {
			return domain.ErrPaymentMismatch
		}
		return domain.Gateway(err, op, "failed to verify payment")
	}

	if !intent.Succeeded() {
		telemetry.Business.RecordPaymentConfirmation("not_succeeded")
		return domain.ErrPaymentNotSucceeded
	}

	expected, err := pricing.ToMinorUnits(arg.Amount, minorUnitsPerMajor)
	if err != nil {
		return domain.Internal(err, op, "failed to convert order amount")
	}
	switch {
	case intent.Metadata[billing.MetadataMemberID] != arg.MemberID.String(),
		intent.AmountMinor != expected,
		intent.Currency != c.currency,
		intent.ChargeID != gatewayPaymentID:
		telemetry.Business.RecordPaymentConfirmation("mismatch")
		c.logger.Warn("payment does not match order",
			"member_id", arg.MemberID,
			"gateway_order_id", gatewayOrderID,
			"intent_amount", intent.AmountMinor,
			"expected_amount", expected,
		)
		return domain.ErrPaymentMismatch
	}

	arg.GatewayPaymentID = &gatewayPaymentID
	arg.GatewayOrderID = &gatewayOrderID
	return nil
}

// place writes the order, the product sales counters and the emptied cart
// in one transaction, then publishes order.created.
func (c *checkout) place(ctx context.Context, arg repository.CreateOrderParams) (*domain.Order, error) {
	const op = "order.create"

	var order domain.Order
	err := c.store.ExecTx(ctx, func(q repository.Querier) error {
		var err error
		order, err = q.CreateOrder(ctx, arg)
		if repository.IsUniqueViolation(err, ordersGatewayOrderIDKey) || repository.IsUniqueViolation(err, ordersGatewayPaymentIDKey) {
			return domain.ErrPaymentAlreadyUsed
		}
		if err != nil {
			return domain.Internal(err, op, "failed to save order")
		}

		for _, item := range arg.Items {
			if err := q.IncrementProductSold(ctx, item.ProductID, item.Quantity); err != nil {
				return domain.Internal(err, op, "failed to update product sales")
			}
		}

		if err := q.ClearCart(ctx, arg.MemberID); err != nil {
			return domain.Internal(err, op, "failed to clear cart")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	amount, _ := order.Amount.Float64()
	telemetry.Business.RecordOrderCreated(string(order.PaymentMethod), amount, len(order.Items))
	c.publish(ctx, events.SubjectOrderCreated, events.NewOrderEvent(&order, "", ""))

	c.logger.Info("order created",
		"order_id", order.ID,
		"member_id", order.MemberID,
		"payment_method", order.PaymentMethod,
		"amount", order.Amount.StringFixed(2),
	)
	return &order, nil
}

// publish reports delivery failures without failing the caller. The order
// row is the source of truth.
func (c *checkout) publish(ctx context.Context, subject string, event events.OrderEvent) {
	publishEvent(ctx, c.publisher, c.logger, subject, event)
}

// publishEvent logs and reports a failed publish. Events are best effort
// once the transaction has committed.
func publishEvent(ctx context.Context, publisher events.Publisher, logger *slog.Logger, subject string, event events.OrderEvent) {
	if err := publisher.Publish(ctx, subject, event); err != nil {
		logger.Warn("failed to publish order event", "subject", subject, "order_id", event.OrderID, "error", err)
		telemetry.CaptureErrorFromContext(ctx, err, map[string]interface{}{
			"subject":  subject,
			"order_id": event.OrderID.String(),
		})
	}
}
