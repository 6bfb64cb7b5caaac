package service

import (
	"context"
	"log/slog"

	"github.com/dukerupert/kestrel/internal/billing"
	"github.com/dukerupert/kestrel/internal/domain"
	"github.com/dukerupert/kestrel/internal/events"
	"github.com/dukerupert/kestrel/internal/repository"
)

type orderService struct {
	*checkout
}

// NewOrderService creates the order assembler. provider may be nil, in
// which case online orders are always rejected with ErrPaymentRequired.
func NewOrderService(store repository.Store, resolver Resolver, provider billing.Provider, publisher events.Publisher, cfg CheckoutConfig, logger *slog.Logger) domain.OrderService {
	return &orderService{checkout: newCheckout(store, resolver, provider, publisher, cfg, logger)}
}

// CreateOrder places an order from a cart snapshot.
//
// Flow:
//  1. Resolve the caller's entitlement scope
//  2. Validate the snapshot and reprice every line server-side
//  3. Reject totals that differ from the client amount by more than 0.01
//  4. Cash on delivery: reject any gateway identifiers
//  5. Online: require both identifiers and verify them with the gateway
//  6. Write order, sales counters and emptied cart in one transaction
//
// Any failure before step 6 leaves the database untouched.
func (s *orderService) CreateOrder(ctx context.Context, params domain.CreateOrderParams) (*domain.Order, error) {
	identity, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	scope, err := s.resolver.Resolve(ctx, identity)
	if err != nil {
		return nil, err
	}

	arg, err := s.assemble(ctx, scope, params)
	if err != nil {
		return nil, err
	}

	switch params.PaymentMethod {
	case domain.PaymentMethodCOD:
		if params.GatewayPaymentID != "" || params.GatewayOrderID != "" {
			return nil, domain.ErrUnexpectedPayment
		}
	case domain.PaymentMethodOnline:
		if params.GatewayPaymentID == "" || params.GatewayOrderID == "" {
			return nil, domain.ErrPaymentRequired
		}
		if err := s.verifyPayment(ctx, &arg, params.GatewayPaymentID, params.GatewayOrderID); err != nil {
			return nil, err
		}
	}

	return s.place(ctx, arg)
}
