package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dukerupert/kestrel/internal/billing"
	"github.com/dukerupert/kestrel/internal/domain"
	"github.com/dukerupert/kestrel/internal/events"
	"github.com/dukerupert/kestrel/internal/pricing"
	"github.com/dukerupert/kestrel/internal/repository"
	"github.com/dukerupert/kestrel/internal/telemetry"
)

type paymentService struct {
	*checkout
}

// NewPaymentService creates the payment coordinator over provider.
func NewPaymentService(store repository.Store, resolver Resolver, provider billing.Provider, publisher events.Publisher, cfg CheckoutConfig, logger *slog.Logger) domain.PaymentService {
	return &paymentService{checkout: newCheckout(store, resolver, provider, publisher, cfg, logger)}
}

// CreatePaymentIntent opens a gateway intent for amount in minor units.
// The intent carries the caller's member ID so confirmation can check it.
func (s *paymentService) CreatePaymentIntent(ctx context.Context, amount decimal.Decimal) (*domain.PaymentIntent, error) {
	const op = "payment.intent"

	identity, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if err := pricing.ValidateAmount(op, "amount", amount); err != nil {
		return nil, err
	}
	if s.provider == nil {
		return nil, domain.Gateway(errors.New("no payment provider configured"), op, "online payment is unavailable")
	}

	minor, err := pricing.ToMinorUnits(amount, minorUnitsPerMajor)
	if err != nil {
		return nil, domain.NewValidationError(op, "amount", "is out of range")
	}
	if minor <= 0 {
		return nil, ErrInvalidAmount
	}

	start := time.Now()
	intent, err := s.provider.CreatePaymentIntent(ctx, billing.CreatePaymentIntentParams{
		AmountMinor: minor,
		Currency:    s.currency,
		Description: "Storefront order",
		Metadata: map[string]string{
			billing.MetadataMemberID: identity.MemberID.String(),
		},
		IdempotencyKey: idempotencyKey(ctx, identity, minor),
	})
	telemetry.Business.ObserveStripeCall("create_payment_intent", start)
	if err != nil {
		s.logger.Error("failed to create payment intent", "member_id", identity.MemberID, "amount_minor", minor, "error", err)
		return nil, domain.Gateway(err, op, "failed to create payment")
	}

	telemetry.Business.RecordPaymentIntent()
	return &domain.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       decimal.New(intent.AmountMinor, -2),
		AmountMinor:  intent.AmountMinor,
		Currency:     intent.Currency,
	}, nil
}

// ConfirmPayment places the order for a payment the client reports as
// complete. The intent is re-read from the gateway; nothing in params is
// trusted until it matches. A confirmation replayed for an intent that
// already produced an order returns that order.
func (s *paymentService) ConfirmPayment(ctx context.Context, params domain.ConfirmPaymentParams) (*domain.Order, error) {
	const op = "payment.confirm"

	identity, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	params.GatewayPaymentID = strings.TrimSpace(params.GatewayPaymentID)
	params.GatewayOrderID = strings.TrimSpace(params.GatewayOrderID)
	if params.Order.PaymentMethod == "" {
		params.Order.PaymentMethod = domain.PaymentMethodOnline
	}
	if err := domain.Validate(op, params); err != nil {
		return nil, err
	}
	if params.Order.PaymentMethod != domain.PaymentMethodOnline {
		return nil, domain.NewValidationError(op, "order.payment_method", "must be online")
	}

	if order, err := s.existing(ctx, identity, params.GatewayOrderID); order != nil || err != nil {
		return order, err
	}

	draft := params.Order
	draft.GatewayPaymentID = params.GatewayPaymentID
	draft.GatewayOrderID = params.GatewayOrderID

	scope, err := s.resolver.Resolve(ctx, identity)
	if err != nil {
		return nil, err
	}
	arg, err := s.assemble(ctx, scope, draft)
	if err != nil {
		return nil, err
	}
	if err := s.verifyPayment(ctx, &arg, params.GatewayPaymentID, params.GatewayOrderID); err != nil {
		return nil, err
	}

	order, err := s.place(ctx, arg)
	if errors.Is(err, domain.ErrPaymentAlreadyUsed) {
		// A concurrent confirmation may have won the insert.
		if existing, lookupErr := s.existing(ctx, identity, params.GatewayOrderID); existing != nil || lookupErr != nil {
			return existing, lookupErr
		}
	}
	if err != nil {
		telemetry.Business.RecordPaymentConfirmation("failed")
		return nil, err
	}

	telemetry.Business.RecordPaymentConfirmation("confirmed")
	return order, nil
}

// existing returns the order already placed for gatewayOrderID, or nil when
// there is none. Orders of other members surface as ErrPaymentAlreadyUsed.
func (s *paymentService) existing(ctx context.Context, identity *domain.Identity, gatewayOrderID string) (*domain.Order, error) {
	order, err := s.store.GetOrderByGatewayOrderID(ctx, gatewayOrderID)
	if repository.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.Internal(err, "payment.confirm", "failed to look up order")
	}
	if order.MemberID != identity.MemberID {
		return nil, domain.ErrPaymentAlreadyUsed
	}
	telemetry.Business.RecordPaymentConfirmation("replayed")
	return &order, nil
}

// idempotencyKey scopes gateway retries to one request of one member.
func idempotencyKey(ctx context.Context, identity *domain.Identity, minor int64) string {
	requestID := domain.RequestIDFromContext(ctx)
	if requestID == "" {
		return ""
	}
	return fmt.Sprintf("intent-%s-%s-%d", identity.MemberID, requestID, minor)
}
