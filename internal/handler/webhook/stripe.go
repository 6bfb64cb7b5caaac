package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dukerupert/kestrel/internal/billing"
	"github.com/dukerupert/kestrel/internal/domain"
	"github.com/dukerupert/kestrel/internal/handler"
	"github.com/dukerupert/kestrel/internal/middleware"
	"github.com/dukerupert/kestrel/internal/telemetry"
)

const providerStripe = "stripe"

// Metric fail reasons.
const (
	failDecode = "decode_failed"
	failCancel = "cancel_failed"
)

// StripeHandler handles Stripe webhook events
type StripeHandler struct {
	provider  billing.Provider
	lifecycle domain.OrderLifecycleService
	logger    *slog.Logger
}

// NewStripeHandler creates a new Stripe webhook handler
func NewStripeHandler(provider billing.Provider, lifecycle domain.OrderLifecycleService, logger *slog.Logger) *StripeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StripeHandler{
		provider:  provider,
		lifecycle: lifecycle,
		logger:    logger,
	}
}

// HandleWebhook processes incoming Stripe webhook events.
//
// The signature is verified before anything in the payload is trusted.
// Verified events answer 200 unless processing failed in a way a retry can
// fix, in which case Stripe redelivers on the 5xx.
//
// Stripe CLI testing:
//
//	stripe listen --forward-to localhost:3000/webhooks/stripe
//	stripe trigger charge.refunded
func (h *StripeHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger := middleware.GetLogger(r.Context(), h.logger)

	if r.Method != http.MethodPost {
		handler.ErrorResponse(w, r, domain.Errorf(domain.EINVALID, "", "Method not allowed"))
		return
	}

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			handler.ErrorResponse(w, r, domain.Errorf(domain.ETOOLARGE, "", "Request body too large"))
			return
		}
		handler.ErrorResponse(w, r, domain.Errorf(domain.EINVALID, "", "Error reading request body"))
		return
	}

	signature := r.Header.Get("Stripe-Signature")
	if signature == "" {
		handler.ErrorResponse(w, r, domain.Errorf(domain.EINVALID, "", "Missing signature"))
		return
	}

	event, err := h.provider.ConstructWebhookEvent(payload, signature)
	if err != nil {
		if errors.Is(err, billing.ErrInvalidWebhookSignature) {
			logger.Warn("stripe webhook signature rejected", "payload_bytes", len(payload))
			handler.ErrorResponse(w, r, domain.Errorf(domain.EUNAUTHORIZED, "", "Invalid signature"))
			return
		}
		handler.ErrorResponse(w, r, domain.Errorf(domain.EINVALID, "", "Invalid event payload"))
		return
	}

	logger = logger.With("event_id", event.ID, "event_type", event.Type)
	logger.Info("stripe webhook received")

	var failReason string
	switch event.Type {
	case billing.EventPaymentIntentSucceeded, billing.EventPaymentIntentFailed:
		failReason = h.handlePaymentIntent(logger, event)

	case billing.EventChargeRefunded:
		failReason, err = h.handleChargeRefunded(r.Context(), logger, event)

	default:
		logger.Debug("unhandled stripe event type")
	}

	telemetry.Business.RecordWebhook(providerStripe, event.Type, failReason, start)

	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.WriteJSON(w, http.StatusOK, map[string]bool{"received": true})
}

// handlePaymentIntent records intent outcomes. Orders are placed by the
// client confirming through POST /payments/confirm, so nothing is written.
func (h *StripeHandler) handlePaymentIntent(logger *slog.Logger, event *billing.Event) string {
	var pi billing.PaymentIntentObject
	if err := json.Unmarshal(event.Data, &pi); err != nil {
		logger.Error("failed to decode payment intent", "error", err)
		return failDecode
	}

	if event.Type == billing.EventPaymentIntentFailed {
		telemetry.Business.RecordPaymentConfirmation("failed")
		logger.Warn("payment intent failed", "payment_intent_id", pi.ID, "amount", pi.Amount, "currency", pi.Currency)
		return ""
	}

	logger.Info("payment intent succeeded", "payment_intent_id", pi.ID, "amount", pi.Amount, "currency", pi.Currency)
	return ""
}

// handleChargeRefunded cancels the order paid by a fully refunded charge's
// intent. Partial refunds, unknown orders and orders already past
// cancellation are acknowledged without change.
func (h *StripeHandler) handleChargeRefunded(ctx context.Context, logger *slog.Logger, event *billing.Event) (string, error) {
	var charge billing.ChargeObject
	if err := json.Unmarshal(event.Data, &charge); err != nil {
		logger.Error("failed to decode charge", "error", err)
		return failDecode, nil
	}
	if charge.PaymentIntent == "" {
		logger.Info("refunded charge has no payment intent", "charge_id", charge.ID)
		return "", nil
	}
	if !charge.Refunded {
		logger.Info("partial refund, order unchanged",
			"charge_id", charge.ID,
			"payment_intent_id", charge.PaymentIntent,
			"amount", charge.Amount,
			"amount_refunded", charge.AmountRefunded,
		)
		return "", nil
	}

	order, err := h.lifecycle.CancelByGatewayOrder(ctx, charge.PaymentIntent, "charge refunded")
	switch {
	case err == nil:
		logger.Info("order cancelled after refund", "order_id", order.ID, "charge_id", charge.ID)
		return "", nil
	case domain.IsCode(err, domain.ENOTFOUND):
		logger.Info("no order for refunded charge", "payment_intent_id", charge.PaymentIntent)
		return "", nil
	case errors.Is(err, domain.ErrIllegalTransition):
		logger.Warn("refunded order cannot be cancelled", "payment_intent_id", charge.PaymentIntent)
		return "", nil
	default:
		logger.Error("failed to cancel refunded order", "payment_intent_id", charge.PaymentIntent, "error", err)
		return failCancel, err
	}
}
