package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BusinessMetrics holds Prometheus metrics for storefront observability.
// Every recording method is safe on a nil receiver so services can record
// unconditionally.
type BusinessMetrics struct {
	// Orders
	OrdersCreated     *prometheus.CounterVec
	OrderValue        *prometheus.HistogramVec
	OrderItemCount    prometheus.Histogram
	OrdersRejected    *prometheus.CounterVec
	StatusTransitions *prometheus.CounterVec

	// Payments
	PaymentIntentsCreated prometheus.Counter
	PaymentConfirmations  *prometheus.CounterVec
	StripeAPILatency      *prometheus.HistogramVec

	// Webhooks
	WebhookReceived  *prometheus.CounterVec
	WebhookProcessed *prometheus.CounterVec
	WebhookFailed    *prometheus.CounterVec
	WebhookLatency   *prometheus.HistogramVec

	// Cart
	CartItemsAdded prometheus.Counter
	CartCleared    prometheus.Counter

	// Members
	Signups     *prometheus.CounterVec
	Logins      prometheus.Counter
	LoginFailed prometheus.Counter
}

// NewBusinessMetrics creates all business metrics and registers them with reg.
func NewBusinessMetrics(namespace string, reg prometheus.Registerer) *BusinessMetrics {
	if namespace == "" {
		namespace = "kestrel"
	}
	factory := promauto.With(reg)

	subsystem := "business"

	return &BusinessMetrics{
		// =======================================================================
		// Orders
		// =======================================================================
		OrdersCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "orders_created_total",
				Help:      "Total orders placed",
			},
			[]string{"payment_method"},
		),
		OrderValue: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "order_value",
				Help:      "Order amount in major currency units",
				Buckets:   []float64{500, 1000, 5000, 10000, 25000, 50000, 100000, 250000},
			},
			[]string{"payment_method"},
		),
		OrderItemCount: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "order_item_count",
				Help:      "Number of line items per order",
				Buckets:   []float64{1, 2, 3, 5, 10, 20},
			},
		),
		OrdersRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "orders_rejected_total",
				Help:      "Order submissions rejected before persistence",
			},
			[]string{"reason"}, // reason: validation, amount_mismatch, forbidden, not_found, payment
		),
		StatusTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "order_status_transitions_total",
				Help:      "Accepted order status transitions",
			},
			[]string{"from", "to"},
		),

		// =======================================================================
		// Payments
		// =======================================================================
		PaymentIntentsCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "payment_intents_created_total",
				Help:      "Total payment intents opened with the gateway",
			},
		),
		PaymentConfirmations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "payment_confirmations_total",
				Help:      "Payment confirmation attempts by outcome",
			},
			[]string{"result"}, // result: succeeded, replayed, not_succeeded, mismatch, error
		),
		StripeAPILatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "stripe_api_duration_seconds",
				Help:      "Stripe API call duration (helps differentiate app slowness from Stripe issues)",
				Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"operation"}, // operation: create_payment_intent, get_payment_intent
		),

		// =======================================================================
		// Webhooks
		// =======================================================================
		WebhookReceived: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "webhooks_received_total",
				Help:      "Total webhooks received",
			},
			[]string{"provider", "event_type"},
		),
		WebhookProcessed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "webhooks_processed_total",
				Help:      "Total webhooks processed successfully",
			},
			[]string{"provider", "event_type"},
		),
		WebhookFailed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "webhooks_failed_total",
				Help:      "Total webhooks that failed processing",
			},
			[]string{"provider", "event_type", "reason"},
		),
		WebhookLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "webhook_processing_seconds",
				Help:      "Webhook processing duration",
				Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"provider", "event_type"},
		),

		// =======================================================================
		// Cart
		// =======================================================================
		CartItemsAdded: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_items_added_total",
				Help:      "Total add to cart actions",
			},
		),
		CartCleared: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_cleared_total",
				Help:      "Total carts cleared",
			},
		),

		// =======================================================================
		// Members
		// =======================================================================
		Signups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "signups_total",
				Help:      "Total member registrations",
			},
			[]string{"role"},
		),
		Logins: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "logins_total",
				Help:      "Total successful logins",
			},
		),
		LoginFailed: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "login_failures_total",
				Help:      "Total failed login attempts",
			},
		),
	}
}

// Global instance for easy access from services and handlers
var Business *BusinessMetrics

// InitBusinessMetrics initializes the global business metrics instance on
// the default Prometheus registry
func InitBusinessMetrics(namespace string) *BusinessMetrics {
	Business = NewBusinessMetrics(namespace, prometheus.DefaultRegisterer)
	return Business
}

// RecordOrderCreated records a placed order.
func (m *BusinessMetrics) RecordOrderCreated(paymentMethod string, amount float64, items int) {
	if m == nil {
		return
	}
	m.OrdersCreated.WithLabelValues(paymentMethod).Inc()
	m.OrderValue.WithLabelValues(paymentMethod).Observe(amount)
	m.OrderItemCount.Observe(float64(items))
}

// RecordOrderRejected records an order submission refused before persistence.
func (m *BusinessMetrics) RecordOrderRejected(reason string) {
	if m == nil {
		return
	}
	m.OrdersRejected.WithLabelValues(reason).Inc()
}

// RecordStatusTransition records an accepted lifecycle transition.
func (m *BusinessMetrics) RecordStatusTransition(from, to string) {
	if m == nil {
		return
	}
	m.StatusTransitions.WithLabelValues(from, to).Inc()
}

// RecordPaymentIntent records an opened gateway intent.
func (m *BusinessMetrics) RecordPaymentIntent() {
	if m == nil {
		return
	}
	m.PaymentIntentsCreated.Inc()
}

// RecordPaymentConfirmation records the outcome of a payment confirmation.
func (m *BusinessMetrics) RecordPaymentConfirmation(result string) {
	if m == nil {
		return
	}
	m.PaymentConfirmations.WithLabelValues(result).Inc()
}

// ObserveStripeCall records the duration of a Stripe API call started at start.
func (m *BusinessMetrics) ObserveStripeCall(operation string, start time.Time) {
	if m == nil {
		return
	}
	m.StripeAPILatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// RecordWebhook records a received webhook and, when processing finished,
// its outcome and duration. An empty failReason marks success.
func (m *BusinessMetrics) RecordWebhook(provider, eventType, failReason string, start time.Time) {
	if m == nil {
		return
	}
	m.WebhookReceived.WithLabelValues(provider, eventType).Inc()
	if failReason == "" {
		m.WebhookProcessed.WithLabelValues(provider, eventType).Inc()
	} else {
		m.WebhookFailed.WithLabelValues(provider, eventType, failReason).Inc()
	}
	m.WebhookLatency.WithLabelValues(provider, eventType).Observe(time.Since(start).Seconds())
}

// RecordCartItemAdded records an add to cart action.
func (m *BusinessMetrics) RecordCartItemAdded() {
	if m == nil {
		return
	}
	m.CartItemsAdded.Inc()
}

// RecordCartCleared records a cleared cart.
func (m *BusinessMetrics) RecordCartCleared() {
	if m == nil {
		return
	}
	m.CartCleared.Inc()
}

// RecordSignup records a member registration.
func (m *BusinessMetrics) RecordSignup(role string) {
	if m == nil {
		return
	}
	m.Signups.WithLabelValues(role).Inc()
}

// RecordLogin records a login attempt.
func (m *BusinessMetrics) RecordLogin(success bool) {
	if m == nil {
		return
	}
	if success {
		m.Logins.Inc()
		return
	}
	m.LoginFailed.Inc()
}
