package billing

import (
	"context"
	"encoding/json"
	"time"
)

// Provider defines the payment gateway operations the storefront needs.
// Implementations can use Stripe or a test double.
type Provider interface {
	// CreatePaymentIntent opens an intent to collect an amount.
	// Returns the intent with client_secret for frontend confirmation.
	CreatePaymentIntent(ctx context.Context, params CreatePaymentIntentParams) (*PaymentIntent, error)

	// GetPaymentIntent retrieves an existing intent, including the id of
	// its latest charge. Used to verify payment before placing an order.
	GetPaymentIntent(ctx context.Context, paymentIntentID string) (*PaymentIntent, error)

	// ConstructWebhookEvent verifies the signature header against payload
	// and decodes the event. Returns ErrInvalidWebhookSignature on failure.
	ConstructWebhookEvent(payload []byte, signature string) (*Event, error)
}

// Payment intent statuses used by the storefront.
const (
	StatusSucceeded             = "succeeded"
	StatusRequiresPaymentMethod = "requires_payment_method"
	StatusCanceled              = "canceled"
)

// Metadata keys written on payment intents.
const (
	MetadataMemberID = "member_id"
)

// CreatePaymentIntentParams contains parameters for creating a payment intent.
type CreatePaymentIntentParams struct {
	// AmountMinor is the amount in the currency's smallest unit.
	AmountMinor int64

	// Currency code (ISO 4217, lower case) e.g. "inr"
	Currency string

	// Description appears in the gateway dashboard
	Description string

	// Metadata always includes member_id
	Metadata map[string]string

	// IdempotencyKey prevents duplicate intents for the same request
	IdempotencyKey string
}

// PaymentIntent is a gateway payment intent.
type PaymentIntent struct {
	// ID is the gateway intent ID (pi_...)
	ID string

	// ClientSecret is used by the frontend to confirm payment
	ClientSecret string

	AmountMinor int64
	Currency    string

	// Status: requires_payment_method, requires_confirmation, succeeded, etc.
	Status string

	// ChargeID is the latest charge of the intent (ch_...), empty until a
	// charge is attempted
	ChargeID string

	Metadata  map[string]string
	CreatedAt time.Time

	// LastPaymentError contains details if payment failed
	LastPaymentError *PaymentError
}

// Succeeded reports whether the intent has been paid.
func (p *PaymentIntent) Succeeded() bool {
	return p != nil && p.Status == StatusSucceeded
}

// PaymentError contains details about a failed payment attempt.
type PaymentError struct {
	Code        string
	Message     string
	DeclineCode string
}

// Event is a verified gateway webhook event.
type Event struct {
	ID   string
	Type string
	// Data is the raw JSON of the event object
	Data json.RawMessage
}

// Event types handled by the storefront.
const (
	EventPaymentIntentSucceeded = "payment_intent.succeeded"
	EventPaymentIntentFailed    = "payment_intent.payment_failed"
	EventChargeRefunded         = "charge.refunded"
)

// ChargeObject is the subset of a charge event object the storefront reads.
type ChargeObject struct {
	ID             string `json:"id"`
	PaymentIntent  string `json:"payment_intent"`
	Refunded       bool   `json:"refunded"`
	Amount         int64  `json:"amount"`
	AmountRefunded int64  `json:"amount_refunded"`
}

// PaymentIntentObject is the subset of a payment intent event object the
// storefront reads.
type PaymentIntentObject struct {
	ID       string            `json:"id"`
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Metadata map[string]string `json:"metadata"`
}
