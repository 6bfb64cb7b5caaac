package billing

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/paymentintent"
	"github.com/stripe/stripe-go/v83/webhook"
)

// StripeProvider implements Provider using the Stripe API.
type StripeProvider struct {
	config StripeConfig
}

var _ Provider = (*StripeProvider)(nil)

// NewStripeProvider creates a Stripe billing provider. The API key is set
// on the stripe-go package globals.
func NewStripeProvider(config StripeConfig) (*StripeProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	stripe.Key = config.APIKey
	retries := config.MaxNetworkRetries
	if retries <= 0 {
		retries = 2
	}
	backendCfg := &stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(retries),
	}
	if config.Timeout > 0 {
		backendCfg.HTTPClient = &http.Client{Timeout: config.Timeout}
	}
	stripe.SetBackend(stripe.APIBackend, stripe.GetBackendWithConfig(stripe.APIBackend, backendCfg))

	return &StripeProvider{config: config}, nil
}

// CreatePaymentIntent creates a Stripe payment intent with automatic
// payment methods enabled.
func (s *StripeProvider) CreatePaymentIntent(ctx context.Context, params CreatePaymentIntentParams) (*PaymentIntent, error) {
	currency := params.Currency
	if currency == "" {
		currency = s.config.CurrencyOrDefault()
	}

	piParams := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(params.AmountMinor),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	piParams.Context = ctx
	if params.Description != "" {
		piParams.Description = stripe.String(params.Description)
	}
	if params.IdempotencyKey != "" {
		piParams.SetIdempotencyKey(params.IdempotencyKey)
	}
	for k, v := range params.Metadata {
		piParams.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(piParams)
	if err != nil {
		return nil, wrapStripeError(err, "create payment intent")
	}
	return convertPaymentIntent(pi), nil
}

// GetPaymentIntent retrieves a Stripe payment intent.
func (s *StripeProvider) GetPaymentIntent(ctx context.Context, paymentIntentID string) (*PaymentIntent, error) {
	if paymentIntentID == "" {
		return nil, ErrPaymentIntentNotFound
	}

	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := paymentintent.Get(paymentIntentID, params)
	if err != nil {
		return nil, wrapStripeError(err, "get payment intent")
	}
	return convertPaymentIntent(pi), nil
}

// ConstructWebhookEvent verifies a Stripe-Signature header and decodes the
// event. API version mismatches are tolerated because only a few stable
// fields of the event object are read.
func (s *StripeProvider) ConstructWebhookEvent(payload []byte, signature string) (*Event, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, s.config.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWebhookSignature, err)
	}
	if event.Data == nil {
		return nil, errors.New("billing: webhook event has no data")
	}
	return &Event{ID: event.ID, Type: string(event.Type), Data: event.Data.Raw}, nil
}

func convertPaymentIntent(pi *stripe.PaymentIntent) *PaymentIntent {
	out := &PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		AmountMinor:  pi.Amount,
		Currency:     string(pi.Currency),
		Status:       string(pi.Status),
		Metadata:     pi.Metadata,
		CreatedAt:    time.Unix(pi.Created, 0),
	}
	if pi.LatestCharge != nil {
		out.ChargeID = pi.LatestCharge.ID
	}
	if pi.LastPaymentError != nil {
		out.LastPaymentError = &PaymentError{
			Code:        string(pi.LastPaymentError.Code),
			Message:     pi.LastPaymentError.Msg,
			DeclineCode: string(pi.LastPaymentError.DeclineCode),
		}
	}
	if out.Metadata == nil {
		out.Metadata = map[string]string{}
	}
	return out
}
