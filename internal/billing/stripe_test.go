package billing

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/webhook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMockProvider_PaymentFlow walks an intent from creation to success
func TestMockProvider_PaymentFlow(t *testing.T) {
	ctx := context.Background()
	m := NewMockProvider()

	pi, err := m.CreatePaymentIntent(ctx, CreatePaymentIntentParams{
		AmountMinor:    179820,
		Currency:       "inr",
		IdempotencyKey: "member_1:179820",
		Metadata:       map[string]string{MetadataMemberID: "member_1"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, pi.ClientSecret)
	assert.Equal(t, StatusRequiresPaymentMethod, pi.Status)
	assert.False(t, pi.Succeeded())

	chargeID, err := m.SimulateSucceededPayment(pi.ID)
	require.NoError(t, err)

	got, err := m.GetPaymentIntent(ctx, pi.ID)
	require.NoError(t, err)
	assert.True(t, got.Succeeded())
	assert.Equal(t, chargeID, got.ChargeID)
	assert.Equal(t, int64(179820), got.AmountMinor)
	assert.Equal(t, "member_1", got.Metadata[MetadataMemberID])

	assert.Equal(t, []string{
		"CreatePaymentIntent(179820, inr)",
		fmt.Sprintf("GetPaymentIntent(%s)", pi.ID),
	}, m.CallLog)
}

func TestMockProvider_GetUnknownIntent(t *testing.T) {
	_, err := NewMockProvider().GetPaymentIntent(context.Background(), "pi_missing")
	assert.ErrorIs(t, err, ErrPaymentIntentNotFound)
}

func TestMockProvider_FailedPayment(t *testing.T) {
	ctx := context.Background()
	m := NewMockProvider()

	pi, err := m.CreatePaymentIntent(ctx, CreatePaymentIntentParams{AmountMinor: 5000})
	require.NoError(t, err)
	assert.Equal(t, DefaultCurrency, pi.Currency)

	require.NoError(t, m.SimulateFailedPayment(pi.ID, "card_declined", "Your card was declined."))

	got, err := m.GetPaymentIntent(ctx, pi.ID)
	require.NoError(t, err)
	assert.False(t, got.Succeeded())
	require.NotNil(t, got.LastPaymentError)
	assert.Equal(t, "card_declined", got.LastPaymentError.Code)
}

func TestMockProvider_ConstructWebhookEvent(t *testing.T) {
	m := NewMockProvider()
	payload := []byte(`{"id":"evt_1","type":"charge.refunded","data":{"object":{"id":"ch_1","payment_intent":"pi_1"}}}`)

	_, err := m.ConstructWebhookEvent(payload, "forged")
	assert.ErrorIs(t, err, ErrInvalidWebhookSignature)

	event, err := m.ConstructWebhookEvent(payload, "valid")
	require.NoError(t, err)
	assert.Equal(t, EventChargeRefunded, event.Type)
	assert.JSONEq(t, `{"id":"ch_1","payment_intent":"pi_1"}`, string(event.Data))
}

// TestStripeProvider_ConstructWebhookEvent signs payloads with the stripe-go
// test helper so no network access is needed
func TestStripeProvider_ConstructWebhookEvent(t *testing.T) {
	provider, err := NewStripeProvider(StripeConfig{APIKey: "sk_test_123", WebhookSecret: "whsec_test"})
	require.NoError(t, err)

	payload := []byte(`{"id":"evt_1","object":"event","type":"charge.refunded","api_version":"2020-08-27","data":{"object":{"id":"ch_1","payment_intent":"pi_1"}}}`)

	t.Run("accepts a valid signature", func(t *testing.T) {
		signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
			Payload:   payload,
			Secret:    "whsec_test",
			Timestamp: time.Now(),
		})

		event, err := provider.ConstructWebhookEvent(signed.Payload, signed.Header)
		require.NoError(t, err)
		assert.Equal(t, "evt_1", event.ID)
		assert.Equal(t, EventChargeRefunded, event.Type)
		assert.Contains(t, string(event.Data), `"payment_intent":"pi_1"`)
	})

	t.Run("rejects a signature made with another secret", func(t *testing.T) {
		signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
			Payload:   payload,
			Secret:    "whsec_other",
			Timestamp: time.Now(),
		})

		_, err := provider.ConstructWebhookEvent(signed.Payload, signed.Header)
		assert.ErrorIs(t, err, ErrInvalidWebhookSignature)
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		_, err := provider.ConstructWebhookEvent(payload, "")
		assert.ErrorIs(t, err, ErrInvalidWebhookSignature)
	})
}

func TestConvertPaymentIntent(t *testing.T) {
	pi := convertPaymentIntent(&stripe.PaymentIntent{
		ID:           "pi_1",
		ClientSecret: "pi_1_secret",
		Amount:       250000,
		Currency:     stripe.Currency("inr"),
		Status:       stripe.PaymentIntentStatusSucceeded,
		LatestCharge: &stripe.Charge{ID: "ch_1"},
		Created:      1700000000,
	})

	assert.True(t, pi.Succeeded())
	assert.Equal(t, "ch_1", pi.ChargeID)
	assert.Equal(t, int64(250000), pi.AmountMinor)
	assert.Equal(t, "inr", pi.Currency)
	assert.NotNil(t, pi.Metadata)
}

func TestWrapStripeError(t *testing.T) {
	assert.NoError(t, wrapStripeError(nil, "op"))

	t.Run("wraps non-stripe errors with the operation", func(t *testing.T) {
		err := wrapStripeError(errors.New("dial tcp: timeout"), "get payment intent")
		assert.Contains(t, err.Error(), "get payment intent")
	})

	tests := []struct {
		name string
		in   *stripe.Error
		want error
	}{
		{
			name: "missing resource",
			in:   &stripe.Error{Code: "resource_missing", Msg: "No such payment_intent", HTTPStatusCode: http.StatusNotFound},
			want: ErrPaymentIntentNotFound,
		},
		{
			name: "bad API key",
			in:   &stripe.Error{Msg: "Invalid API Key provided", HTTPStatusCode: http.StatusUnauthorized},
			want: ErrInvalidAPIKey,
		},
		{
			name: "card declined",
			in:   &stripe.Error{Code: "card_declined", DeclineCode: "insufficient_funds", HTTPStatusCode: http.StatusPaymentRequired},
			want: ErrPaymentFailed,
		},
		{
			name: "idempotency conflict",
			in:   &stripe.Error{Code: "idempotency_key_in_use", HTTPStatusCode: http.StatusConflict},
			want: ErrIdempotencyConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := wrapStripeError(tt.in, "op")

			var se *StripeError
			require.ErrorAs(t, err, &se)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestStripeConfig_Validation(t *testing.T) {
	t.Run("validates required API key", func(t *testing.T) {
		config := StripeConfig{WebhookSecret: "whsec_test"}
		err := config.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "API key is required")
	})

	t.Run("validates required webhook secret", func(t *testing.T) {
		config := StripeConfig{APIKey: "sk_test_123"}
		err := config.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "webhook secret is required")
	})

	t.Run("detects test mode correctly", func(t *testing.T) {
		assert.True(t, (&StripeConfig{APIKey: "sk_test_123456"}).IsTestMode())
		assert.False(t, (&StripeConfig{APIKey: "sk_live_123456"}).IsTestMode())
	})

	t.Run("defaults currency to inr", func(t *testing.T) {
		assert.Equal(t, "inr", (&StripeConfig{}).CurrencyOrDefault())
		assert.Equal(t, "usd", (&StripeConfig{Currency: "USD"}).CurrencyOrDefault())
	})
}

// TestStripeError tests the StripeError type
func TestStripeError(t *testing.T) {
	t.Run("formats error message correctly", func(t *testing.T) {
		err := &StripeError{Message: "Payment failed", Code: "card_declined"}
		assert.Contains(t, err.Error(), "Payment failed")
		assert.Contains(t, err.Error(), "card_declined")
	})

	t.Run("identifies declined cards", func(t *testing.T) {
		assert.True(t, (&StripeError{Code: "card_declined", DeclineCode: "insufficient_funds"}).IsDeclined())
		assert.False(t, (&StripeError{Code: "api_error"}).IsDeclined())
	})

	t.Run("identifies temporary errors", func(t *testing.T) {
		assert.True(t, (&StripeError{Code: "rate_limit"}).IsTemporary())
		assert.True(t, (&StripeError{HTTPStatusCode: http.StatusBadGateway}).IsTemporary())
		assert.False(t, (&StripeError{Code: "invalid_request", HTTPStatusCode: http.StatusBadRequest}).IsTemporary())
	})
}
