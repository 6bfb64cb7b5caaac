package billing

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/stripe/stripe-go/v83"
)

var (
	// ErrInvalidAPIKey is returned when the Stripe API key is invalid or missing.
	ErrInvalidAPIKey = errors.New("billing: invalid or missing API key")

	// ErrPaymentIntentNotFound is returned when payment intent does not exist.
	ErrPaymentIntentNotFound = errors.New("billing: payment intent not found")

	// ErrPaymentFailed is returned when payment fails (card declined, etc.)
	ErrPaymentFailed = errors.New("billing: payment failed")

	// ErrInvalidWebhookSignature is returned when webhook signature verification fails.
	ErrInvalidWebhookSignature = errors.New("billing: invalid webhook signature")

	// ErrIdempotencyConflict is returned when idempotency key matches a different request.
	ErrIdempotencyConflict = errors.New("billing: idempotency key conflict")
)

// StripeError wraps a Stripe API error with additional context.
type StripeError struct {
	Message        string // Human-readable error message
	Code           string // Stripe error code (e.g., "card_declined")
	DeclineCode    string // Card decline reason (if applicable)
	HTTPStatusCode int
	RequestID      string // Stripe request ID for debugging
	OriginalError  error
}

func (e *StripeError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("stripe: %s (code: %s)", e.Message, e.Code)
	}
	return fmt.Sprintf("stripe: %s", e.Message)
}

func (e *StripeError) Unwrap() error {
	return e.OriginalError
}

// IsDeclined returns true if error is due to card decline.
func (e *StripeError) IsDeclined() bool {
	return e.Code == "card_declined" || e.DeclineCode != ""
}

// IsTemporary returns true if error is likely transient and retryable.
func (e *StripeError) IsTemporary() bool {
	return e.Code == "rate_limit" || e.Code == "api_connection_error" || e.HTTPStatusCode >= 500
}

// wrapStripeError converts a stripe-go error into a StripeError, mapping
// well-known cases onto the package sentinels.
func wrapStripeError(err error, op string) error {
	if err == nil {
		return nil
	}

	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return fmt.Errorf("billing: %s: %w", op, err)
	}

	wrapped := &StripeError{
		Message:        stripeErr.Msg,
		Code:           string(stripeErr.Code),
		DeclineCode:    string(stripeErr.DeclineCode),
		HTTPStatusCode: stripeErr.HTTPStatusCode,
		RequestID:      stripeErr.RequestID,
		OriginalError:  err,
	}

	switch {
	case stripeErr.HTTPStatusCode == http.StatusUnauthorized:
		wrapped.OriginalError = ErrInvalidAPIKey
	case wrapped.Code == "resource_missing":
		wrapped.OriginalError = ErrPaymentIntentNotFound
	case wrapped.Code == "idempotency_key_in_use":
		wrapped.OriginalError = ErrIdempotencyConflict
	case wrapped.IsDeclined():
		wrapped.OriginalError = ErrPaymentFailed
	}
	return wrapped
}
