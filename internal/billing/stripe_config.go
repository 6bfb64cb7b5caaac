package billing

import (
	"errors"
	"strings"
	"time"
)

// DefaultCurrency is charged when no currency is configured.
const DefaultCurrency = "inr"

// StripeConfig contains configuration for the Stripe provider.
type StripeConfig struct {
	// APIKey is the Stripe secret key (sk_test_... or sk_live_...)
	APIKey string

	// WebhookSecret is the webhook signing secret (whsec_...)
	WebhookSecret string

	// Currency is the ISO 4217 code payment intents are created in
	Currency string

	// MaxNetworkRetries is the number of retries for transient failures.
	// Default: 2
	MaxNetworkRetries int64

	// Timeout bounds each API request. Zero keeps the client default.
	Timeout time.Duration
}

// Validate checks that required configuration is present.
func (c *StripeConfig) Validate() error {
	if c.APIKey == "" {
		return errors.New("stripe: API key is required")
	}
	if c.WebhookSecret == "" {
		return errors.New("stripe: webhook secret is required")
	}
	return nil
}

// IsTestMode returns true if using test mode API keys.
func (c *StripeConfig) IsTestMode() bool {
	return strings.HasPrefix(c.APIKey, "sk_test_")
}

// CurrencyOrDefault returns the configured currency in lower case.
func (c *StripeConfig) CurrencyOrDefault() string {
	if c.Currency == "" {
		return DefaultCurrency
	}
	return strings.ToLower(c.Currency)
}
