package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockProvider is a billing provider for tests and local development.
// Simulates payment flows without calling the Stripe API.
type MockProvider struct {
	// CreatePaymentIntentFunc allows customizing payment intent creation behavior
	CreatePaymentIntentFunc func(ctx context.Context, params CreatePaymentIntentParams) (*PaymentIntent, error)

	// GetPaymentIntentFunc allows customizing payment intent retrieval behavior
	GetPaymentIntentFunc func(ctx context.Context, paymentIntentID string) (*PaymentIntent, error)

	// ConstructWebhookEventFunc allows customizing webhook verification behavior
	ConstructWebhookEventFunc func(payload []byte, signature string) (*Event, error)

	// PaymentIntents stores created payment intents for retrieval
	PaymentIntents map[string]*PaymentIntent

	// CallLog tracks method calls for test assertions
	CallLog []string

	mu sync.Mutex
}

var _ Provider = (*MockProvider)(nil)

// NewMockProvider creates a new mock billing provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		PaymentIntents: make(map[string]*PaymentIntent),
		CallLog:        []string{},
	}
}

// CreatePaymentIntent creates a mock payment intent.
func (m *MockProvider) CreatePaymentIntent(ctx context.Context, params CreatePaymentIntentParams) (*PaymentIntent, error) {
	m.log(fmt.Sprintf("CreatePaymentIntent(%d, %s)", params.AmountMinor, params.Currency))

	if m.CreatePaymentIntentFunc != nil {
		return m.CreatePaymentIntentFunc(ctx, params)
	}

	currency := params.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	metadata := map[string]string{}
	for k, v := range params.Metadata {
		metadata[k] = v
	}

	pi := &PaymentIntent{
		ID:           "pi_" + uuid.New().String(),
		ClientSecret: "pi_" + uuid.New().String() + "_secret_" + uuid.New().String(),
		AmountMinor:  params.AmountMinor,
		Currency:     currency,
		Status:       StatusRequiresPaymentMethod,
		Metadata:     metadata,
		CreatedAt:    time.Now(),
	}

	m.mu.Lock()
	m.PaymentIntents[pi.ID] = pi
	m.mu.Unlock()
	return pi, nil
}

// GetPaymentIntent retrieves a mock payment intent.
func (m *MockProvider) GetPaymentIntent(ctx context.Context, paymentIntentID string) (*PaymentIntent, error) {
	m.log(fmt.Sprintf("GetPaymentIntent(%s)", paymentIntentID))

	if m.GetPaymentIntentFunc != nil {
		return m.GetPaymentIntentFunc(ctx, paymentIntentID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	pi, exists := m.PaymentIntents[paymentIntentID]
	if !exists {
		return nil, ErrPaymentIntentNotFound
	}
	copied := *pi
	return &copied, nil
}

// ConstructWebhookEvent accepts the signature "valid" and decodes payload
// as {"id","type","data":{"object":...}}.
func (m *MockProvider) ConstructWebhookEvent(payload []byte, signature string) (*Event, error) {
	m.log("ConstructWebhookEvent")

	if m.ConstructWebhookEventFunc != nil {
		return m.ConstructWebhookEventFunc(payload, signature)
	}
	if signature != "valid" {
		return nil, ErrInvalidWebhookSignature
	}

	var raw struct {
		ID   string `json:"id"`
		Type string `json:"type"`
		Data struct {
			Object json.RawMessage `json:"object"`
		} `json:"data"`
	}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("billing: decode webhook payload: %w", err)
	}
	return &Event{ID: raw.ID, Type: raw.Type, Data: raw.Data.Object}, nil
}

// SimulateSucceededPayment marks a payment intent succeeded and attaches a
// charge. Returns the charge ID.
func (m *MockProvider) SimulateSucceededPayment(paymentIntentID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	pi, exists := m.PaymentIntents[paymentIntentID]
	if !exists {
		return "", ErrPaymentIntentNotFound
	}

	pi.Status = StatusSucceeded
	pi.ChargeID = "ch_" + uuid.New().String()
	pi.LastPaymentError = nil
	return pi.ChargeID, nil
}

// SimulateFailedPayment records a failed attempt on a payment intent.
func (m *MockProvider) SimulateFailedPayment(paymentIntentID string, errorCode string, errorMessage string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	pi, exists := m.PaymentIntents[paymentIntentID]
	if !exists {
		return ErrPaymentIntentNotFound
	}

	pi.Status = StatusRequiresPaymentMethod
	pi.LastPaymentError = &PaymentError{
		Code:    errorCode,
		Message: errorMessage,
	}
	return nil
}

func (m *MockProvider) log(call string) {
	m.mu.Lock()
	m.CallLog = append(m.CallLog, call)
	m.mu.Unlock()
}
