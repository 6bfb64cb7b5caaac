package api

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/dukerupert/kestrel/internal/domain"
	"github.com/dukerupert/kestrel/internal/handler"
)

// PaymentHandler opens gateway intents and confirms completed payments.
type PaymentHandler struct {
	payments       domain.PaymentService
	publishableKey string
}

// NewPaymentHandler creates a new payment handler. publishableKey is handed
// to clients with each intent so they can complete it with Stripe.js; it
// may be empty when no gateway is configured.
func NewPaymentHandler(payments domain.PaymentService, publishableKey string) *PaymentHandler {
	return &PaymentHandler{payments: payments, publishableKey: publishableKey}
}

type createIntentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type intentResponse struct {
	*domain.PaymentIntent
	PublishableKey string `json:"publishable_key,omitempty"`
}

// CreateIntent handles POST /payment-intents
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req createIntentRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	intent, err := h.payments.CreatePaymentIntent(r.Context(), req.Amount)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.WriteJSON(w, http.StatusCreated, intentResponse{PaymentIntent: intent, PublishableKey: h.publishableKey})
}

// Confirm handles POST /payments/confirm. A retried confirmation returns the
// order placed by the first one.
func (h *PaymentHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var params domain.ConfirmPaymentParams
	if err := handler.DecodeJSON(r, &params); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	order, err := h.payments.ConfirmPayment(r.Context(), params)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.WriteJSON(w, http.StatusOK, order)
}
