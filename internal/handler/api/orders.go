package api

import (
	"net/http"

	"github.com/dukerupert/kestrel/internal/domain"
	"github.com/dukerupert/kestrel/internal/handler"
)

// OrderHandler handles order placement, reads and status changes.
type OrderHandler struct {
	orders    domain.OrderService
	lifecycle domain.OrderLifecycleService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders domain.OrderService, lifecycle domain.OrderLifecycleService) *OrderHandler {
	return &OrderHandler{orders: orders, lifecycle: lifecycle}
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// Create handles POST /orders
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params domain.CreateOrderParams
	if err := handler.DecodeJSON(r, &params); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	order, err := h.orders.CreateOrder(r.Context(), params)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", "/orders/"+order.ID.String())
	handler.WriteJSON(w, http.StatusCreated, order)
}

// Get handles GET /orders/{id}
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	order, err := h.lifecycle.GetOrder(r.Context(), id)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.WriteJSON(w, http.StatusOK, order)
}

// ListMine handles GET /orders
func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	memberID := domain.MemberIDFromContext(r.Context())

	orders, err := h.lifecycle.ListOrdersForMember(r.Context(), memberID)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.WriteJSON(w, http.StatusOK, newList(orders))
}

// ListAll handles GET /admin/orders
func (h *OrderHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.lifecycle.ListAllOrders(r.Context())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.WriteJSON(w, http.StatusOK, newList(orders))
}

// UpdateStatus handles PATCH /orders/{id}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	var req updateStatusRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	order, err := h.lifecycle.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.WriteJSON(w, http.StatusOK, order)
}

// Events handles GET /orders/{id}/events
func (h *OrderHandler) Events(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	events, err := h.lifecycle.ListStatusEvents(r.Context(), id)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.WriteJSON(w, http.StatusOK, newList(events))
}
