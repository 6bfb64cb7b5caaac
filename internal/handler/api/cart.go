package api

import (
	"net/http"

	"github.com/dukerupert/kestrel/internal/domain"
	"github.com/dukerupert/kestrel/internal/handler"
)

// CartHandler handles the caller's cart.
type CartHandler struct {
	carts domain.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts domain.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

type updateCartItemRequest struct {
	Quantity int    `json:"quantity"`
	Size     string `json:"size"`
}

// cartResponse adds the computed subtotal to the cart document.
type cartResponse struct {
	*domain.Cart
	Subtotal string `json:"subtotal"`
}

// View handles GET /cart
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	cart, err := h.carts.GetCart(r.Context())
	h.respond(w, r, http.StatusOK, cart, err)
}

// Add handles POST /cart/items
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var params domain.AddCartItemParams
	if err := handler.DecodeJSON(r, &params); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	cart, err := h.carts.AddItem(r.Context(), params)
	h.respond(w, r, http.StatusOK, cart, err)
}

// Update handles PATCH /cart/items/{productID}
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	productID, err := pathUUID(r, "productID")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	var req updateCartItemRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	cart, err := h.carts.UpdateItem(r.Context(), productID, req.Size, req.Quantity)
	h.respond(w, r, http.StatusOK, cart, err)
}

// Remove handles DELETE /cart/items/{productID}?size=
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	productID, err := pathUUID(r, "productID")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	cart, err := h.carts.RemoveItem(r.Context(), productID, r.URL.Query().Get("size"))
	h.respond(w, r, http.StatusOK, cart, err)
}

// Clear handles DELETE /cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.carts.Clear(r.Context()); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CartHandler) respond(w http.ResponseWriter, r *http.Request, status int, cart *domain.Cart, err error) {
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	if cart == nil {
		cart = &domain.Cart{}
	}
	if cart.Items == nil {
		cart.Items = []domain.CartItem{}
	}
	handler.WriteJSON(w, status, cartResponse{Cart: cart, Subtotal: cart.Subtotal().StringFixed(2)})
}
