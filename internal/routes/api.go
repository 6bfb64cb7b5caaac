package routes

import (
	"github.com/dukerupert/kestrel/internal/middleware"
	"github.com/dukerupert/kestrel/internal/router"
)

// RegisterAPIRoutes registers the member-facing JSON API.
//
// Identity is attached by middleware.Authenticate in the global chain.
// Everything except registration and login requires a member, since the
// catalog itself is filtered by the caller's entitlements.
func RegisterAPIRoutes(r *router.Router, deps APIDeps) {
	// Registration and sessions
	credentials := r.Group()
	if deps.CredentialLimit != nil {
		credentials = r.Group(deps.CredentialLimit)
	}
	credentials.Post("/members", deps.Members.Register)
	credentials.Post("/sessions", deps.Members.CreateSession)

	member := r.Group(middleware.RequireMember)

	member.Get("/members/me", deps.Members.Me)

	// Catalog
	member.Get("/products", deps.Products.List)
	member.Get("/products/allowed-categories", deps.Products.AllowedCategories)
	member.Get("/products/category/{category}", deps.Products.ListByCategory)
	member.Get("/products/{id}", deps.Products.Get)

	// Cart
	member.Get("/cart", deps.Cart.View)
	member.Delete("/cart", deps.Cart.Clear)
	member.Post("/cart/items", deps.Cart.Add)
	member.Patch("/cart/items/{productID}", deps.Cart.Update)
	member.Delete("/cart/items/{productID}", deps.Cart.Remove)

	// Orders
	member.Post("/orders", deps.Orders.Create)
	member.Get("/orders", deps.Orders.ListMine)
	member.Get("/orders/{id}", deps.Orders.Get)
	member.Get("/orders/{id}/events", deps.Orders.Events)
	member.Patch("/orders/{id}/status", deps.Orders.UpdateStatus, middleware.RequireAdmin)

	// Payments
	member.Post("/payment-intents", deps.Payments.CreateIntent)
	member.Post("/payments/confirm", deps.Payments.Confirm)
}
