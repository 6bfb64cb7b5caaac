package routes

import (
	"net/http"

	"github.com/dukerupert/kestrel/internal/handler/api"
	"github.com/dukerupert/kestrel/internal/middleware"
)

// APIDeps contains dependencies for the storefront API routes
type APIDeps struct {
	Members  *api.MemberHandler
	Products *api.ProductHandler
	Cart     *api.CartHandler
	Orders   *api.OrderHandler
	Payments *api.PaymentHandler

	// CredentialLimit throttles registration and login attempts
	CredentialLimit func(http.Handler) http.Handler
}

// AdminDeps contains dependencies for administrator routes
type AdminDeps struct {
	Admin  *api.AdminHandler
	Orders *api.OrderHandler
}

// WebhookDeps contains dependencies for webhook routes
type WebhookDeps struct {
	StripeHandler http.HandlerFunc
}

// OpsDeps contains dependencies for operational endpoints
type OpsDeps struct {
	Health  http.HandlerFunc
	Metrics *middleware.Metrics
}
