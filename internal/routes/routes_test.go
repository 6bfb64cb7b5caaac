package routes

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dukerupert/kestrel/internal/domain"
	"github.com/dukerupert/kestrel/internal/handler/api"
	"github.com/dukerupert/kestrel/internal/middleware"
	"github.com/dukerupert/kestrel/internal/router"
)

type stubParser map[string]*domain.Identity

func (s stubParser) Parse(token string) (*domain.Identity, error) {
	if id, ok := s[token]; ok {
		return id, nil
	}
	return nil, errors.New("unknown token")
}

// newTestRouter registers every route with handlers whose services are nil.
// Only requests rejected by the guards may be sent through it.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	tokens := stubParser{
		"member": {MemberID: uuid.New(), Email: "dev@tcs.com", Role: domain.RoleSEPP},
		"admin":  {MemberID: uuid.New(), Email: "root@kestrel.test", Role: domain.RoleAdmin},
	}

	r := router.New(middleware.Authenticate(tokens))
	orders := api.NewOrderHandler(nil, nil)
	RegisterAPIRoutes(r, APIDeps{
		Members:  api.NewMemberHandler(nil, nil),
		Products: api.NewProductHandler(nil),
		Cart:     api.NewCartHandler(nil),
		Orders:   orders,
		Payments: api.NewPaymentHandler(nil, ""),
	})
	RegisterAdminRoutes(r, AdminDeps{Admin: api.NewAdminHandler(nil), Orders: orders})
	RegisterOpsRoutes(r, OpsDeps{Health: func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}})
	return r
}

func TestRoutes_Guards(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		token          string
		expectedStatus int
	}{
		{name: "anonymous_products", method: http.MethodGet, path: "/products", expectedStatus: http.StatusUnauthorized},
		{name: "anonymous_cart", method: http.MethodGet, path: "/cart", expectedStatus: http.StatusUnauthorized},
		{name: "anonymous_order", method: http.MethodPost, path: "/orders", expectedStatus: http.StatusUnauthorized},
		{name: "anonymous_confirm", method: http.MethodPost, path: "/payments/confirm", expectedStatus: http.StatusUnauthorized},
		{name: "invalid_token", method: http.MethodGet, path: "/members/me", token: "forged", expectedStatus: http.StatusUnauthorized},
		{name: "anonymous_admin", method: http.MethodGet, path: "/admin/orders", expectedStatus: http.StatusUnauthorized},
		{name: "member_admin_members", method: http.MethodGet, path: "/admin/members", token: "member", expectedStatus: http.StatusForbidden},
		{name: "member_admin_orders", method: http.MethodGet, path: "/admin/orders", token: "member", expectedStatus: http.StatusForbidden},
		{name: "member_admin_segments", method: http.MethodPost, path: "/admin/segments", token: "member", expectedStatus: http.StatusForbidden},
		{name: "member_sets_discount", method: http.MethodPut, path: "/admin/discounts", token: "member", expectedStatus: http.StatusForbidden},
		{name: "member_updates_status", method: http.MethodPatch, path: "/orders/" + uuid.NewString() + "/status", token: "member", expectedStatus: http.StatusForbidden},
		{name: "health_is_public", method: http.MethodGet, path: "/health", expectedStatus: http.StatusOK},
	}

	h := newTestRouter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rr := httptest.NewRecorder()

			h.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestRoutes_WebhookRejectsOversizedBody(t *testing.T) {
	r := router.New()
	called := false
	RegisterWebhookRoutes(r, WebhookDeps{StripeHandler: func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}})

	body := bytes.Repeat([]byte("a"), middleware.WebhookMaxBodySize+1)
	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}
