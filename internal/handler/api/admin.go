package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dukerupert/kestrel/internal/domain"
	"github.com/dukerupert/kestrel/internal/handler"
)

// AdminHandler handles catalog administration and reporting. Routes are
// mounted behind RequireAdmin and the service checks the role again.
type AdminHandler struct {
	admin domain.AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(admin domain.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

type allowedCategoriesRequest struct {
	AllowedCategories []string `json:"allowed_categories"`
}

// =============================================================================
// Organizations
// =============================================================================

// CreateOrganization handles POST /admin/organizations
func (h *AdminHandler) CreateOrganization(w http.ResponseWriter, r *http.Request) {
	var params domain.CreateOrganizationParams
	if err := handler.DecodeJSON(r, &params); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	org, err := h.admin.CreateOrganization(r.Context(), params)
	writeResult(w, r, http.StatusCreated, org, err)
}

// ListMembers handles GET /admin/members
func (h *AdminHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.admin.ListMembers(r.Context())
	writeList(w, r, members, err)
}

// ListOrganizations handles GET /admin/organizations
func (h *AdminHandler) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.admin.ListOrganizations(r.Context())
	writeList(w, r, orgs, err)
}

// SetAllowedCategories handles PUT /admin/organizations/{id}/categories
func (h *AdminHandler) SetAllowedCategories(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	var req allowedCategoriesRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	org, err := h.admin.SetAllowedCategories(r.Context(), id, req.AllowedCategories)
	writeResult(w, r, http.StatusOK, org, err)
}

// ListDiscounts handles GET /admin/organizations/{id}/discounts
func (h *AdminHandler) ListDiscounts(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	discounts, err := h.admin.ListDiscounts(r.Context(), id)
	writeList(w, r, discounts, err)
}

// SetDiscount handles PUT /admin/discounts
func (h *AdminHandler) SetDiscount(w http.ResponseWriter, r *http.Request) {
	var params domain.SetDiscountParams
	if err := handler.DecodeJSON(r, &params); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	discount, err := h.admin.SetDiscount(r.Context(), params)
	writeResult(w, r, http.StatusOK, discount, err)
}

// =============================================================================
// Segments
// =============================================================================

// CreateSegment handles POST /admin/segments
func (h *AdminHandler) CreateSegment(w http.ResponseWriter, r *http.Request) {
	var params domain.SegmentParams
	if err := handler.DecodeJSON(r, &params); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	segment, err := h.admin.CreateSegment(r.Context(), params)
	writeResult(w, r, http.StatusCreated, segment, err)
}

// ListSegments handles GET /admin/segments
func (h *AdminHandler) ListSegments(w http.ResponseWriter, r *http.Request) {
	segments, err := h.admin.ListSegments(r.Context())
	writeList(w, r, segments, err)
}

// GetSegment handles GET /admin/segments/{id}
func (h *AdminHandler) GetSegment(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	segment, err := h.admin.GetSegment(r.Context(), id)
	writeResult(w, r, http.StatusOK, segment, err)
}

// UpdateSegment handles PUT /admin/segments/{id}
func (h *AdminHandler) UpdateSegment(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	var params domain.SegmentParams
	if err := handler.DecodeJSON(r, &params); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	segment, err := h.admin.UpdateSegment(r.Context(), id, params)
	writeResult(w, r, http.StatusOK, segment, err)
}

// ToggleSegment handles POST /admin/segments/{id}/toggle
func (h *AdminHandler) ToggleSegment(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	segment, err := h.admin.ToggleSegment(r.Context(), id)
	writeResult(w, r, http.StatusOK, segment, err)
}

// DeleteSegment handles DELETE /admin/segments/{id}
func (h *AdminHandler) DeleteSegment(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if err := h.admin.DeleteSegment(r.Context(), id); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddSegmentOrganization handles POST /admin/segments/{id}/organizations/{orgID}
func (h *AdminHandler) AddSegmentOrganization(w http.ResponseWriter, r *http.Request) {
	h.segmentOrganization(w, r, h.admin.AddOrganizationToSegment)
}

// RemoveSegmentOrganization handles DELETE /admin/segments/{id}/organizations/{orgID}
func (h *AdminHandler) RemoveSegmentOrganization(w http.ResponseWriter, r *http.Request) {
	h.segmentOrganization(w, r, h.admin.RemoveOrganizationFromSegment)
}

func (h *AdminHandler) segmentOrganization(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, segmentID, orgID uuid.UUID) (*domain.Segment, error),
) {
	segmentID, err := pathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	orgID, err := pathUUID(r, "orgID")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	segment, err := apply(r.Context(), segmentID, orgID)
	writeResult(w, r, http.StatusOK, segment, err)
}

// =============================================================================
// Categories and products
// =============================================================================

// CreateCategory handles POST /admin/categories
func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var params domain.CategoryParams
	if err := handler.DecodeJSON(r, &params); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	category, err := h.admin.CreateCategory(r.Context(), params)
	writeResult(w, r, http.StatusCreated, category, err)
}

// ListCategories handles GET /admin/categories
func (h *AdminHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.admin.ListCategories(r.Context())
	writeList(w, r, categories, err)
}

// CreateProduct handles POST /admin/products
func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var params domain.ProductParams
	if err := handler.DecodeJSON(r, &params); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	product, err := h.admin.CreateProduct(r.Context(), params)
	writeResult(w, r, http.StatusCreated, product, err)
}

// UpdateProduct handles PUT /admin/products/{id}
func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	var params domain.ProductParams
	if err := handler.DecodeJSON(r, &params); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	product, err := h.admin.UpdateProduct(r.Context(), id, params)
	writeResult(w, r, http.StatusOK, product, err)
}

// ListProducts handles GET /admin/products
func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.admin.ListProducts(r.Context())
	writeList(w, r, products, err)
}

// CategoryPerformance handles GET /admin/reports/category-performance
func (h *AdminHandler) CategoryPerformance(w http.ResponseWriter, r *http.Request) {
	report, err := h.admin.CategoryPerformance(r.Context())
	writeList(w, r, report, err)
}

func writeResult(w http.ResponseWriter, r *http.Request, status int, v any, err error) {
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.WriteJSON(w, status, v)
}

func writeList[T any](w http.ResponseWriter, r *http.Request, items []T, err error) {
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.WriteJSON(w, http.StatusOK, newList(items))
}
