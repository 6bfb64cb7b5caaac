package routes

import (
	"github.com/dukerupert/kestrel/internal/middleware"
	"github.com/dukerupert/kestrel/internal/router"
)

// RegisterAdminRoutes registers catalog administration and reporting.
// Every route requires the administrator role.
func RegisterAdminRoutes(r *router.Router, deps AdminDeps) {
	admin := r.Group(middleware.RequireAdmin)

	admin.Get("/admin/orders", deps.Orders.ListAll)
	admin.Get("/admin/members", deps.Admin.ListMembers)

	// Organizations and discounts
	admin.Get("/admin/organizations", deps.Admin.ListOrganizations)
	admin.Post("/admin/organizations", deps.Admin.CreateOrganization)
	admin.Put("/admin/organizations/{id}/categories", deps.Admin.SetAllowedCategories)
	admin.Get("/admin/organizations/{id}/discounts", deps.Admin.ListDiscounts)
	admin.Put("/admin/discounts", deps.Admin.SetDiscount)

	// Segments
	admin.Get("/admin/segments", deps.Admin.ListSegments)
	admin.Post("/admin/segments", deps.Admin.CreateSegment)
	admin.Get("/admin/segments/{id}", deps.Admin.GetSegment)
	admin.Put("/admin/segments/{id}", deps.Admin.UpdateSegment)
	admin.Delete("/admin/segments/{id}", deps.Admin.DeleteSegment)
	admin.Post("/admin/segments/{id}/toggle", deps.Admin.ToggleSegment)
	admin.Post("/admin/segments/{id}/organizations/{orgID}", deps.Admin.AddSegmentOrganization)
	admin.Delete("/admin/segments/{id}/organizations/{orgID}", deps.Admin.RemoveSegmentOrganization)

	// Categories and products
	admin.Get("/admin/categories", deps.Admin.ListCategories)
	admin.Post("/admin/categories", deps.Admin.CreateCategory)
	admin.Get("/admin/products", deps.Admin.ListProducts)
	admin.Post("/admin/products", deps.Admin.CreateProduct)
	admin.Put("/admin/products/{id}", deps.Admin.UpdateProduct)

	// Reporting
	admin.Get("/admin/reports/category-performance", deps.Admin.CategoryPerformance)
}
