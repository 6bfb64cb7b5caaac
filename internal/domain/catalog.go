package domain

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// CATALOG DOMAIN TYPES
// =============================================================================

// Category is a catalog grouping. Slug is the category identifier used by
// organizations, segments and products.
type Category struct {
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Organization grants members with a matching email domain a restricted
// category set and optional per-product discounts.
type Organization struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Domain            string    `json:"domain"`
	AllowedCategories []string  `json:"allowed_categories"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Allows reports whether category is in the organization's allowed set.
func (o *Organization) Allows(category string) bool {
	return o != nil && slices.Contains(o.AllowedCategories, category)
}

// Segment is a named rule bundle restricting access by role, category and
// organization, optionally carrying a discount. Empty restriction lists
// match everything.
type Segment struct {
	ID                 uuid.UUID       `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	AllowedRoles       []Role          `json:"allowed_roles"`
	AllowedCategories  []string        `json:"allowed_categories"`
	Organizations      []uuid.UUID     `json:"organizations"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	IsActive           bool            `json:"is_active"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// Applies reports whether the segment grants its discount to a member with
// role and organization for a product in category.
func (s *Segment) Applies(role Role, orgID *uuid.UUID, category string) bool {
	if s == nil || !s.IsActive {
		return false
	}
	if len(s.AllowedRoles) > 0 && !slices.Contains(s.AllowedRoles, role) {
		return false
	}
	if len(s.Organizations) > 0 && (orgID == nil || !slices.Contains(s.Organizations, *orgID)) {
		return false
	}
	if len(s.AllowedCategories) > 0 && !slices.Contains(s.AllowedCategories, category) {
		return false
	}
	return true
}

// Product is a catalog item. Price and stock are mutable by administrators.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Colors      []string        `json:"colors"`
	Image       string          `json:"image"`
	Stock       int             `json:"stock"`
	Sold        int             `json:"sold"`
	Bestseller  bool            `json:"bestseller"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Discount is an organization-level discount for a single product.
// At most one exists per (organization, product).
type Discount struct {
	OrganizationID uuid.UUID       `json:"organization_id"`
	ProductID      uuid.UUID       `json:"product_id"`
	Percent        decimal.Decimal `json:"discount_percent"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// PricedProduct is a product annotated with the caller's resolved discount.
type PricedProduct struct {
	Product
	Discount        decimal.Decimal `json:"discount"`
	DiscountedPrice decimal.Decimal `json:"discounted_price"`
}

// CategoryPerformance aggregates sales for one category across all orders.
type CategoryPerformance struct {
	Category   string          `json:"category"`
	TotalSales decimal.Decimal `json:"total_sales"`
	OrderCount int             `json:"order_count"`
	ItemCount  int             `json:"item_count"`
}

// Catalog-related domain errors.
var (
	ErrProductNotFound      = &Error{Code: ENOTFOUND, Message: "Product not found"}
	ErrOrganizationNotFound = &Error{Code: ENOTFOUND, Message: "Organization not found"}
	ErrSegmentNotFound      = &Error{Code: ENOTFOUND, Message: "Segment not found"}
	ErrCategoryNotFound     = &Error{Code: ENOTFOUND, Message: "Category not found"}
	ErrCategoryNotAllowed   = &Error{Code: EFORBIDDEN, Message: "Access to this category is not allowed"}
	ErrAdminRequired        = &Error{Code: EFORBIDDEN, Message: "Administrator access required"}
	ErrDomainTaken          = &Error{Code: ECONFLICT, Message: "An organization already uses this domain"}
	ErrSegmentNameTaken     = &Error{Code: ECONFLICT, Message: "Segment name already exists"}
	ErrCategoryExists       = &Error{Code: ECONFLICT, Message: "Category already exists"}
)

// CatalogService serves catalog views filtered by entitlement and annotated
// with resolved pricing for the caller in context.
type CatalogService interface {
	// AllowedCategories returns the categories visible to the caller.
	AllowedCategories(ctx context.Context) ([]string, error)

	// ListVisibleProducts returns active products in allowed categories.
	ListVisibleProducts(ctx context.Context) ([]PricedProduct, error)

	// ListProductsByCategory returns ErrCategoryNotAllowed when the caller
	// may not see category.
	ListProductsByCategory(ctx context.Context, category string) ([]PricedProduct, error)

	// GetProduct returns ErrCategoryNotAllowed when the product's category
	// is not visible to the caller.
	GetProduct(ctx context.Context, id uuid.UUID) (*PricedProduct, error)
}

// CreateOrganizationParams contains the fields for a new organization.
type CreateOrganizationParams struct {
	Name              string   `json:"name" validate:"required,max=200"`
	Domain            string   `json:"domain" validate:"required,fqdn"`
	AllowedCategories []string `json:"allowed_categories" validate:"dive,required"`
}

// SetDiscountParams contains the fields for an organization product discount.
type SetDiscountParams struct {
	OrganizationID uuid.UUID       `json:"organization_id" validate:"required"`
	ProductID      uuid.UUID       `json:"product_id" validate:"required"`
	Percent        decimal.Decimal `json:"discount_percent"`
}

// SegmentParams contains the writable fields of a segment.
type SegmentParams struct {
	Name               string          `json:"name" validate:"required,max=200"`
	Description        string          `json:"description" validate:"max=2000"`
	AllowedRoles       []Role          `json:"allowed_roles" validate:"dive,oneof=admin SEPP EPP SPP user"`
	AllowedCategories  []string        `json:"allowed_categories" validate:"dive,required"`
	Organizations      []uuid.UUID     `json:"organizations"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	IsActive           bool            `json:"is_active"`
}

// ProductParams contains the writable fields of a product.
type ProductParams struct {
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description" validate:"max=5000"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category" validate:"required"`
	Colors      []string        `json:"colors"`
	Image       string          `json:"image"`
	Stock       int             `json:"stock" validate:"gte=0"`
	Bestseller  bool            `json:"bestseller"`
	Active      bool            `json:"active"`
}

// CategoryParams contains the fields for a new category.
type CategoryParams struct {
	Slug string `json:"slug" validate:"required,max=100"`
	Name string `json:"name" validate:"required,max=200"`
}

// AdminService holds the administrator-only catalog operations. Every method
// returns ErrAdminRequired unless the caller in context is an administrator.
type AdminService interface {
	// ListMembers returns every registered member, newest first.
	ListMembers(ctx context.Context) ([]Member, error)

	CreateOrganization(ctx context.Context, params CreateOrganizationParams) (*Organization, error)
	SetAllowedCategories(ctx context.Context, orgID uuid.UUID, categories []string) (*Organization, error)
	ListOrganizations(ctx context.Context) ([]Organization, error)

	// SetDiscount upserts the discount for (organization, product).
	SetDiscount(ctx context.Context, params SetDiscountParams) (*Discount, error)
	ListDiscounts(ctx context.Context, orgID uuid.UUID) ([]Discount, error)

	CreateSegment(ctx context.Context, params SegmentParams) (*Segment, error)
	UpdateSegment(ctx context.Context, id uuid.UUID, params SegmentParams) (*Segment, error)
	ToggleSegment(ctx context.Context, id uuid.UUID) (*Segment, error)
	AddOrganizationToSegment(ctx context.Context, segmentID, orgID uuid.UUID) (*Segment, error)
	RemoveOrganizationFromSegment(ctx context.Context, segmentID, orgID uuid.UUID) (*Segment, error)
	DeleteSegment(ctx context.Context, id uuid.UUID) error
	GetSegment(ctx context.Context, id uuid.UUID) (*Segment, error)
	ListSegments(ctx context.Context) ([]Segment, error)

	CreateCategory(ctx context.Context, params CategoryParams) (*Category, error)
	ListCategories(ctx context.Context) ([]Category, error)

	CreateProduct(ctx context.Context, params ProductParams) (*Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, params ProductParams) (*Product, error)
	ListProducts(ctx context.Context) ([]Product, error)

	// CategoryPerformance reports sales per category, highest sales first.
	CategoryPerformance(ctx context.Context) ([]CategoryPerformance, error)
}
