package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/dukerupert/kestrel/internal/domain"
)

// Querier lists every query of the storefront schema. Single-row lookups
// return pgx.ErrNoRows when nothing matches.
type Querier interface {
	// Members
	CreateMember(ctx context.Context, arg CreateMemberParams) (domain.Member, error)
	GetMemberByID(ctx context.Context, id uuid.UUID) (domain.Member, error)
	GetMemberByEmail(ctx context.Context, email string) (domain.Member, error)
	ListMembers(ctx context.Context) ([]domain.Member, error)
	GetRoleForDomain(ctx context.Context, emailDomain string) (domain.Role, error)
	UpsertRoleDomain(ctx context.Context, arg domain.RoleDomain) error

	// Organizations
	CreateOrganization(ctx context.Context, arg CreateOrganizationParams) (domain.Organization, error)
	GetOrganizationByID(ctx context.Context, id uuid.UUID) (domain.Organization, error)
	GetOrganizationByDomain(ctx context.Context, orgDomain string) (domain.Organization, error)
	UpdateOrganizationCategories(ctx context.Context, id uuid.UUID, categories []string) (domain.Organization, error)
	ListOrganizations(ctx context.Context) ([]domain.Organization, error)

	// Categories
	CreateCategory(ctx context.Context, slug, name string) (domain.Category, error)
	EnsureCategory(ctx context.Context, slug, name string) error
	GetCategory(ctx context.Context, slug string) (domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// Discounts
	UpsertDiscount(ctx context.Context, arg UpsertDiscountParams) (domain.Discount, error)
	ListDiscountsByOrganization(ctx context.Context, orgID uuid.UUID) ([]domain.Discount, error)

	// Segments
	CreateSegment(ctx context.Context, arg SegmentParams) (domain.Segment, error)
	UpdateSegment(ctx context.Context, id uuid.UUID, arg SegmentParams) (domain.Segment, error)
	GetSegment(ctx context.Context, id uuid.UUID) (domain.Segment, error)
	ToggleSegment(ctx context.Context, id uuid.UUID) (domain.Segment, error)
	AddSegmentOrganization(ctx context.Context, id, orgID uuid.UUID) (domain.Segment, error)
	RemoveSegmentOrganization(ctx context.Context, id, orgID uuid.UUID) (domain.Segment, error)
	DeleteSegment(ctx context.Context, id uuid.UUID) (int64, error)
	ListSegments(ctx context.Context) ([]domain.Segment, error)
	ListActiveSegments(ctx context.Context) ([]domain.Segment, error)

	// Products
	CreateProduct(ctx context.Context, arg ProductParams) (domain.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, arg ProductParams) (domain.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error)
	GetProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListActiveProductsInCategories(ctx context.Context, categories []string) ([]domain.Product, error)
	IncrementProductSold(ctx context.Context, id uuid.UUID, quantity int) error

	// Carts
	EnsureCart(ctx context.Context, memberID uuid.UUID) error
	GetCart(ctx context.Context, memberID uuid.UUID) (domain.Cart, error)
	GetCartForUpdate(ctx context.Context, memberID uuid.UUID) (domain.Cart, error)
	SaveCart(ctx context.Context, memberID uuid.UUID, items []domain.CartItem) (domain.Cart, error)
	ClearCart(ctx context.Context, memberID uuid.UUID) error

	// Orders
	CreateOrder(ctx context.Context, arg CreateOrderParams) (domain.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (domain.Order, error)
	GetOrderForUpdate(ctx context.Context, id uuid.UUID) (domain.Order, error)
	GetOrderByGatewayOrderID(ctx context.Context, gatewayOrderID string) (domain.Order, error)
	ListOrdersByMember(ctx context.Context, memberID uuid.UUID) ([]domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) (domain.Order, error)
	CreateOrderStatusEvent(ctx context.Context, arg CreateOrderStatusEventParams) (domain.OrderStatusEvent, error)
	ListOrderStatusEvents(ctx context.Context, orderID uuid.UUID) ([]domain.OrderStatusEvent, error)
	CategoryPerformance(ctx context.Context) ([]domain.CategoryPerformance, error)
}
