package api

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dukerupert/kestrel/internal/domain"
)

// mockMemberService implements domain.MemberService for testing
type mockMemberService struct {
	registerFunc     func(ctx context.Context, params domain.RegisterParams) (*domain.Member, error)
	authenticateFunc func(ctx context.Context, email, password string) (*domain.Member, error)
	getMemberFunc    func(ctx context.Context, id uuid.UUID) (*domain.Member, error)
}

func (m *mockMemberService) Register(ctx context.Context, params domain.RegisterParams) (*domain.Member, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, params)
	}
	return nil, nil
}

func (m *mockMemberService) Authenticate(ctx context.Context, email, password string) (*domain.Member, error) {
	if m.authenticateFunc != nil {
		return m.authenticateFunc(ctx, email, password)
	}
	return nil, nil
}

func (m *mockMemberService) GetMember(ctx context.Context, id uuid.UUID) (*domain.Member, error) {
	if m.getMemberFunc != nil {
		return m.getMemberFunc(ctx, id)
	}
	return nil, nil
}

// stubTokens implements TokenIssuer for testing
type stubTokens struct {
	issued *domain.Identity
	err    error
}

func (s *stubTokens) Issue(identity *domain.Identity) (string, time.Time, error) {
	s.issued = identity
	if s.err != nil {
		return "", time.Time{}, s.err
	}
	return "signed-token", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), nil
}

// mockCatalogService implements domain.CatalogService for testing
type mockCatalogService struct {
	allowedCategoriesFunc      func(ctx context.Context) ([]string, error)
	listVisibleProductsFunc    func(ctx context.Context) ([]domain.PricedProduct, error)
	listProductsByCategoryFunc func(ctx context.Context, category string) ([]domain.PricedProduct, error)
	getProductFunc             func(ctx context.Context, id uuid.UUID) (*domain.PricedProduct, error)
}

func (m *mockCatalogService) AllowedCategories(ctx context.Context) ([]string, error) {
	if m.allowedCategoriesFunc != nil {
		return m.allowedCategoriesFunc(ctx)
	}
	return nil, nil
}

func (m *mockCatalogService) ListVisibleProducts(ctx context.Context) ([]domain.PricedProduct, error) {
	if m.listVisibleProductsFunc != nil {
		return m.listVisibleProductsFunc(ctx)
	}
	return nil, nil
}

func (m *mockCatalogService) ListProductsByCategory(ctx context.Context, category string) ([]domain.PricedProduct, error) {
	if m.listProductsByCategoryFunc != nil {
		return m.listProductsByCategoryFunc(ctx, category)
	}
	return nil, nil
}

func (m *mockCatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*domain.PricedProduct, error) {
	if m.getProductFunc != nil {
		return m.getProductFunc(ctx, id)
	}
	return nil, nil
}

// mockCartService implements domain.CartService for testing
type mockCartService struct {
	getCartFunc    func(ctx context.Context) (*domain.Cart, error)
	addItemFunc    func(ctx context.Context, params domain.AddCartItemParams) (*domain.Cart, error)
	updateItemFunc func(ctx context.Context, productID uuid.UUID, size string, quantity int) (*domain.Cart, error)
	removeItemFunc func(ctx context.Context, productID uuid.UUID, size string) (*domain.Cart, error)
	clearFunc      func(ctx context.Context) error
}

func (m *mockCartService) GetCart(ctx context.Context) (*domain.Cart, error) {
	if m.getCartFunc != nil {
		return m.getCartFunc(ctx)
	}
	return &domain.Cart{}, nil
}

func (m *mockCartService) AddItem(ctx context.Context, params domain.AddCartItemParams) (*domain.Cart, error) {
	if m.addItemFunc != nil {
		return m.addItemFunc(ctx, params)
	}
	return &domain.Cart{}, nil
}

func (m *mockCartService) UpdateItem(ctx context.Context, productID uuid.UUID, size string, quantity int) (*domain.Cart, error) {
	if m.updateItemFunc != nil {
		return m.updateItemFunc(ctx, productID, size, quantity)
	}
	return &domain.Cart{}, nil
}

func (m *mockCartService) RemoveItem(ctx context.Context, productID uuid.UUID, size string) (*domain.Cart, error) {
	if m.removeItemFunc != nil {
		return m.removeItemFunc(ctx, productID, size)
	}
	return &domain.Cart{}, nil
}

func (m *mockCartService) Clear(ctx context.Context) error {
	if m.clearFunc != nil {
		return m.clearFunc(ctx)
	}
	return nil
}

// mockOrderService implements domain.OrderService for testing
type mockOrderService struct {
	createOrderFunc func(ctx context.Context, params domain.CreateOrderParams) (*domain.Order, error)
}

func (m *mockOrderService) CreateOrder(ctx context.Context, params domain.CreateOrderParams) (*domain.Order, error) {
	if m.createOrderFunc != nil {
		return m.createOrderFunc(ctx, params)
	}
	return nil, nil
}

// mockLifecycleService implements domain.OrderLifecycleService for testing
type mockLifecycleService struct {
	getOrderFunc             func(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	listOrdersForMemberFunc  func(ctx context.Context, memberID uuid.UUID) ([]domain.Order, error)
	listAllOrdersFunc        func(ctx context.Context) ([]domain.Order, error)
	updateStatusFunc         func(ctx context.Context, id uuid.UUID, status string) (*domain.Order, error)
	cancelByGatewayOrderFunc func(ctx context.Context, gatewayOrderID, reason string) (*domain.Order, error)
	listStatusEventsFunc     func(ctx context.Context, id uuid.UUID) ([]domain.OrderStatusEvent, error)
}

func (m *mockLifecycleService) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	if m.getOrderFunc != nil {
		return m.getOrderFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockLifecycleService) ListOrdersForMember(ctx context.Context, memberID uuid.UUID) ([]domain.Order, error) {
	if m.listOrdersForMemberFunc != nil {
		return m.listOrdersForMemberFunc(ctx, memberID)
	}
	return nil, nil
}

func (m *mockLifecycleService) ListAllOrders(ctx context.Context) ([]domain.Order, error) {
	if m.listAllOrdersFunc != nil {
		return m.listAllOrdersFunc(ctx)
	}
	return nil, nil
}

func (m *mockLifecycleService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*domain.Order, error) {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil, nil
}

func (m *mockLifecycleService) CancelByGatewayOrder(ctx context.Context, gatewayOrderID, reason string) (*domain.Order, error) {
	if m.cancelByGatewayOrderFunc != nil {
		return m.cancelByGatewayOrderFunc(ctx, gatewayOrderID, reason)
	}
	return nil, nil
}

func (m *mockLifecycleService) ListStatusEvents(ctx context.Context, id uuid.UUID) ([]domain.OrderStatusEvent, error) {
	if m.listStatusEventsFunc != nil {
		return m.listStatusEventsFunc(ctx, id)
	}
	return nil, nil
}

// mockPaymentService implements domain.PaymentService for testing
type mockPaymentService struct {
	createPaymentIntentFunc func(ctx context.Context, amount decimal.Decimal) (*domain.PaymentIntent, error)
	confirmPaymentFunc      func(ctx context.Context, params domain.ConfirmPaymentParams) (*domain.Order, error)
}

func (m *mockPaymentService) CreatePaymentIntent(ctx context.Context, amount decimal.Decimal) (*domain.PaymentIntent, error) {
	if m.createPaymentIntentFunc != nil {
		return m.createPaymentIntentFunc(ctx, amount)
	}
	return nil, nil
}

func (m *mockPaymentService) ConfirmPayment(ctx context.Context, params domain.ConfirmPaymentParams) (*domain.Order, error) {
	if m.confirmPaymentFunc != nil {
		return m.confirmPaymentFunc(ctx, params)
	}
	return nil, nil
}

// mockAdminService implements domain.AdminService for testing. Methods
// without a func field return zero values.
type mockAdminService struct {
	listMembersFunc          func(ctx context.Context) ([]domain.Member, error)
	createOrganizationFunc   func(ctx context.Context, params domain.CreateOrganizationParams) (*domain.Organization, error)
	setAllowedCategoriesFunc func(ctx context.Context, orgID uuid.UUID, categories []string) (*domain.Organization, error)
	setDiscountFunc          func(ctx context.Context, params domain.SetDiscountParams) (*domain.Discount, error)
	addOrgToSegmentFunc      func(ctx context.Context, segmentID, orgID uuid.UUID) (*domain.Segment, error)
	deleteSegmentFunc        func(ctx context.Context, id uuid.UUID) error
	listSegmentsFunc         func(ctx context.Context) ([]domain.Segment, error)
	categoryPerformanceFunc  func(ctx context.Context) ([]domain.CategoryPerformance, error)
}

func (m *mockAdminService) CreateOrganization(ctx context.Context, params domain.CreateOrganizationParams) (*domain.Organization, error) {
	if m.createOrganizationFunc != nil {
		return m.createOrganizationFunc(ctx, params)
	}
	return nil, nil
}

func (m *mockAdminService) SetAllowedCategories(ctx context.Context, orgID uuid.UUID, categories []string) (*domain.Organization, error) {
	if m.setAllowedCategoriesFunc != nil {
		return m.setAllowedCategoriesFunc(ctx, orgID, categories)
	}
	return nil, nil
}

func (m *mockAdminService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	if m.listMembersFunc != nil {
		return m.listMembersFunc(ctx)
	}
	return nil, nil
}

func (m *mockAdminService) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	return nil, nil
}

func (m *mockAdminService) SetDiscount(ctx context.Context, params domain.SetDiscountParams) (*domain.Discount, error) {
	if m.setDiscountFunc != nil {
		return m.setDiscountFunc(ctx, params)
	}
	return nil, nil
}

func (m *mockAdminService) ListDiscounts(ctx context.Context, orgID uuid.UUID) ([]domain.Discount, error) {
	return nil, nil
}

func (m *mockAdminService) CreateSegment(ctx context.Context, params domain.SegmentParams) (*domain.Segment, error) {
	return nil, nil
}

func (m *mockAdminService) UpdateSegment(ctx context.Context, id uuid.UUID, params domain.SegmentParams) (*domain.Segment, error) {
	return nil, nil
}

func (m *mockAdminService) ToggleSegment(ctx context.Context, id uuid.UUID) (*domain.Segment, error) {
	return nil, nil
}

func (m *mockAdminService) AddOrganizationToSegment(ctx context.Context, segmentID, orgID uuid.UUID) (*domain.Segment, error) {
	if m.addOrgToSegmentFunc != nil {
		return m.addOrgToSegmentFunc(ctx, segmentID, orgID)
	}
	return nil, nil
}

func (m *mockAdminService) RemoveOrganizationFromSegment(ctx context.Context, segmentID, orgID uuid.UUID) (*domain.Segment, error) {
	return nil, nil
}

func (m *mockAdminService) DeleteSegment(ctx context.Context, id uuid.UUID) error {
	if m.deleteSegmentFunc != nil {
		return m.deleteSegmentFunc(ctx, id)
	}
	return nil
}

func (m *mockAdminService) GetSegment(ctx context.Context, id uuid.UUID) (*domain.Segment, error) {
	return nil, nil
}

func (m *mockAdminService) ListSegments(ctx context.Context) ([]domain.Segment, error) {
	if m.listSegmentsFunc != nil {
		return m.listSegmentsFunc(ctx)
	}
	return nil, nil
}

func (m *mockAdminService) CreateCategory(ctx context.Context, params domain.CategoryParams) (*domain.Category, error) {
	return nil, nil
}

func (m *mockAdminService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return nil, nil
}

func (m *mockAdminService) CreateProduct(ctx context.Context, params domain.ProductParams) (*domain.Product, error) {
	return nil, nil
}

func (m *mockAdminService) UpdateProduct(ctx context.Context, id uuid.UUID, params domain.ProductParams) (*domain.Product, error) {
	return nil, nil
}

func (m *mockAdminService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return nil, nil
}

func (m *mockAdminService) CategoryPerformance(ctx context.Context) ([]domain.CategoryPerformance, error) {
	if m.categoryPerformanceFunc != nil {
		return m.categoryPerformanceFunc(ctx)
	}
	return nil, nil
}
