package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dukerupert/kestrel/internal/billing"
	"github.com/dukerupert/kestrel/internal/domain"
	"github.com/dukerupert/kestrel/internal/events"
	"github.com/dukerupert/kestrel/internal/repository"
)

type orderFixture struct {
	store     *repository.MockStore
	publisher *events.MockPublisher
	provider  *billing.MockProvider
	resolver  *stubResolver
	svc       domain.OrderService
	product   domain.Product
	memberID  uuid.UUID
	ctx       context.Context
}

// newOrderFixture prices one iPhone at 1000 with a 10% organization discount.
func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	product := testProduct("iphones", "1000")
	f := &orderFixture{
		store:     repository.NewMockStore(ctrl),
		publisher: events.NewMockPublisher(ctrl),
		provider:  billing.NewMockProvider(),
		resolver: &stubResolver{
			categories: []string{"iphones", "mac"},
			discounts:  map[uuid.UUID]decimal.Decimal{product.ID: dec("10")},
		},
		product:  product,
		memberID: uuid.New(),
	}
	f.ctx = memberContext(f.memberID)
	f.svc = NewOrderService(f.store, f.resolver, f.provider, f.publisher, CheckoutConfig{}, nil)
	return f
}

func (f *orderFixture) params(method domain.PaymentMethod) domain.CreateOrderParams {
	return domain.CreateOrderParams{
		Items: []domain.LineItemInput{
			{ProductID: f.product.ID, Quantity: 2, Price: decPtr("1000"), Discount: decPtr("10")},
		},
		Address:       validAddress(),
		PaymentMethod: method,
		Amount:        decPtr("1800"),
	}
}

func (f *orderFixture) expectProducts() {
	f.store.EXPECT().
		GetProductsByIDs(gomock.Any(), []uuid.UUID{f.product.ID}).
		Return([]domain.Product{f.product}, nil)
}

// expectPlacement expects the full order transaction and returns a pointer
// to the captured CreateOrder arguments.
func (f *orderFixture) expectPlacement() *repository.CreateOrderParams {
	captured := &repository.CreateOrderParams{}
	runTxOn(f.store)
	f.store.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, arg repository.CreateOrderParams) (domain.Order, error) {
			*captured = arg
			return orderFromParams(arg), nil
		})
	f.store.EXPECT().IncrementProductSold(gomock.Any(), f.product.ID, 2).Return(nil)
	f.store.EXPECT().ClearCart(gomock.Any(), f.memberID).Return(nil)
	f.publisher.EXPECT().Publish(gomock.Any(), events.SubjectOrderCreated, gomock.Any()).Return(nil)
	return captured
}

func TestOrderService_CreateOrder_COD(t *testing.T) {
	f := newOrderFixture(t)
	f.expectProducts()
	captured := f.expectPlacement()

	order, err := f.svc.CreateOrder(f.ctx, f.params(domain.PaymentMethodCOD))
	require.NoError(t, err)

	assert.True(t, order.Amount.Equal(dec("1800")), "amount = %s", order.Amount)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Nil(t, order.GatewayPaymentID)
	assert.Nil(t, order.GatewayOrderID)

	require.Len(t, captured.Items, 1)
	line := captured.Items[0]
	assert.Equal(t, "iPhone 15", line.Name)
	assert.Equal(t, "iphones", line.Category)
	assert.True(t, line.Price.Equal(dec("1000")))
	assert.True(t, line.Discount.Equal(dec("10")))
}

func TestOrderService_CreateOrder_WithoutClientClaims(t *testing.T) {
	f := newOrderFixture(t)
	f.expectProducts()
	f.expectPlacement()

	params := domain.CreateOrderParams{
		Items:         []domain.LineItemInput{{ProductID: f.product.ID, Quantity: 2}},
		Address:       validAddress(),
		PaymentMethod: domain.PaymentMethodCOD,
	}

	order, err := f.svc.CreateOrder(f.ctx, params)
	require.NoError(t, err)
	assert.True(t, order.Amount.Equal(dec("1800")))
}

func TestOrderService_CreateOrder_Rejections(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(f *orderFixture, p *domain.CreateOrderParams)
		loadProducts bool
		wantCode     string
		wantErr      error
		wantField    string
	}{
		{
			name:         "amount mismatch",
			mutate:       func(f *orderFixture, p *domain.CreateOrderParams) { p.Amount = decPtr("1700") },
			loadProducts: true,
			wantErr:      domain.ErrAmountMismatch,
		},
		{
			name:         "amount just past epsilon",
			mutate:       func(f *orderFixture, p *domain.CreateOrderParams) { p.Amount = decPtr("1800.02") },
			loadProducts: true,
			wantErr:      domain.ErrAmountMismatch,
		},
		{
			name:         "online without payment",
			mutate:       func(f *orderFixture, p *domain.CreateOrderParams) { p.PaymentMethod = domain.PaymentMethodOnline },
			loadProducts: true,
			wantErr:      domain.ErrPaymentRequired,
		},
		{
			name: "online with only one identifier",
			mutate: func(f *orderFixture, p *domain.CreateOrderParams) {
				p.PaymentMethod = domain.PaymentMethodOnline
				p.GatewayOrderID = "pi_123"
			},
			loadProducts: true,
			wantErr:      domain.ErrPaymentRequired,
		},
		{
			name:         "cod with payment identifiers",
			mutate:       func(f *orderFixture, p *domain.CreateOrderParams) { p.GatewayPaymentID = "ch_1"; p.GatewayOrderID = "pi_1" },
			loadProducts: true,
			wantErr:      domain.ErrUnexpectedPayment,
		},
		{
			name:         "tampered price",
			mutate:       func(f *orderFixture, p *domain.CreateOrderParams) { p.Items[0].Price = decPtr("10") },
			loadProducts: true,
			wantCode:     domain.EINVALID,
			wantField:    "items[0].price",
		},
		{
			name:         "tampered discount",
			mutate:       func(f *orderFixture, p *domain.CreateOrderParams) { p.Items[0].Discount = decPtr("90") },
			loadProducts: true,
			wantCode:     domain.EINVALID,
			wantField:    "items[0].discount",
		},
		{
			name:      "bad pincode",
			mutate:    func(f *orderFixture, p *domain.CreateOrderParams) { p.Address.Pincode = "5600" },
			wantCode:  domain.EINVALID,
			wantField: "address.pincode",
		},
		{
			name:      "non numeric phone",
			mutate:    func(f *orderFixture, p *domain.CreateOrderParams) { p.Address.Phone = "98765-4321" },
			wantCode:  domain.EINVALID,
			wantField: "address.phone",
		},
		{
			name:      "zero quantity",
			mutate:    func(f *orderFixture, p *domain.CreateOrderParams) { p.Items[0].Quantity = 0 },
			wantCode:  domain.EINVALID,
			wantField: "items[0].quantity",
		},
		{
			name:      "no items",
			mutate:    func(f *orderFixture, p *domain.CreateOrderParams) { p.Items = nil },
			wantCode:  domain.EINVALID,
			wantField: "items",
		},
		{
			name:      "unknown payment method",
			mutate:    func(f *orderFixture, p *domain.CreateOrderParams) { p.PaymentMethod = "card" },
			wantCode:  domain.EINVALID,
			wantField: "payment_method",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderFixture(t)
			if tt.loadProducts {
				f.expectProducts()
			}
			// No ExecTx expectation: any write fails the test.

			params := f.params(domain.PaymentMethodCOD)
			tt.mutate(f, &params)

			order, err := f.svc.CreateOrder(f.ctx, params)
			require.Error(t, err)
			assert.Nil(t, order)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, domain.ErrorCode(err))
			}
			if tt.wantField != "" {
				assert.Contains(t, domain.GetValidationFields(err), tt.wantField)
			}
		})
	}
}

func TestOrderService_CreateOrder_CategoryNotAllowed(t *testing.T) {
	f := newOrderFixture(t)
	f.product.Category = "watch"
	f.expectProducts()

	_, err := f.svc.CreateOrder(f.ctx, f.params(domain.PaymentMethodCOD))
	assert.ErrorIs(t, err, domain.ErrCategoryNotAllowed)
	assert.Equal(t, domain.EFORBIDDEN, domain.ErrorCode(err))
}

func TestOrderService_CreateOrder_UnknownProduct(t *testing.T) {
	f := newOrderFixture(t)
	f.store.EXPECT().GetProductsByIDs(gomock.Any(), gomock.Any()).Return([]domain.Product{}, nil)

	_, err := f.svc.CreateOrder(f.ctx, f.params(domain.PaymentMethodCOD))
	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
}

func TestOrderService_CreateOrder_InactiveProduct(t *testing.T) {
	f := newOrderFixture(t)
	f.product.Active = false
	f.expectProducts()

	_, err := f.svc.CreateOrder(f.ctx, f.params(domain.PaymentMethodCOD))
	assert.Contains(t, domain.GetValidationFields(err), "items[0].product_id")
}

func TestOrderService_CreateOrder_TotalTooLarge(t *testing.T) {
	f := newOrderFixture(t)
	f.product.Price = dec("99999999")
	f.expectProducts()

	params := domain.CreateOrderParams{
		Items:         []domain.LineItemInput{{ProductID: f.product.ID, Quantity: domain.MaxLineQuantity}},
		Address:       validAddress(),
		PaymentMethod: domain.PaymentMethodCOD,
	}

	_, err := f.svc.CreateOrder(f.ctx, params)
	require.Error(t, err)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
	assert.Contains(t, domain.GetValidationFields(err), "amount")
}

func TestOrderService_CreateOrder_RequiresIdentity(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.svc.CreateOrder(context.Background(), f.params(domain.PaymentMethodCOD))
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}

func TestOrderService_CreateOrder_TransactionFailureKeepsCart(t *testing.T) {
	f := newOrderFixture(t)
	f.expectProducts()
	runTxOn(f.store)
	f.store.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(domain.Order{}, assert.AnError)
	// ClearCart is never reached and nothing is published.

	_, err := f.svc.CreateOrder(f.ctx, f.params(domain.PaymentMethodCOD))
	assert.Equal(t, domain.EINTERNAL, domain.ErrorCode(err))
}

func TestOrderService_CreateOrder_OnlineVerified(t *testing.T) {
	f := newOrderFixture(t)

	intent, err := f.provider.CreatePaymentIntent(context.Background(), billing.CreatePaymentIntentParams{
		AmountMinor: 180000,
		Currency:    billing.DefaultCurrency,
		Metadata:    map[string]string{billing.MetadataMemberID: f.memberID.String()},
	})
	require.NoError(t, err)
	chargeID, err := f.provider.SimulateSucceededPayment(intent.ID)
	require.NoError(t, err)

	f.expectProducts()
	captured := f.expectPlacement()

	params := f.params(domain.PaymentMethodOnline)
	params.GatewayOrderID = intent.ID
	params.GatewayPaymentID = chargeID

	order, err := f.svc.CreateOrder(f.ctx, params)
	require.NoError(t, err)
	require.NotNil(t, captured.GatewayOrderID)
	assert.Equal(t, intent.ID, *captured.GatewayOrderID)
	assert.Equal(t, chargeID, *order.GatewayPaymentID)
}

func TestOrderService_CreateOrder_PaymentAlreadyUsed(t *testing.T) {
	f := newOrderFixture(t)

	intent, err := f.provider.CreatePaymentIntent(context.Background(), billing.CreatePaymentIntentParams{
		AmountMinor: 180000,
		Currency:    billing.DefaultCurrency,
		Metadata:    map[string]string{billing.MetadataMemberID: f.memberID.String()},
	})
	require.NoError(t, err)
	chargeID, err := f.provider.SimulateSucceededPayment(intent.ID)
	require.NoError(t, err)

	f.expectProducts()
	runTxOn(f.store)
	f.store.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any()).
		Return(domain.Order{}, uniqueViolation(ordersGatewayPaymentIDKey))

	params := f.params(domain.PaymentMethodOnline)
	params.GatewayOrderID = intent.ID
	params.GatewayPaymentID = chargeID

	_, err = f.svc.CreateOrder(f.ctx, params)
	assert.ErrorIs(t, err, domain.ErrPaymentAlreadyUsed)
}

func TestOrderService_CreateOrder_SegmentDiscount(t *testing.T) {
	f := newOrderFixture(t)
	f.resolver.discounts = nil
	f.resolver.segments = []domain.Segment{
		{Name: "festive", DiscountPercentage: dec("5"), IsActive: true},
		{Name: "loyal", DiscountPercentage: dec("15"), IsActive: true},
	}
	f.expectProducts()
	captured := f.expectPlacement()

	params := f.params(domain.PaymentMethodCOD)
	params.Items[0].Discount = decPtr("15")
	params.Amount = decPtr("1700")

	_, err := f.svc.CreateOrder(f.ctx, params)
	require.NoError(t, err)
	assert.True(t, captured.Amount.Equal(dec("1700")))
}
