package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dukerupert/kestrel/internal/domain"
	"github.com/dukerupert/kestrel/internal/pricing"
	"github.com/dukerupert/kestrel/internal/repository"
)

type cartFixture struct {
	store    *repository.MockStore
	svc      domain.CartService
	product  domain.Product
	memberID uuid.UUID
	ctx      context.Context
}

func newCartFixture(t *testing.T) *cartFixture {
	t.Helper()
	product := testProduct("iphones", "999")
	f := &cartFixture{
		store:    newStore(t),
		product:  product,
		memberID: uuid.New(),
	}
	resolver := &stubResolver{
		categories: []string{"iphones"},
		discounts:  map[uuid.UUID]decimal.Decimal{product.ID: dec("15")},
	}
	f.ctx = memberContext(f.memberID)
	f.svc = NewCartService(f.store, resolver, pricing.NewEngine(0), nil)
	return f
}

// expectLockedCart expects the locking transaction over a cart holding items
// and returns a pointer to the saved items.
func (f *cartFixture) expectLockedCart(items []domain.CartItem) *[]domain.CartItem {
	saved := new([]domain.CartItem)
	runTxOn(f.store)
	f.store.EXPECT().EnsureCart(gomock.Any(), f.memberID).Return(nil)
	f.store.EXPECT().
		GetCartForUpdate(gomock.Any(), f.memberID).
		Return(domain.Cart{MemberID: f.memberID, Items: items}, nil)
	f.store.EXPECT().
		SaveCart(gomock.Any(), f.memberID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, memberID uuid.UUID, items []domain.CartItem) (domain.Cart, error) {
			*saved = items
			return domain.Cart{MemberID: memberID, Items: items}, nil
		}).
		AnyTimes()
	return saved
}

func TestCartService_AddItem_New(t *testing.T) {
	f := newCartFixture(t)
	f.store.EXPECT().GetProduct(gomock.Any(), f.product.ID).Return(f.product, nil)
	saved := f.expectLockedCart(nil)

	cart, err := f.svc.AddItem(f.ctx, domain.AddCartItemParams{ProductID: f.product.ID, Quantity: 1, Size: "M"})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	item := (*saved)[0]
	assert.Equal(t, "iPhone 15", item.Name)
	assert.Equal(t, "M", item.Size)
	assert.True(t, item.Price.Equal(dec("999")))
	// 999 * 0.85 = 849.15, rounded half up to whole units
	assert.True(t, item.DiscountedPrice.Equal(dec("849")), "got %s", item.DiscountedPrice)
}

func TestCartService_AddItem_MergesSameProductAndSize(t *testing.T) {
	f := newCartFixture(t)
	f.store.EXPECT().GetProduct(gomock.Any(), f.product.ID).Return(f.product, nil)
	saved := f.expectLockedCart([]domain.CartItem{
		{ProductID: f.product.ID, Quantity: 1, Size: "M"},
		{ProductID: f.product.ID, Quantity: 4, Size: "L"},
	})

	_, err := f.svc.AddItem(f.ctx, domain.AddCartItemParams{ProductID: f.product.ID, Quantity: 2, Size: "M"})
	require.NoError(t, err)

	require.Len(t, *saved, 2)
	assert.Equal(t, 3, (*saved)[0].Quantity)
	assert.Equal(t, 4, (*saved)[1].Quantity)
}

func TestCartService_AddItem_Rejections(t *testing.T) {
	t.Run("category not allowed", func(t *testing.T) {
		f := newCartFixture(t)
		f.product.Category = "watch"
		f.store.EXPECT().GetProduct(gomock.Any(), f.product.ID).Return(f.product, nil)

		_, err := f.svc.AddItem(f.ctx, domain.AddCartItemParams{ProductID: f.product.ID, Quantity: 1})
		assert.ErrorIs(t, err, domain.ErrCategoryNotAllowed)
	})

	t.Run("inactive product", func(t *testing.T) {
		f := newCartFixture(t)
		f.product.Active = false
		f.store.EXPECT().GetProduct(gomock.Any(), f.product.ID).Return(f.product, nil)

		_, err := f.svc.AddItem(f.ctx, domain.AddCartItemParams{ProductID: f.product.ID, Quantity: 1})
		assert.ErrorIs(t, err, ErrProductInactive)
	})

	t.Run("missing product", func(t *testing.T) {
		f := newCartFixture(t)
		f.store.EXPECT().GetProduct(gomock.Any(), gomock.Any()).Return(domain.Product{}, pgx.ErrNoRows)

		_, err := f.svc.AddItem(f.ctx, domain.AddCartItemParams{ProductID: uuid.New(), Quantity: 1})
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("zero quantity", func(t *testing.T) {
		f := newCartFixture(t)

		_, err := f.svc.AddItem(f.ctx, domain.AddCartItemParams{ProductID: f.product.ID, Quantity: 0})
		assert.Contains(t, domain.GetValidationFields(err), "quantity")
	})

	t.Run("quantity over limit", func(t *testing.T) {
		f := newCartFixture(t)

		_, err := f.svc.AddItem(f.ctx, domain.AddCartItemParams{ProductID: f.product.ID, Quantity: domain.MaxLineQuantity + 1})
		assert.Contains(t, domain.GetValidationFields(err), "quantity")
	})

	t.Run("merge over limit", func(t *testing.T) {
		f := newCartFixture(t)
		f.store.EXPECT().GetProduct(gomock.Any(), f.product.ID).Return(f.product, nil)
		saved := f.expectLockedCart([]domain.CartItem{
			{ProductID: f.product.ID, Quantity: domain.MaxLineQuantity - 1, Size: "M"},
		})

		_, err := f.svc.AddItem(f.ctx, domain.AddCartItemParams{ProductID: f.product.ID, Quantity: 2, Size: "M"})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		assert.Empty(t, *saved)
	})
}

func TestCartService_UpdateItem(t *testing.T) {
	f := newCartFixture(t)
	saved := f.expectLockedCart([]domain.CartItem{{ProductID: f.product.ID, Quantity: 1}})

	_, err := f.svc.UpdateItem(f.ctx, f.product.ID, "", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, (*saved)[0].Quantity)
}

func TestCartService_UpdateItem_Missing(t *testing.T) {
	f := newCartFixture(t)
	f.expectLockedCart([]domain.CartItem{{ProductID: f.product.ID, Quantity: 1, Size: "M"}})

	_, err := f.svc.UpdateItem(f.ctx, f.product.ID, "XL", 2)
	assert.ErrorIs(t, err, domain.ErrCartItemNotFound)
}

func TestCartService_UpdateItem_InvalidQuantity(t *testing.T) {
	f := newCartFixture(t)

	for _, quantity := range []int{0, domain.MaxLineQuantity + 1} {
		_, err := f.svc.UpdateItem(f.ctx, f.product.ID, "", quantity)
		assert.ErrorIs(t, err, ErrInvalidQuantity, quantity)
	}
}

func TestCartService_RemoveItem(t *testing.T) {
	f := newCartFixture(t)
	other := uuid.New()
	saved := f.expectLockedCart([]domain.CartItem{
		{ProductID: f.product.ID, Quantity: 1},
		{ProductID: other, Quantity: 2},
	})

	_, err := f.svc.RemoveItem(f.ctx, f.product.ID, "")
	require.NoError(t, err)
	require.Len(t, *saved, 1)
	assert.Equal(t, other, (*saved)[0].ProductID)
}

func TestCartService_GetCart_Empty(t *testing.T) {
	f := newCartFixture(t)
	f.store.EXPECT().GetCart(gomock.Any(), f.memberID).Return(domain.Cart{}, pgx.ErrNoRows)

	cart, err := f.svc.GetCart(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, f.memberID, cart.MemberID)
	assert.Empty(t, cart.Items)
}

func TestCartService_Clear(t *testing.T) {
	f := newCartFixture(t)
	f.store.EXPECT().ClearCart(gomock.Any(), f.memberID).Return(nil)

	require.NoError(t, f.svc.Clear(f.ctx))
}

func TestCartService_RequiresIdentity(t *testing.T) {
	f := newCartFixture(t)

	_, err := f.svc.GetCart(context.Background())
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}
