package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem denormalizes product data at the time it was added. Items are
// keyed by product and size.
type CartItem struct {
	ProductID       uuid.UUID       `json:"product_id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	DiscountedPrice decimal.Decimal `json:"discounted_price"`
	Quantity        int             `json:"quantity"`
	Size            string          `json:"size,omitempty"`
	Image           string          `json:"image,omitempty"`
}

// Matches reports whether the item is the line for productID and size.
func (i CartItem) Matches(productID uuid.UUID, size string) bool {
	return i.ProductID == productID && i.Size == size
}

// Cart is the single cart of a member.
type Cart struct {
	MemberID  uuid.UUID  `json:"member_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Subtotal sums discounted price times quantity over all items.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.DiscountedPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// MaxLineQuantity bounds the quantity of one cart or order line. The
// validate tags on line inputs carry the same value.
const MaxLineQuantity = 1000

// AddCartItemParams contains the fields to add a product to the cart.
type AddCartItemParams struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"min=1,max=1000"`
	Size      string    `json:"size,omitempty" validate:"max=20"`
}

var ErrCartItemNotFound = &Error{Code: ENOTFOUND, Message: "Cart item not found"}

// CartService mutates the caller's cart. Mutations of one cart serialize.
type CartService interface {
	GetCart(ctx context.Context) (*Cart, error)

	// AddItem merges quantity into an existing line for the same product
	// and size, or appends a new line priced for the caller.
	AddItem(ctx context.Context, params AddCartItemParams) (*Cart, error)

	UpdateItem(ctx context.Context, productID uuid.UUID, size string, quantity int) (*Cart, error)
	RemoveItem(ctx context.Context, productID uuid.UUID, size string) (*Cart, error)
	Clear(ctx context.Context) error
}
