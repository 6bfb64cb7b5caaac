// Package pricing computes discounted prices and order totals with decimal
// arithmetic. Every function is deterministic so the same inputs always
// reproduce the same total during order validation.
package pricing

import (
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dukerupert/kestrel/internal/domain"
)

var (
	hundred = decimal.NewFromInt(100)

	// Epsilon is the largest accepted difference between a submitted order
	// amount and the computed total.
	Epsilon = decimal.RequireFromString("0.01")

	// MaxAmount is the largest order amount the orders table can store.
	MaxAmount = decimal.RequireFromString("9999999999.99")

	maxInt64 = decimal.NewFromInt(math.MaxInt64)
	minInt64 = decimal.NewFromInt(math.MinInt64)
)

// ErrAmountOutOfRange is returned when an amount has no int64 subunit form.
var ErrAmountOutOfRange = errors.New("pricing: amount out of range")

// Engine rounds discounted prices to a fixed number of decimal places.
type Engine struct {
	places int32
}

// NewEngine returns an engine rounding to places decimal places. Zero rounds
// to whole currency units.
func NewEngine(places int32) *Engine {
	if places < 0 {
		places = 0
	}
	return &Engine{places: places}
}

// Places returns the rounding precision of the engine.
func (e *Engine) Places() int32 {
	return e.places
}

// DiscountedPrice returns round(price - price*percent/100) rounding half up.
func (e *Engine) DiscountedPrice(price, percent decimal.Decimal) decimal.Decimal {
	return price.Sub(price.Mul(percent).Div(hundred)).Round(e.places)
}

// Annotate attaches the resolved discount and discounted price to product.
func (e *Engine) Annotate(product domain.Product, percent decimal.Decimal) domain.PricedProduct {
	return domain.PricedProduct{
		Product:         product,
		Discount:        percent,
		DiscountedPrice: e.DiscountedPrice(product.Price, percent),
	}
}

// LineTotal returns price * quantity * (1 - discount/100) without rounding.
func LineTotal(item domain.LineItem) decimal.Decimal {
	gross := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
	return gross.Sub(gross.Mul(item.Discount).Div(hundred))
}

// OrderTotal sums LineTotal over items.
func OrderTotal(items []domain.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(LineTotal(item))
	}
	return total
}

// AmountMatches reports whether |claimed - computed| <= Epsilon.
func AmountMatches(claimed, computed decimal.Decimal) bool {
	return claimed.Sub(computed).Abs().LessThanOrEqual(Epsilon)
}

// ValidatePercent rejects discount percentages outside [0, 100]. It is
// applied when discounts and segments are written, never when read.
func ValidatePercent(op, field string, percent decimal.Decimal) error {
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return domain.NewValidationError(op, field, "must be between 0 and 100")
	}
	return nil
}

// ValidateAmount rejects amounts above MaxAmount.
func ValidateAmount(op, field string, amount decimal.Decimal) error {
	if amount.GreaterThan(MaxAmount) {
		return domain.NewValidationError(op, field, "must be at most "+MaxAmount.String())
	}
	return nil
}

// ToMinorUnits converts amount to the gateway's subunit integer, rounding
// half up to whole subunits. Results outside int64 return ErrAmountOutOfRange.
func ToMinorUnits(amount decimal.Decimal, subunits int64) (int64, error) {
	minor := amount.Mul(decimal.NewFromInt(subunits)).Round(0)
	if minor.GreaterThan(maxInt64) || minor.LessThan(minInt64) {
		return 0, ErrAmountOutOfRange
	}
	return minor.IntPart(), nil
}

// Scope is the pricing context of one member: their role, organization and
// the discount sources that can apply to them.
type Scope struct {
	Role           domain.Role
	OrganizationID *uuid.UUID
	Discounts      map[uuid.UUID]decimal.Decimal
	Segments       []domain.Segment
}

// DiscountFor resolves the discount percent of product for the scope.
// An organization-level product discount takes precedence over segments.
// Otherwise the highest discount among applicable active segments is used.
// Returns zero when nothing applies.
func (s *Scope) DiscountFor(product domain.Product) decimal.Decimal {
	if s == nil {
		return decimal.Zero
	}
	if percent, ok := s.Discounts[product.ID]; ok {
		return percent
	}

	best := decimal.Zero
	for i := range s.Segments {
		seg := &s.Segments[i]
		if seg.Applies(s.Role, s.OrganizationID, product.Category) && seg.DiscountPercentage.GreaterThan(best) {
			best = seg.DiscountPercentage
		}
	}
	return best
}
