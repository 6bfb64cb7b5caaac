package service

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/dukerupert/kestrel/internal/domain"
	"github.com/dukerupert/kestrel/internal/pricing"
	"github.com/dukerupert/kestrel/internal/repository"
	"github.com/dukerupert/kestrel/internal/telemetry"
)

type cartService struct {
	store    repository.Store
	resolver Resolver
	engine   *pricing.Engine
	logger   *slog.Logger
}

// NewCartService creates a CartService. Every mutation runs in a
// transaction holding the cart row lock, so concurrent changes to the
// same cart serialize instead of overwriting each other.
func NewCartService(store repository.Store, resolver Resolver, engine *pricing.Engine, logger *slog.Logger) domain.CartService {
	if logger == nil {
		logger = slog.Default()
	}
	return &cartService{store: store, resolver: resolver, engine: engine, logger: logger}
}

// GetCart returns the caller's cart, empty if none was ever written.
func (s *cartService) GetCart(ctx context.Context) (*domain.Cart, error) {
	identity, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	cart, err := s.store.GetCart(ctx, identity.MemberID)
	if repository.IsNotFound(err) {
		return &domain.Cart{MemberID: identity.MemberID, Items: []domain.CartItem{}}, nil
	}
	if err != nil {
		return nil, domain.Internal(err, "cart.get", "failed to load cart")
	}
	return &cart, nil
}

// AddItem snapshots the product's name, image and the caller's current
// price into the cart line.
func (s *cartService) AddItem(ctx context.Context, params domain.AddCartItemParams) (*domain.Cart, error) {
	const op = "cart.add"

	identity, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	params.Size = strings.TrimSpace(params.Size)
	if err := domain.Validate(op, params); err != nil {
		return nil, err
	}

	scope, err := s.resolver.Resolve(ctx, identity)
	if err != nil {
		return nil, err
	}
	product, err := s.store.GetProduct(ctx, params.ProductID)
	if err != nil {
		return nil, lookupError(err, domain.ErrProductNotFound, op, "failed to load product")
	}
	if !product.Active {
		return nil, ErrProductInactive
	}
	if !scope.Allows(product.Category) {
		return nil, domain.ErrCategoryNotAllowed
	}
	priced := s.engine.Annotate(product, scope.DiscountFor(product))

	cart, err := s.mutate(ctx, identity.MemberID, op, func(items []domain.CartItem) ([]domain.CartItem, error) {
		i := slices.IndexFunc(items, func(item domain.CartItem) bool {
			return item.Matches(params.ProductID, params.Size)
		})
		if i >= 0 {
			if items[i].Quantity+params.Quantity > domain.MaxLineQuantity {
				return nil, ErrInvalidQuantity
			}
			items[i].Quantity += params.Quantity
			items[i].Name = product.Name
			items[i].Image = product.Image
			items[i].Price = priced.Price
			items[i].DiscountedPrice = priced.DiscountedPrice
			return items, nil
		}
		return append(items, domain.CartItem{
			ProductID:       product.ID,
			Name:            product.Name,
			Price:           priced.Price,
			DiscountedPrice: priced.DiscountedPrice,
			Quantity:        params.Quantity,
			Size:            params.Size,
			Image:           product.Image,
		}), nil
	})
	if err != nil {
		return nil, err
	}

	telemetry.Business.RecordCartItemAdded()
	return cart, nil
}

func (s *cartService) UpdateItem(ctx context.Context, productID uuid.UUID, size string, quantity int) (*domain.Cart, error) {
	identity, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	if quantity < 1 || quantity > domain.MaxLineQuantity {
		return nil, ErrInvalidQuantity
	}

	return s.mutate(ctx, identity.MemberID, "cart.update", func(items []domain.CartItem) ([]domain.CartItem, error) {
		i := slices.IndexFunc(items, func(item domain.CartItem) bool {
			return item.Matches(productID, strings.TrimSpace(size))
		})
		if i < 0 {
			return nil, domain.ErrCartItemNotFound
		}
		items[i].Quantity = quantity
		return items, nil
	})
}

func (s *cartService) RemoveItem(ctx context.Context, productID uuid.UUID, size string) (*domain.Cart, error) {
	identity, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, identity.MemberID, "cart.remove", func(items []domain.CartItem) ([]domain.CartItem, error) {
		n := len(items)
		items = slices.DeleteFunc(items, func(item domain.CartItem) bool {
			return item.Matches(productID, strings.TrimSpace(size))
		})
		if len(items) == n {
			return nil, domain.ErrCartItemNotFound
		}
		return items, nil
	})
}

func (s *cartService) Clear(ctx context.Context) error {
	identity, err := requireIdentity(ctx)
	if err != nil {
		return err
	}
	if err := s.store.ClearCart(ctx, identity.MemberID); err != nil {
		return domain.Internal(err, "cart.clear", "failed to clear cart")
	}
	telemetry.Business.RecordCartCleared()
	return nil
}

// mutate applies fn to the locked cart items and saves the result. Errors
// returned by fn abort the transaction unchanged.
func (s *cartService) mutate(ctx context.Context, memberID uuid.UUID, op string, fn func([]domain.CartItem) ([]domain.CartItem, error)) (*domain.Cart, error) {
	var saved domain.Cart
	err := s.store.ExecTx(ctx, func(q repository.Querier) error {
		if err := q.EnsureCart(ctx, memberID); err != nil {
			return domain.Internal(err, op, "failed to create cart")
		}
		cart, err := q.GetCartForUpdate(ctx, memberID)
		if err != nil {
			return domain.Internal(err, op, "failed to lock cart")
		}

		items, err := fn(cart.Items)
		if err != nil {
			return err
		}

		saved, err = q.SaveCart(ctx, memberID, items)
		if err != nil {
			return domain.Internal(err, op, "failed to save cart")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}
