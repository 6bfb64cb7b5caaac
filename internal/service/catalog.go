package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dukerupert/kestrel/internal/domain"
	"github.com/dukerupert/kestrel/internal/entitlement"
	"github.com/dukerupert/kestrel/internal/pricing"
	"github.com/dukerupert/kestrel/internal/repository"
)

type catalogService struct {
	repo     repository.Querier
	resolver Resolver
	engine   *pricing.Engine
}

// NewCatalogService creates a CatalogService that filters products by the
// caller's entitlement and annotates them with resolved pricing.
func NewCatalogService(repo repository.Querier, resolver Resolver, engine *pricing.Engine) domain.CatalogService {
	return &catalogService{repo: repo, resolver: resolver, engine: engine}
}

func (s *catalogService) scope(ctx context.Context) (*entitlement.Scope, error) {
	identity, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	return s.resolver.Resolve(ctx, identity)
}

// AllowedCategories returns the caller's category set. Members whose
// domain matches no organization get an empty set.
func (s *catalogService) AllowedCategories(ctx context.Context) ([]string, error) {
	scope, err := s.scope(ctx)
	if err != nil {
		return nil, err
	}
	return scope.Categories, nil
}

func (s *catalogService) ListVisibleProducts(ctx context.Context) ([]domain.PricedProduct, error) {
	scope, err := s.scope(ctx)
	if err != nil {
		return nil, err
	}
	return s.listInCategories(ctx, scope, scope.Categories)
}

func (s *catalogService) ListProductsByCategory(ctx context.Context, category string) ([]domain.PricedProduct, error) {
	scope, err := s.scope(ctx)
	if err != nil {
		return nil, err
	}
	if !scope.Allows(category) {
		return nil, domain.ErrCategoryNotAllowed
	}
	return s.listInCategories(ctx, scope, []string{category})
}

// GetProduct hides inactive products from everyone but administrators.
func (s *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*domain.PricedProduct, error) {
	scope, err := s.scope(ctx)
	if err != nil {
		return nil, err
	}

	product, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, lookupError(err, domain.ErrProductNotFound, "catalog.product", "failed to load product")
	}
	if !product.Active && !scope.Identity.IsAdmin() {
		return nil, domain.ErrProductNotFound
	}
	if !scope.Allows(product.Category) {
		return nil, domain.ErrCategoryNotAllowed
	}

	priced := s.engine.Annotate(product, scope.DiscountFor(product))
	return &priced, nil
}

func (s *catalogService) listInCategories(ctx context.Context, scope *entitlement.Scope, categories []string) ([]domain.PricedProduct, error) {
	priced := []domain.PricedProduct{}
	if len(categories) == 0 {
		return priced, nil
	}

	products, err := s.repo.ListActiveProductsInCategories(ctx, categories)
	if err != nil {
		return nil, domain.Internal(err, "catalog.list", "failed to list products")
	}
	for _, p := range products {
		priced = append(priced, s.engine.Annotate(p, scope.DiscountFor(p)))
	}
	return priced, nil
}
