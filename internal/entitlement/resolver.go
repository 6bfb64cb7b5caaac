// Package entitlement resolves which categories a member may see and which
// discounts apply to them, from their email domain and segment memberships.
package entitlement

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/dukerupert/kestrel/internal/domain"
	"github.com/dukerupert/kestrel/internal/pricing"
)

// Querier is the subset of the repository the resolver reads from.
type Querier interface {
	GetOrganizationByDomain(ctx context.Context, domain string) (domain.Organization, error)
	ListDiscountsByOrganization(ctx context.Context, orgID uuid.UUID) ([]domain.Discount, error)
	ListActiveSegments(ctx context.Context) ([]domain.Segment, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// OrganizationCache caches organization lookups by domain. A cached nil
// organization records that no organization uses the domain.
type OrganizationCache interface {
	GetOrganization(ctx context.Context, domain string) (*domain.Organization, error)
	SetOrganization(ctx context.Context, domain string, org *domain.Organization) error
	InvalidateOrganization(ctx context.Context, domain string) error
}

// ErrCacheMiss is returned by OrganizationCache implementations when the
// domain has no cached entry.
var ErrCacheMiss = errors.New("entitlement: cache miss")

// Resolver computes entitlement scopes. Reads are side-effect free apart
// from cache population.
type Resolver struct {
	repo   Querier
	cache  OrganizationCache
	logger *slog.Logger
}

// NewResolver creates a resolver. cache may be nil.
func NewResolver(repo Querier, cache OrganizationCache, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{repo: repo, cache: cache, logger: logger}
}

// Scope is the resolved entitlement of one member.
type Scope struct {
	Identity     *domain.Identity
	Organization *domain.Organization

	// Categories is the allowed category set. Administrators receive every
	// catalog category; members with no organization receive none.
	Categories []string

	Pricing *pricing.Scope
}

// Allows reports whether category is in the scope's allowed set.
func (s *Scope) Allows(category string) bool {
	return s != nil && slices.Contains(s.Categories, category)
}

// DiscountFor resolves the discount of product within the scope.
func (s *Scope) DiscountFor(product domain.Product) decimal.Decimal {
	if s == nil {
		return decimal.Zero
	}
	return s.Pricing.DiscountFor(product)
}

// OrganizationFor looks up the organization whose domain equals the
// identity's email domain exactly. Returns nil when none matches.
func (r *Resolver) OrganizationFor(ctx context.Context, identity *domain.Identity) (*domain.Organization, error) {
	emailDomain := identity.Domain()
	if emailDomain == "" {
		return nil, nil
	}

	if r.cache != nil {
		org, err := r.cache.GetOrganization(ctx, emailDomain)
		if err == nil {
			return org, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			r.logger.Warn("entitlement: organization cache read failed", "domain", emailDomain, "error", err)
		}
	}

	var found *domain.Organization
	org, err := r.repo.GetOrganizationByDomain(ctx, emailDomain)
	switch {
	case err == nil:
		found = &org
	case errors.Is(err, pgx.ErrNoRows):
		found = nil
	default:
		return nil, domain.Internal(err, "entitlement.organization", "failed to look up organization")
	}

	if r.cache != nil {
		if err := r.cache.SetOrganization(ctx, emailDomain, found); err != nil {
			r.logger.Warn("entitlement: organization cache write failed", "domain", emailDomain, "error", err)
		}
	}
	return found, nil
}

// Resolve builds the scope of identity. A nil identity is rejected.
func (r *Resolver) Resolve(ctx context.Context, identity *domain.Identity) (*Scope, error) {
	if identity == nil {
		return nil, domain.ErrAuthRequired
	}

	org, err := r.OrganizationFor(ctx, identity)
	if err != nil {
		return nil, err
	}

	scope := &Scope{
		Identity:     identity,
		Organization: org,
		Categories:   []string{},
		Pricing:      &pricing.Scope{Role: identity.Role, Discounts: map[uuid.UUID]decimal.Decimal{}},
	}

	switch {
	case identity.IsAdmin():
		categories, err := r.repo.ListCategories(ctx)
		if err != nil {
			return nil, domain.Internal(err, "entitlement.resolve", "failed to list categories")
		}
		for _, c := range categories {
			scope.Categories = append(scope.Categories, c.Slug)
		}
	case org != nil:
		scope.Categories = slices.Clone(org.AllowedCategories)
	}

	if org != nil {
		scope.Pricing.OrganizationID = &org.ID
		discounts, err := r.repo.ListDiscountsByOrganization(ctx, org.ID)
		if err != nil {
			return nil, domain.Internal(err, "entitlement.resolve", "failed to list discounts")
		}
		for _, d := range discounts {
			scope.Pricing.Discounts[d.ProductID] = d.Percent
		}
	}

	segments, err := r.repo.ListActiveSegments(ctx)
	if err != nil {
		return nil, domain.Internal(err, "entitlement.resolve", "failed to list segments")
	}
	scope.Pricing.Segments = segments

	return scope, nil
}

// AllowedCategories returns the allowed category set of identity.
func (r *Resolver) AllowedCategories(ctx context.Context, identity *domain.Identity) ([]string, error) {
	scope, err := r.Resolve(ctx, identity)
	if err != nil {
		return nil, err
	}
	return scope.Categories, nil
}

// IsCategoryAllowed reports whether identity may see category.
func (r *Resolver) IsCategoryAllowed(ctx context.Context, identity *domain.Identity, category string) (bool, error) {
	scope, err := r.Resolve(ctx, identity)
	if err != nil {
		return false, err
	}
	return scope.Allows(category), nil
}

// Invalidate drops the cached organization for domain after a write.
func (r *Resolver) Invalidate(ctx context.Context, orgDomain string) {
	if r.cache == nil {
		return
	}
	if err := r.cache.InvalidateOrganization(ctx, domain.NormalizeDomain(orgDomain)); err != nil {
		r.logger.Warn("entitlement: organization cache invalidation failed", "domain", orgDomain, "error", err)
	}
}
