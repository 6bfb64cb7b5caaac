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
)

// Unique constraints surfaced as conflicts.
const (
	organizationsDomainKey = "organizations_domain_key"
	segmentsNameKey        = "segments_name_key"
	categoriesPkey         = "categories_pkey"
)

type adminService struct {
	repo     repository.Querier
	resolver Resolver
	logger   *slog.Logger
}

// NewAdminService creates the administrator catalog service. Organization
// writes invalidate the resolver's cached lookup for the domain.
func NewAdminService(repo repository.Querier, resolver Resolver, logger *slog.Logger) domain.AdminService {
	if logger == nil {
		logger = slog.Default()
	}
	return &adminService{repo: repo, resolver: resolver, logger: logger}
}

// =============================================================================
// Organizations
// =============================================================================

func (s *adminService) CreateOrganization(ctx context.Context, params domain.CreateOrganizationParams) (*domain.Organization, error) {
	const op = "admin.organization.create"
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	params.Domain = domain.NormalizeDomain(params.Domain)
	params.Name = strings.TrimSpace(params.Name)
	if err := domain.Validate(op, params); err != nil {
		return nil, err
	}
	categories, err := s.checkCategories(ctx, op, params.AllowedCategories)
	if err != nil {
		return nil, err
	}

	org, err := s.repo.CreateOrganization(ctx, repository.CreateOrganizationParams{
		Name:              params.Name,
		Domain:            params.Domain,
		AllowedCategories: categories,
	})
	if repository.IsUniqueViolation(err, organizationsDomainKey) {
		return nil, domain.ErrDomainTaken
	}
	if err != nil {
		return nil, domain.Internal(err, op, "failed to create organization")
	}

	// A negative lookup may be cached for the domain.
	s.resolver.Invalidate(ctx, org.Domain)
	s.logger.Info("organization created", "organization_id", org.ID, "domain", org.Domain)
	return &org, nil
}

// SetAllowedCategories replaces the organization's category set.
func (s *adminService) SetAllowedCategories(ctx context.Context, orgID uuid.UUID, categories []string) (*domain.Organization, error) {
	const op = "admin.organization.categories"
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	categories, err := s.checkCategories(ctx, op, categories)
	if err != nil {
		return nil, err
	}

	org, err := s.repo.UpdateOrganizationCategories(ctx, orgID, categories)
	if err != nil {
		return nil, lookupError(err, domain.ErrOrganizationNotFound, op, "failed to update organization")
	}

	s.resolver.Invalidate(ctx, org.Domain)
	return &org, nil
}

func (s *adminService) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	orgs, err := s.repo.ListOrganizations(ctx)
	if err != nil {
		return nil, domain.Internal(err, "admin.organization.list", "failed to list organizations")
	}
	return orgs, nil
}

func (s *adminService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	members, err := s.repo.ListMembers(ctx)
	if err != nil {
		return nil, domain.Internal(err, "admin.member.list", "failed to list members")
	}
	return members, nil
}

// checkCategories de-duplicates categories and rejects unknown slugs.
func (s *adminService) checkCategories(ctx context.Context, op string, categories []string) ([]string, error) {
	out := []string{}
	if len(categories) == 0 {
		return out, nil
	}

	known, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to list categories")
	}
	slugs := make(map[string]bool, len(known))
	for _, c := range known {
		slugs[c.Slug] = true
	}

	for _, c := range categories {
		c = strings.TrimSpace(c)
		if !slugs[c] {
			return nil, domain.NewValidationError(op, "allowed_categories", "unknown category: "+c)
		}
		if !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	return out, nil
}

// =============================================================================
// Discounts
// =============================================================================

// SetDiscount upserts the single discount row for (organization, product).
func (s *adminService) SetDiscount(ctx context.Context, params domain.SetDiscountParams) (*domain.Discount, error) {
	const op = "admin.discount.set"
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	if err := domain.Validate(op, params); err != nil {
		return nil, err
	}
	if err := pricing.ValidatePercent(op, "discount_percent", params.Percent); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetOrganizationByID(ctx, params.OrganizationID); err != nil {
		return nil, lookupError(err, domain.ErrOrganizationNotFound, op, "failed to load organization")
	}
	if _, err := s.repo.GetProduct(ctx, params.ProductID); err != nil {
		return nil, lookupError(err, domain.ErrProductNotFound, op, "failed to load product")
	}

	discount, err := s.repo.UpsertDiscount(ctx, repository.UpsertDiscountParams{
		OrganizationID: params.OrganizationID,
		ProductID:      params.ProductID,
		Percent:        params.Percent,
	})
	if err != nil {
		return nil, domain.Internal(err, op, "failed to save discount")
	}
	return &discount, nil
}

func (s *adminService) ListDiscounts(ctx context.Context, orgID uuid.UUID) ([]domain.Discount, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	discounts, err := s.repo.ListDiscountsByOrganization(ctx, orgID)
	if err != nil {
		return nil, domain.Internal(err, "admin.discount.list", "failed to list discounts")
	}
	return discounts, nil
}

// =============================================================================
// Segments
// =============================================================================

func (s *adminService) segmentParams(ctx context.Context, op string, params domain.SegmentParams) (repository.SegmentParams, error) {
	params.Name = strings.TrimSpace(params.Name)
	if err := domain.Validate(op, params); err != nil {
		return repository.SegmentParams{}, err
	}
	if err := pricing.ValidatePercent(op, "discount_percentage", params.DiscountPercentage); err != nil {
		return repository.SegmentParams{}, err
	}
	categories, err := s.checkCategories(ctx, op, params.AllowedCategories)
	if err != nil {
		return repository.SegmentParams{}, err
	}
	return repository.SegmentParams{
		Name:               params.Name,
		Description:        params.Description,
		AllowedRoles:       params.AllowedRoles,
		AllowedCategories:  categories,
		Organizations:      params.Organizations,
		DiscountPercentage: params.DiscountPercentage,
		IsActive:           params.IsActive,
	}, nil
}

func (s *adminService) CreateSegment(ctx context.Context, params domain.SegmentParams) (*domain.Segment, error) {
	const op = "admin.segment.create"
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	arg, err := s.segmentParams(ctx, op, params)
	if err != nil {
		return nil, err
	}

	seg, err := s.repo.CreateSegment(ctx, arg)
	if repository.IsUniqueViolation(err, segmentsNameKey) {
		return nil, domain.ErrSegmentNameTaken
	}
	if err != nil {
		return nil, domain.Internal(err, op, "failed to create segment")
	}
	return &seg, nil
}

func (s *adminService) UpdateSegment(ctx context.Context, id uuid.UUID, params domain.SegmentParams) (*domain.Segment, error) {
	const op = "admin.segment.update"
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	arg, err := s.segmentParams(ctx, op, params)
	if err != nil {
		return nil, err
	}

	seg, err := s.repo.UpdateSegment(ctx, id, arg)
	if repository.IsUniqueViolation(err, segmentsNameKey) {
		return nil, domain.ErrSegmentNameTaken
	}
	if err != nil {
		return nil, lookupError(err, domain.ErrSegmentNotFound, op, "failed to update segment")
	}
	return &seg, nil
}

func (s *adminService) ToggleSegment(ctx context.Context, id uuid.UUID) (*domain.Segment, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	seg, err := s.repo.ToggleSegment(ctx, id)
	if err != nil {
		return nil, lookupError(err, domain.ErrSegmentNotFound, "admin.segment.toggle", "failed to toggle segment")
	}
	return &seg, nil
}

// AddOrganizationToSegment is a no-op when the organization is already a
// member of the segment.
func (s *adminService) AddOrganizationToSegment(ctx context.Context, segmentID, orgID uuid.UUID) (*domain.Segment, error) {
	const op = "admin.segment.add_organization"
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetOrganizationByID(ctx, orgID); err != nil {
		return nil, lookupError(err, domain.ErrOrganizationNotFound, op, "failed to load organization")
	}
	seg, err := s.repo.AddSegmentOrganization(ctx, segmentID, orgID)
	if err != nil {
		return nil, lookupError(err, domain.ErrSegmentNotFound, op, "failed to update segment")
	}
	return &seg, nil
}

func (s *adminService) RemoveOrganizationFromSegment(ctx context.Context, segmentID, orgID uuid.UUID) (*domain.Segment, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	seg, err := s.repo.RemoveSegmentOrganization(ctx, segmentID, orgID)
	if err != nil {
		return nil, lookupError(err, domain.ErrSegmentNotFound, "admin.segment.remove_organization", "failed to update segment")
	}
	return &seg, nil
}

func (s *adminService) DeleteSegment(ctx context.Context, id uuid.UUID) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}
	n, err := s.repo.DeleteSegment(ctx, id)
	if err != nil {
		return domain.Internal(err, "admin.segment.delete", "failed to delete segment")
	}
	if n == 0 {
		return domain.ErrSegmentNotFound
	}
	return nil
}

func (s *adminService) GetSegment(ctx context.Context, id uuid.UUID) (*domain.Segment, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	seg, err := s.repo.GetSegment(ctx, id)
	if err != nil {
		return nil, lookupError(err, domain.ErrSegmentNotFound, "admin.segment.get", "failed to load segment")
	}
	return &seg, nil
}

func (s *adminService) ListSegments(ctx context.Context) ([]domain.Segment, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	segs, err := s.repo.ListSegments(ctx)
	if err != nil {
		return nil, domain.Internal(err, "admin.segment.list", "failed to list segments")
	}
	return segs, nil
}

// =============================================================================
// Categories and products
// =============================================================================

func (s *adminService) CreateCategory(ctx context.Context, params domain.CategoryParams) (*domain.Category, error) {
	const op = "admin.category.create"
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	params.Slug = strings.ToLower(strings.TrimSpace(params.Slug))
	params.Name = strings.TrimSpace(params.Name)
	if err := domain.Validate(op, params); err != nil {
		return nil, err
	}

	category, err := s.repo.CreateCategory(ctx, params.Slug, params.Name)
	if repository.IsUniqueViolation(err, categoriesPkey) {
		return nil, domain.ErrCategoryExists
	}
	if err != nil {
		return nil, domain.Internal(err, op, "failed to create category")
	}
	return &category, nil
}

func (s *adminService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, domain.Internal(err, "admin.category.list", "failed to list categories")
	}
	return categories, nil
}

func (s *adminService) productParams(ctx context.Context, op string, params domain.ProductParams) (repository.ProductParams, error) {
	params.Name = strings.TrimSpace(params.Name)
	if err := domain.Validate(op, params); err != nil {
		return repository.ProductParams{}, err
	}
	if params.Price.IsNegative() {
		return repository.ProductParams{}, domain.NewValidationError(op, "price", "must be greater than or equal to 0")
	}
	if _, err := s.repo.GetCategory(ctx, params.Category); err != nil {
		if repository.IsNotFound(err) {
			return repository.ProductParams{}, domain.NewValidationError(op, "category", "unknown category: "+params.Category)
		}
		return repository.ProductParams{}, domain.Internal(err, op, "failed to load category")
	}

	colors := params.Colors
	if colors == nil {
		colors = []string{}
	}
	return repository.ProductParams{
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
		Category:    params.Category,
		Colors:      colors,
		Image:       params.Image,
		Stock:       params.Stock,
		Bestseller:  params.Bestseller,
		Active:      params.Active,
	}, nil
}

func (s *adminService) CreateProduct(ctx context.Context, params domain.ProductParams) (*domain.Product, error) {
	const op = "admin.product.create"
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	arg, err := s.productParams(ctx, op, params)
	if err != nil {
		return nil, err
	}
	product, err := s.repo.CreateProduct(ctx, arg)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to create product")
	}
	return &product, nil
}

func (s *adminService) UpdateProduct(ctx context.Context, id uuid.UUID, params domain.ProductParams) (*domain.Product, error) {
	const op = "admin.product.update"
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	arg, err := s.productParams(ctx, op, params)
	if err != nil {
		return nil, err
	}
	product, err := s.repo.UpdateProduct(ctx, id, arg)
	if err != nil {
		return nil, lookupError(err, domain.ErrProductNotFound, op, "failed to update product")
	}
	return &product, nil
}

func (s *adminService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, domain.Internal(err, "admin.product.list", "failed to list products")
	}
	return products, nil
}

func (s *adminService) CategoryPerformance(ctx context.Context) ([]domain.CategoryPerformance, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	report, err := s.repo.CategoryPerformance(ctx)
	if err != nil {
		return nil, domain.Internal(err, "admin.report.categories", "failed to build category report")
	}
	return report, nil
}
