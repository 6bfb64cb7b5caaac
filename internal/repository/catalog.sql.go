package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/dukerupert/kestrel/internal/domain"
)

// =============================================================================
// ORGANIZATIONS
// =============================================================================

const organizationColumns = `id, name, domain, allowed_categories, created_at, updated_at`

func scanOrganization(row rowScanner) (domain.Organization, error) {
	var o domain.Organization
	err := row.Scan(&o.ID, &o.Name, &o.Domain, &o.AllowedCategories, &o.CreatedAt, &o.UpdatedAt)
	if o.AllowedCategories == nil {
		o.AllowedCategories = []string{}
	}
	return o, err
}

const createOrganization = `-- name: CreateOrganization :one
INSERT INTO organizations (name, domain, allowed_categories)
VALUES ($1, $2, $3)
RETURNING ` + organizationColumns

type CreateOrganizationParams struct {
	Name              string
	Domain            string
	AllowedCategories []string
}

func (q *Queries) CreateOrganization(ctx context.Context, arg CreateOrganizationParams) (domain.Organization, error) {
	categories := arg.AllowedCategories
	if categories == nil {
		categories = []string{}
	}
	return scanOrganization(q.db.QueryRow(ctx, createOrganization, arg.Name, arg.Domain, categories))
}

const getOrganizationByID = `-- name: GetOrganizationByID :one
SELECT ` + organizationColumns + ` FROM organizations WHERE id = $1`

func (q *Queries) GetOrganizationByID(ctx context.Context, id uuid.UUID) (domain.Organization, error) {
	return scanOrganization(q.db.QueryRow(ctx, getOrganizationByID, id))
}

const getOrganizationByDomain = `-- name: GetOrganizationByDomain :one
SELECT ` + organizationColumns + ` FROM organizations WHERE domain = $1`

func (q *Queries) GetOrganizationByDomain(ctx context.Context, orgDomain string) (domain.Organization, error) {
	return scanOrganization(q.db.QueryRow(ctx, getOrganizationByDomain, orgDomain))
}

const updateOrganizationCategories = `-- name: UpdateOrganizationCategories :one
UPDATE organizations
SET allowed_categories = $2, updated_at = NOW()
WHERE id = $1
RETURNING ` + organizationColumns

func (q *Queries) UpdateOrganizationCategories(ctx context.Context, id uuid.UUID, categories []string) (domain.Organization, error) {
	if categories == nil {
		categories = []string{}
	}
	return scanOrganization(q.db.QueryRow(ctx, updateOrganizationCategories, id, categories))
}

const listOrganizations = `-- name: ListOrganizations :many
SELECT ` + organizationColumns + ` FROM organizations ORDER BY name`

func (q *Queries) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	rows, err := q.db.Query(ctx, listOrganizations)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanOrganization)
}

// =============================================================================
// CATEGORIES
// =============================================================================

const createCategory = `-- name: CreateCategory :one
INSERT INTO categories (slug, name) VALUES ($1, $2)
RETURNING slug, name, created_at`

func scanCategory(row rowScanner) (domain.Category, error) {
	var c domain.Category
	err := row.Scan(&c.Slug, &c.Name, &c.CreatedAt)
	return c, err
}

func (q *Queries) CreateCategory(ctx context.Context, slug, name string) (domain.Category, error) {
	return scanCategory(q.db.QueryRow(ctx, createCategory, slug, name))
}

const ensureCategory = `-- name: EnsureCategory :exec
INSERT INTO categories (slug, name) VALUES ($1, $2)
ON CONFLICT (slug) DO NOTHING`

func (q *Queries) EnsureCategory(ctx context.Context, slug, name string) error {
	_, err := q.db.Exec(ctx, ensureCategory, slug, name)
	return err
}

const getCategory = `-- name: GetCategory :one
SELECT slug, name, created_at FROM categories WHERE slug = $1`

func (q *Queries) GetCategory(ctx context.Context, slug string) (domain.Category, error) {
	return scanCategory(q.db.QueryRow(ctx, getCategory, slug))
}

const listCategories = `-- name: ListCategories :many
SELECT slug, name, created_at FROM categories ORDER BY slug`

func (q *Queries) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := q.db.Query(ctx, listCategories)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanCategory)
}

// =============================================================================
// DISCOUNTS
// =============================================================================

const upsertDiscount = `-- name: UpsertDiscount :one
INSERT INTO discounts (organization_id, product_id, discount_percent)
VALUES ($1, $2, $3)
ON CONFLICT (organization_id, product_id)
DO UPDATE SET discount_percent = EXCLUDED.discount_percent, updated_at = NOW()
RETURNING organization_id, product_id, discount_percent, updated_at`

type UpsertDiscountParams struct {
	OrganizationID uuid.UUID
	ProductID      uuid.UUID
	Percent        decimal.Decimal
}

func scanDiscount(row rowScanner) (domain.Discount, error) {
	var d domain.Discount
	err := row.Scan(&d.OrganizationID, &d.ProductID, &d.Percent, &d.UpdatedAt)
	return d, err
}

func (q *Queries) UpsertDiscount(ctx context.Context, arg UpsertDiscountParams) (domain.Discount, error) {
	return scanDiscount(q.db.QueryRow(ctx, upsertDiscount, arg.OrganizationID, arg.ProductID, arg.Percent))
}

const listDiscountsByOrganization = `-- name: ListDiscountsByOrganization :many
SELECT organization_id, product_id, discount_percent, updated_at
FROM discounts WHERE organization_id = $1
ORDER BY product_id`

func (q *Queries) ListDiscountsByOrganization(ctx context.Context, orgID uuid.UUID) ([]domain.Discount, error) {
	rows, err := q.db.Query(ctx, listDiscountsByOrganization, orgID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanDiscount)
}

// =============================================================================
// SEGMENTS
// =============================================================================

const segmentColumns = `id, name, description, allowed_roles, allowed_categories, organizations,
discount_percentage, is_active, created_at, updated_at`

func scanSegment(row rowScanner) (domain.Segment, error) {
	var (
		s     domain.Segment
		roles []string
		orgs  []pgtype.UUID
	)
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Description,
		&roles,
		&s.AllowedCategories,
		&orgs,
		&s.DiscountPercentage,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return s, err
	}

	s.AllowedRoles = make([]domain.Role, len(roles))
	for i, r := range roles {
		s.AllowedRoles[i] = domain.Role(r)
	}
	if s.AllowedCategories == nil {
		s.AllowedCategories = []string{}
	}
	s.Organizations = fromPgUUIDs(orgs)
	return s, nil
}

// SegmentParams carries the writable segment columns.
type SegmentParams struct {
	Name               string
	Description        string
	AllowedRoles       []domain.Role
	AllowedCategories  []string
	Organizations      []uuid.UUID
	DiscountPercentage decimal.Decimal
	IsActive           bool
}

func (p SegmentParams) args() []any {
	roles := make([]string, len(p.AllowedRoles))
	for i, r := range p.AllowedRoles {
		roles[i] = string(r)
	}
	categories := p.AllowedCategories
	if categories == nil {
		categories = []string{}
	}
	return []any{
		p.Name,
		p.Description,
		roles,
		categories,
		toPgUUIDs(p.Organizations),
		p.DiscountPercentage,
		p.IsActive,
	}
}

const createSegment = `-- name: CreateSegment :one
INSERT INTO segments (name, description, allowed_roles, allowed_categories, organizations,
    discount_percentage, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + segmentColumns

func (q *Queries) CreateSegment(ctx context.Context, arg SegmentParams) (domain.Segment, error) {
	return scanSegment(q.db.QueryRow(ctx, createSegment, arg.args()...))
}

const updateSegment = `-- name: UpdateSegment :one
UPDATE segments
SET name = $2, description = $3, allowed_roles = $4, allowed_categories = $5,
    organizations = $6, discount_percentage = $7, is_active = $8, updated_at = NOW()
WHERE id = $1
RETURNING ` + segmentColumns

func (q *Queries) UpdateSegment(ctx context.Context, id uuid.UUID, arg SegmentParams) (domain.Segment, error) {
	args := append([]any{id}, arg.args()...)
	return scanSegment(q.db.QueryRow(ctx, updateSegment, args...))
}

const getSegment = `-- name: GetSegment :one
SELECT ` + segmentColumns + ` FROM segments WHERE id = $1`

func (q *Queries) GetSegment(ctx context.Context, id uuid.UUID) (domain.Segment, error) {
	return scanSegment(q.db.QueryRow(ctx, getSegment, id))
}

const toggleSegment = `-- name: ToggleSegment :one
UPDATE segments SET is_active = NOT is_active, updated_at = NOW()
WHERE id = $1
RETURNING ` + segmentColumns

func (q *Queries) ToggleSegment(ctx context.Context, id uuid.UUID) (domain.Segment, error) {
	return scanSegment(q.db.QueryRow(ctx, toggleSegment, id))
}

const addSegmentOrganization = `-- name: AddSegmentOrganization :one
UPDATE segments
SET organizations = CASE WHEN $2::uuid = ANY(organizations) THEN organizations
                         ELSE array_append(organizations, $2::uuid) END,
    updated_at = NOW()
WHERE id = $1
RETURNING ` + segmentColumns

func (q *Queries) AddSegmentOrganization(ctx context.Context, id, orgID uuid.UUID) (domain.Segment, error) {
	return scanSegment(q.db.QueryRow(ctx, addSegmentOrganization, id, orgID))
}

const removeSegmentOrganization = `-- name: RemoveSegmentOrganization :one
UPDATE segments
SET organizations = array_remove(organizations, $2::uuid), updated_at = NOW()
WHERE id = $1
RETURNING ` + segmentColumns

func (q *Queries) RemoveSegmentOrganization(ctx context.Context, id, orgID uuid.UUID) (domain.Segment, error) {
	return scanSegment(q.db.QueryRow(ctx, removeSegmentOrganization, id, orgID))
}

const deleteSegment = `-- name: DeleteSegment :execrows
DELETE FROM segments WHERE id = $1`

func (q *Queries) DeleteSegment(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteSegment, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listSegments = `-- name: ListSegments :many
SELECT ` + segmentColumns + ` FROM segments ORDER BY name`

func (q *Queries) ListSegments(ctx context.Context) ([]domain.Segment, error) {
	rows, err := q.db.Query(ctx, listSegments)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanSegment)
}

const listActiveSegments = `-- name: ListActiveSegments :many
SELECT ` + segmentColumns + ` FROM segments WHERE is_active ORDER BY name`

func (q *Queries) ListActiveSegments(ctx context.Context) ([]domain.Segment, error) {
	rows, err := q.db.Query(ctx, listActiveSegments)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanSegment)
}
