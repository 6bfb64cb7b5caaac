// Package bootstrap handles one-time initialization tasks for the application.
//
// Run is safe to call on every startup: categories and role domains are
// upserted and the administrator is only created when missing.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/dukerupert/kestrel/internal/auth"
	"github.com/dukerupert/kestrel/internal/domain"
	"github.com/dukerupert/kestrel/internal/repository"
)

// Querier is the subset of repository queries bootstrap needs.
type Querier interface {
	EnsureCategory(ctx context.Context, slug, name string) error
	UpsertRoleDomain(ctx context.Context, arg domain.RoleDomain) error
	GetMemberByEmail(ctx context.Context, email string) (domain.Member, error)
	CreateMember(ctx context.Context, arg repository.CreateMemberParams) (domain.Member, error)
}

// DefaultCategories are seeded on first start.
var DefaultCategories = []domain.Category{
	{Slug: "iphones", Name: "iPhones"},
	{Slug: "ipads", Name: "iPads"},
	{Slug: "mac", Name: "Mac"},
	{Slug: "watch", Name: "Watch"},
	{Slug: "airpods", Name: "AirPods"},
	{Slug: "monitors", Name: "Monitors"},
	{Slug: "accessories", Name: "Accessories"},
}

// DefaultRoleDomains map partner email domains to their role.
var DefaultRoleDomains = []domain.RoleDomain{
	{Domain: "gitam.edu", Role: domain.RoleSPP},
	{Domain: "tcs.com", Role: domain.RoleSEPP},
	{Domain: "infosys.com", Role: domain.RoleSEPP},
}

// AdminConfig contains configuration for the initial admin member.
type AdminConfig struct {
	Email    string
	Password string
	Name     string
}

// Validate checks that the admin configuration is valid.
func (c *AdminConfig) Validate() error {
	if c.Email == "" {
		return errors.New("admin email is required")
	}
	if c.Password == "" {
		return errors.New("admin password is required")
	}
	if len(c.Password) < 12 {
		return errors.New("admin password must be at least 12 characters")
	}
	return nil
}

// Config selects what Run seeds. Nil slices use the defaults.
type Config struct {
	Categories  []domain.Category
	RoleDomains []domain.RoleDomain
	Admin       *AdminConfig

	// BcryptCost overrides the password hashing cost, for tests
	BcryptCost int
}

// Run seeds categories, role domains and the administrator.
func Run(ctx context.Context, repo Querier, cfg Config, logger *slog.Logger) error {
	categories := cfg.Categories
	if categories == nil {
		categories = DefaultCategories
	}
	for _, c := range categories {
		if err := repo.EnsureCategory(ctx, c.Slug, c.Name); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", c.Slug, err)
		}
	}

	roleDomains := cfg.RoleDomains
	if roleDomains == nil {
		roleDomains = DefaultRoleDomains
	}
	for _, rd := range roleDomains {
		rd.Domain = domain.NormalizeDomain(rd.Domain)
		if rd.Role == domain.RoleAdmin {
			return fmt.Errorf("role domain %q: admin cannot be granted by domain", rd.Domain)
		}
		if err := repo.UpsertRoleDomain(ctx, rd); err != nil {
			return fmt.Errorf("failed to seed role domain %q: %w", rd.Domain, err)
		}
	}

	logger.Info("bootstrap: catalog seeded",
		"categories", len(categories),
		"role_domains", len(roleDomains),
	)

	return EnsureAdmin(ctx, repo, cfg.Admin, cfg.BcryptCost, logger)
}

// EnsureAdmin creates the admin member if it doesn't exist.
//
// If the member already exists (by email), it returns without error.
// If cfg is nil or has empty Email/Password, it logs a warning and skips.
func EnsureAdmin(ctx context.Context, repo Querier, cfg *AdminConfig, bcryptCost int, logger *slog.Logger) error {
	if cfg == nil || cfg.Email == "" || cfg.Password == "" {
		logger.Warn("bootstrap: skipping admin creation - ADMIN_EMAIL or ADMIN_PASSWORD not set",
			"hint", "Set these environment variables to create an admin member on first startup",
		)
		return nil
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid admin configuration: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(cfg.Email))

	existing, err := repo.GetMemberByEmail(ctx, email)
	if err == nil {
		if existing.Role != domain.RoleAdmin {
			logger.Warn("bootstrap: admin email belongs to a non-admin member", "email", email, "role", existing.Role)
		} else {
			logger.Info("bootstrap: admin member already exists", "email", email)
		}
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to check for existing admin: %w", err)
	}

	if bcryptCost == 0 {
		bcryptCost = auth.DefaultCost
	}
	passwordHash, err := auth.HashPasswordWithCost(cfg.Password, bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	name := cfg.Name
	if name == "" {
		name = "Administrator"
	}

	member, err := repo.CreateMember(ctx, repository.CreateMemberParams{
		Email:        email,
		Name:         name,
		Role:         domain.RoleAdmin,
		PasswordHash: passwordHash,
	})
	if err != nil {
		return fmt.Errorf("failed to create admin member: %w", err)
	}

	logger.Info("bootstrap: admin member created",
		"email", email,
		"member_id", member.ID,
	)
	return nil
}
