package service

import (
	"context"

	"github.com/dukerupert/kestrel/internal/domain"
	"github.com/dukerupert/kestrel/internal/entitlement"
	"github.com/dukerupert/kestrel/internal/repository"
)

// Validation errors - use domain.EINVALID
var (
	ErrInvalidQuantity = domain.Errorf(domain.EINVALID, "", "Quantity must be between 1 and %d", domain.MaxLineQuantity)
	ErrInvalidAmount   = domain.Errorf(domain.EINVALID, "", "Amount must be greater than 0")
	ErrProductInactive = domain.Errorf(domain.EINVALID, "", "Product is no longer available")
)

// Resolver is the entitlement lookup the services depend on.
// *entitlement.Resolver implements it.
type Resolver interface {
	Resolve(ctx context.Context, identity *domain.Identity) (*entitlement.Scope, error)
	Invalidate(ctx context.Context, orgDomain string)
}

var _ Resolver = (*entitlement.Resolver)(nil)

// requireIdentity returns the caller in context or ErrAuthRequired.
func requireIdentity(ctx context.Context) (*domain.Identity, error) {
	identity := domain.IdentityFromContext(ctx)
	if identity == nil {
		return nil, domain.ErrAuthRequired
	}
	return identity, nil
}

// requireAdmin returns the caller in context when it is an administrator.
func requireAdmin(ctx context.Context) (*domain.Identity, error) {
	identity, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	if !identity.IsAdmin() {
		return nil, domain.ErrAdminRequired
	}
	return identity, nil
}

// lookupError maps a single-row lookup failure onto notFound, wrapping any
// other failure as an internal error for op.
func lookupError(err error, notFound error, op, message string) error {
	if repository.IsNotFound(err) {
		return notFound
	}
	return domain.Internal(err, op, message)
}
