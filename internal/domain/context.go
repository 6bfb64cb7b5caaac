// Package domain provides core business types and context helpers for Kestrel.
//
// Context helpers centralize request-scoped data access so every layer reads
// the caller identity the same way.
package domain

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey int

const (
	// identityContextKey stores the authenticated caller in context.
	identityContextKey contextKey = iota

	// requestIDContextKey stores the request ID for tracing.
	requestIDContextKey
)

// Identity is the authenticated caller attached to a request by the
// identity provider. It is trusted as-is by the service layer.
type Identity struct {
	MemberID uuid.UUID
	Email    string
	Role     Role
}

// IsAdmin reports whether the identity carries the administrator role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}

// Domain returns the lower-cased email domain of the identity.
func (i *Identity) Domain() string {
	if i == nil {
		return ""
	}
	return EmailDomain(i.Email)
}

// --- Identity Context Helpers ---

// NewContextWithIdentity returns a new context with the identity attached.
func NewContextWithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

// IdentityFromContext retrieves the identity from context.
// Returns nil if no identity is present.
func IdentityFromContext(ctx context.Context) *Identity {
	identity, _ := ctx.Value(identityContextKey).(*Identity)
	return identity
}

// MemberIDFromContext retrieves the member ID from context.
// Returns uuid.Nil if no identity is present.
func MemberIDFromContext(ctx context.Context) uuid.UUID {
	if identity := IdentityFromContext(ctx); identity != nil {
		return identity.MemberID
	}
	return uuid.Nil
}

// --- Request ID Context Helpers ---

// NewContextWithRequestID returns a new context with the request ID attached.
func NewContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDContextKey, requestID)
}

// RequestIDFromContext retrieves the request ID from context.
// Returns empty string if no request ID is present.
func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDContextKey).(string)
	return requestID
}

// IsAuthenticated returns true if there is an identity in context.
func IsAuthenticated(ctx context.Context) bool {
	return IdentityFromContext(ctx) != nil
}
