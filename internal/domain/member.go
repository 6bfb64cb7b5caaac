package domain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// MEMBER DOMAIN TYPES
// =============================================================================

// Role is the access tier of a member. It is fixed at registration.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleSEPP  Role = "SEPP"
	RoleEPP   Role = "EPP"
	RoleSPP   Role = "SPP"
	RoleUser  Role = "user"
)

// DefaultRole is assigned when no role domain matches the member's email.
const DefaultRole = RoleEPP

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSEPP, RoleEPP, RoleSPP, RoleUser:
		return true
	}
	return false
}

// Member is an authenticated end user of the storefront.
type Member struct {
	ID             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	Name           string     `json:"name"`
	Role           Role       `json:"role"`
	OrganizationID *uuid.UUID `json:"organization_id,omitempty"`
	PasswordHash   string     `json:"-"`
	CreatedAt      time.Time  `json:"created_at"`
}

// Identity returns the request identity for the member.
func (m *Member) Identity() *Identity {
	return &Identity{MemberID: m.ID, Email: m.Email, Role: m.Role}
}

// RoleDomain maps an exact email domain to the role its members receive.
type RoleDomain struct {
	Domain string `json:"domain"`
	Role   Role   `json:"role"`
}

// EmailDomain returns the lower-cased part of email after the last "@".
// Returns an empty string when email has no domain part.
func EmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(email[at+1:]))
}

// NormalizeDomain trims and lower-cases a domain for exact matching.
func NormalizeDomain(domain string) string {
	return strings.ToLower(strings.TrimSpace(domain))
}

// Member-related domain errors.
var (
	ErrMemberNotFound     = &Error{Code: ENOTFOUND, Message: "Member not found"}
	ErrEmailTaken         = &Error{Code: ECONFLICT, Message: "Email is already registered"}
	ErrInvalidCredentials = &Error{Code: EUNAUTHORIZED, Message: "Invalid email or password"}
	ErrAuthRequired       = &Error{Code: EUNAUTHORIZED, Message: "Authentication required"}
)

// RegisterParams contains the fields needed to register a member.
type RegisterParams struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,max=200"`
}

// MemberService registers members and verifies their credentials.
type MemberService interface {
	// Register creates a member. The role is derived from the email domain
	// through the role table and the organization is linked by exact domain.
	Register(ctx context.Context, params RegisterParams) (*Member, error)

	// Authenticate verifies credentials and returns the member.
	Authenticate(ctx context.Context, email, password string) (*Member, error)

	// GetMember returns a member by ID.
	GetMember(ctx context.Context, id uuid.UUID) (*Member, error)
}
