package domain

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestIdentityContext(t *testing.T) {
	t.Run("IdentityFromContext returns nil when no identity", func(t *testing.T) {
		ctx := context.Background()
		if identity := IdentityFromContext(ctx); identity != nil {
			t.Errorf("expected nil identity, got %+v", identity)
		}
	})

	t.Run("IdentityFromContext returns identity when set", func(t *testing.T) {
		expected := &Identity{
			MemberID: uuid.New(),
			Email:    "asha@TCS.com",
			Role:     RoleSEPP,
		}
		ctx := NewContextWithIdentity(context.Background(), expected)

		identity := IdentityFromContext(ctx)
		if identity == nil {
			t.Fatal("expected identity, got nil")
		}
		if identity.MemberID != expected.MemberID {
			t.Errorf("expected MemberID %v, got %v", expected.MemberID, identity.MemberID)
		}
		if identity.Domain() != "tcs.com" {
			t.Errorf("expected domain %q, got %q", "tcs.com", identity.Domain())
		}
	})

	t.Run("MemberIDFromContext returns uuid.Nil when no identity", func(t *testing.T) {
		if id := MemberIDFromContext(context.Background()); id != uuid.Nil {
			t.Errorf("expected uuid.Nil, got %v", id)
		}
	})

	t.Run("IsAuthenticated", func(t *testing.T) {
		ctx := context.Background()
		if IsAuthenticated(ctx) {
			t.Error("expected unauthenticated context")
		}
		ctx = NewContextWithIdentity(ctx, &Identity{MemberID: uuid.New()})
		if !IsAuthenticated(ctx) {
			t.Error("expected authenticated context")
		}
	})
}

func TestIdentity_IsAdmin(t *testing.T) {
	var nilIdentity *Identity
	if nilIdentity.IsAdmin() {
		t.Error("nil identity must not be admin")
	}
	if (&Identity{Role: RoleEPP}).IsAdmin() {
		t.Error("EPP member must not be admin")
	}
	if !(&Identity{Role: RoleAdmin}).IsAdmin() {
		t.Error("admin role must be admin")
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	if got := RequestIDFromContext(ctx); got != "" {
		t.Errorf("expected empty request ID, got %q", got)
	}

	ctx = NewContextWithRequestID(ctx, "req-123")
	if got := RequestIDFromContext(ctx); got != "req-123" {
		t.Errorf("expected %q, got %q", "req-123", got)
	}
}
