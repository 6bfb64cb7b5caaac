package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/dukerupert/kestrel/internal/domain"
	"github.com/dukerupert/kestrel/internal/entitlement"
	"github.com/dukerupert/kestrel/internal/pricing"
	"github.com/dukerupert/kestrel/internal/repository"
)

// stubResolver returns a fixed scope for every identity.
type stubResolver struct {
	categories  []string
	discounts   map[uuid.UUID]decimal.Decimal
	segments    []domain.Segment
	err         error
	invalidated []string
}

func (r *stubResolver) Resolve(ctx context.Context, identity *domain.Identity) (*entitlement.Scope, error) {
	if r.err != nil {
		return nil, r.err
	}
	discounts := r.discounts
	if discounts == nil {
		discounts = map[uuid.UUID]decimal.Decimal{}
	}
	return &entitlement.Scope{
		Identity:   identity,
		Categories: r.categories,
		Pricing: &pricing.Scope{
			Role:      identity.Role,
			Discounts: discounts,
			Segments:  r.segments,
		},
	}, nil
}

func (r *stubResolver) Invalidate(ctx context.Context, orgDomain string) {
	r.invalidated = append(r.invalidated, orgDomain)
}

func memberContext(id uuid.UUID) context.Context {
	return domain.NewContextWithIdentity(context.Background(), &domain.Identity{
		MemberID: id,
		Email:    "asha@tcs.com",
		Role:     domain.RoleEPP,
	})
}

func adminContext() context.Context {
	return domain.NewContextWithIdentity(context.Background(), &domain.Identity{
		MemberID: uuid.New(),
		Email:    "admin@kestrel.shop",
		Role:     domain.RoleAdmin,
	})
}

func validAddress() domain.Address {
	return domain.Address{
		Street:  "12 MG Road",
		City:    "Bengaluru",
		State:   "Karnataka",
		Pincode: "560001",
		Phone:   "9876543210",
	}
}

func testProduct(category string, price string) domain.Product {
	return domain.Product{
		ID:       uuid.New(),
		Name:     "iPhone 15",
		Price:    decimal.RequireFromString(price),
		Category: category,
		Image:    "iphone15.png",
		Active:   true,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

// runTxOn makes store.ExecTx run its callback against store itself.
func runTxOn(store *repository.MockStore) *gomock.Call {
	return store.EXPECT().
		ExecTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(repository.Querier) error) error {
			return fn(store)
		})
}

// orderFromParams echoes CreateOrder input the way the database would.
func orderFromParams(arg repository.CreateOrderParams) domain.Order {
	now := time.Now()
	return domain.Order{
		ID:               uuid.New(),
		MemberID:         arg.MemberID,
		Items:            arg.Items,
		Amount:           arg.Amount,
		Address:          arg.Address,
		PaymentMethod:    arg.PaymentMethod,
		GatewayPaymentID: arg.GatewayPaymentID,
		GatewayOrderID:   arg.GatewayOrderID,
		Status:           arg.Status,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func newStore(t *testing.T) *repository.MockStore {
	t.Helper()
	return repository.NewMockStore(gomock.NewController(t))
}
