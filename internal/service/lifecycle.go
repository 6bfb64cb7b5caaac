package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dukerupert/kestrel/internal/domain"
	"github.com/dukerupert/kestrel/internal/events"
	"github.com/dukerupert/kestrel/internal/repository"
	"github.com/dukerupert/kestrel/internal/telemetry"
)

type lifecycleService struct {
	store     repository.Store
	publisher events.Publisher
	logger    *slog.Logger
}

// NewOrderLifecycleService creates the order lifecycle manager. Accepted
// transitions are audited in order_status_events and published on
// order.status_changed.
func NewOrderLifecycleService(store repository.Store, publisher events.Publisher, logger *slog.Logger) domain.OrderLifecycleService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &lifecycleService{store: store, publisher: publisher, logger: logger}
}

// GetOrder returns ErrNotOrderOwner unless the caller owns the order or is
// an administrator.
func (s *lifecycleService) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	identity, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	order, err := s.store.GetOrder(ctx, id)
	if err != nil {
		return nil, lookupError(err, domain.ErrOrderNotFound, "order.get", "failed to load order")
	}
	if order.MemberID != identity.MemberID && !identity.IsAdmin() {
		return nil, domain.ErrNotOrderOwner
	}
	return &order, nil
}

// ListOrdersForMember lets members list only their own orders.
func (s *lifecycleService) ListOrdersForMember(ctx context.Context, memberID uuid.UUID) ([]domain.Order, error) {
	identity, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	if memberID != identity.MemberID && !identity.IsAdmin() {
		return nil, domain.ErrNotOrderOwner
	}

	orders, err := s.store.ListOrdersByMember(ctx, memberID)
	if err != nil {
		return nil, domain.Internal(err, "order.list", "failed to list orders")
	}
	return orders, nil
}

func (s *lifecycleService) ListAllOrders(ctx context.Context) ([]domain.Order, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	orders, err := s.store.ListOrders(ctx)
	if err != nil {
		return nil, domain.Internal(err, "order.list_all", "failed to list orders")
	}
	return orders, nil
}

// UpdateStatus is rejected for non-administrators before the payload is
// looked at.
func (s *lifecycleService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*domain.Order, error) {
	identity, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	next, err := domain.ParseOrderStatus(status)
	if err != nil {
		return nil, err
	}

	return s.transition(ctx, "order.status", id, next, &identity.MemberID, "")
}

// CancelByGatewayOrder cancels the order paid through gatewayOrderID on
// behalf of the gateway. No actor is recorded.
func (s *lifecycleService) CancelByGatewayOrder(ctx context.Context, gatewayOrderID, reason string) (*domain.Order, error) {
	const op = "order.cancel"

	order, err := s.store.GetOrderByGatewayOrderID(ctx, gatewayOrderID)
	if err != nil {
		return nil, lookupError(err, domain.ErrOrderNotFound, op, "failed to load order")
	}
	return s.transition(ctx, op, order.ID, domain.OrderStatusCancelled, nil, reason)
}

func (s *lifecycleService) ListStatusEvents(ctx context.Context, id uuid.UUID) ([]domain.OrderStatusEvent, error) {
	if _, err := s.GetOrder(ctx, id); err != nil {
		return nil, err
	}
	evts, err := s.store.ListOrderStatusEvents(ctx, id)
	if err != nil {
		return nil, domain.Internal(err, "order.events", "failed to list status events")
	}
	return evts, nil
}

// transition moves the locked order to next when the lifecycle table allows
// it and writes the audit row in the same transaction.
func (s *lifecycleService) transition(ctx context.Context, op string, id uuid.UUID, next domain.OrderStatus, actorID *uuid.UUID, reason string) (*domain.Order, error) {
	var (
		updated domain.Order
		from    domain.OrderStatus
	)
	err := s.store.ExecTx(ctx, func(q repository.Querier) error {
		current, err := q.GetOrderForUpdate(ctx, id)
		if err != nil {
			return lookupError(err, domain.ErrOrderNotFound, op, "failed to load order")
		}
		from = current.Status
		if !from.CanTransitionTo(next) {
			return domain.ErrIllegalTransition
		}

		updated, err = q.UpdateOrderStatus(ctx, id, next)
		if err != nil {
			return domain.Internal(err, op, "failed to update order status")
		}
		if _, err := q.CreateOrderStatusEvent(ctx, repository.CreateOrderStatusEventParams{
			OrderID: id,
			From:    from,
			To:      next,
			ActorID: actorID,
			Reason:  reason,
		}); err != nil {
			return domain.Internal(err, op, "failed to record status change")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	telemetry.Business.RecordStatusTransition(string(from), string(next))
	publishEvent(ctx, s.publisher, s.logger, events.SubjectOrderStatusChanged, events.NewOrderEvent(&updated, from, reason))

	s.logger.Info("order status changed", "order_id", id, "from", from, "to", next)
	return &updated, nil
}
