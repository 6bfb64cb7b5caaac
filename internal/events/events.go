// Package events publishes order lifecycle notifications to NATS.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/dukerupert/kestrel/internal/domain"
)

// Subjects
const (
	SubjectOrderCreated       = "order.created"
	SubjectOrderStatusChanged = "order.status_changed"
)

// OrderEvent is the payload of every order subject.
type OrderEvent struct {
	OrderID   uuid.UUID          `json:"order_id"`
	MemberID  uuid.UUID          `json:"member_id"`
	From      domain.OrderStatus `json:"from,omitempty"`
	To        domain.OrderStatus `json:"to"`
	Amount    string             `json:"amount"`
	Reason    string             `json:"reason,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
}

// NewOrderEvent builds the event for order moving from -> order.Status.
func NewOrderEvent(order *domain.Order, from domain.OrderStatus, reason string) OrderEvent {
	return OrderEvent{
		OrderID:   order.ID,
		MemberID:  order.MemberID,
		From:      from,
		To:        order.Status,
		Amount:    order.Amount.StringFixed(2),
		Reason:    reason,
		Timestamp: time.Now().UTC(),
	}
}

//go:generate mockgen -source=events.go -destination=mock_publisher.go -package=events

// Publisher delivers order events. Delivery is best effort; callers log
// failures and carry on because the database row is the source of truth.
type Publisher interface {
	Publish(ctx context.Context, subject string, event OrderEvent) error
	Close() error
}

// NATSPublisher publishes JSON-encoded events on a NATS connection.
type NATSPublisher struct {
	conn   *nats.Conn
	logger *slog.Logger
}

var _ Publisher = (*NATSPublisher)(nil)

// Connect dials url and returns a publisher.
func Connect(url string, logger *slog.Logger) (*NATSPublisher, error) {
	conn, err := nats.Connect(url,
		nats.Name("kestrel"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("nats reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}
	return &NATSPublisher{conn: conn, logger: logger}, nil
}

// Publish encodes event and publishes it on subject.
func (p *NATSPublisher) Publish(ctx context.Context, subject string, event OrderEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode order event: %w", err)
	}

	msg := nats.NewMsg(subject)
	msg.Data = data
	if requestID := domain.RequestIDFromContext(ctx); requestID != "" {
		msg.Header.Set("X-Request-ID", requestID)
	}
	if err := p.conn.PublishMsg(msg); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

// Close drains pending messages and closes the connection.
func (p *NATSPublisher) Close() error {
	return p.conn.Drain()
}

// NopPublisher discards events. Used when NATS is not configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, OrderEvent) error { return nil }
func (NopPublisher) Close() error                                      { return nil }
