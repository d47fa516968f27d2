package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/homevista/homevista-backend/pkg/logger"
)

type Publisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
	Close() error
}

type NATSBus struct {
	conn *nats.Conn
}

func NewNATSBus(url string) (*NATSBus, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &NATSBus{conn: conn}, nil
}

func (n *NATSBus) Publish(ctx context.Context, subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	logger.DebugContext(ctx, "Publishing event", "subject", subject, "data", string(payload))

	return n.conn.Publish(subject, payload)
}

func (n *NATSBus) Close() error {
	n.conn.Close()
	return nil
}

// NopBus discards all events. Used when no broker is configured; the service
// is fully functional without one.
type NopBus struct{}

func NewNopBus() *NopBus {
	return &NopBus{}
}

func (*NopBus) Publish(ctx context.Context, subject string, data interface{}) error {
	return nil
}

func (*NopBus) Close() error {
	return nil
}

// Event subjects
const (
	PropertyCreated = "property.created"
	PropertyUpdated = "property.updated"
	PropertyDeleted = "property.deleted"

	UserRegistered = "user.registered"
	UserBanned     = "user.banned"
	UserUnbanned   = "user.unbanned"

	ChatMessagePosted = "chat.message.posted"
)

// Event payloads
type PropertyCreatedEvent struct {
	PropertyID int64     `json:"property_id"`
	Title      string    `json:"title"`
	Location   string    `json:"location"`
	OwnerName  string    `json:"owner_name"`
	CreatedAt  time.Time `json:"created_at"`
}

type PropertyUpdatedEvent struct {
	PropertyID int64     `json:"property_id"`
	Changes    []string  `json:"changes"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type PropertyDeletedEvent struct {
	PropertyID int64     `json:"property_id"`
	DeletedAt  time.Time `json:"deleted_at"`
}

type UserRegisteredEvent struct {
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	RegisteredAt time.Time `json:"registered_at"`
}

type UserBanStatusEvent struct {
	Email     string    `json:"email"`
	ChangedAt time.Time `json:"changed_at"`
}

type ChatMessagePostedEvent struct {
	PropertyID  int64     `json:"property_id"`
	SenderEmail string    `json:"sender_email"`
	Sender      string    `json:"sender"`
	PostedAt    time.Time `json:"posted_at"`
}
