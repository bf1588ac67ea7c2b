package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event types carried on the booking topic.
const (
	TypeBookingCreated       = "booking.created"
	TypeBookingStatusChanged = "booking.status_changed"
)

const eventSource = "fleet-rental"

// Envelope is the wire format for booking events: a small cloud-event style
// header with the typed payload nested under data.
type Envelope struct {
	ID     uuid.UUID `json:"id"`
	Type   string    `json:"type"`
	Source string    `json:"source"`
	Time   time.Time `json:"time"`
	Data   any       `json:"data"`
}

type BookingCreatedEvent struct {
	BookingID    uuid.UUID `json:"booking_id"`
	VehicleID    uuid.UUID `json:"vehicle_id"`
	CustomerName string    `json:"customer_name"`
	PickupAt     time.Time `json:"pickup_at"`
	DropoffAt    time.Time `json:"dropoff_at"`
	TotalCents   int64     `json:"total_cents"`
	Currency     string    `json:"currency"`
	Status       string    `json:"status"`
}

type BookingStatusChangedEvent struct {
	BookingID uuid.UUID `json:"booking_id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
}

// Publisher is the narrow notification boundary: the core hands finished
// booking facts to it, and whatever consumes the topic owns actual delivery
// (email, chat, anything).
type Publisher interface {
	Publish(ctx context.Context, eventType, key string, data any) error
	Close() error
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (p *NoopPublisher) Publish(_ context.Context, _, _ string, _ any) error {
	return nil
}

func (p *NoopPublisher) Close() error {
	return nil
}
