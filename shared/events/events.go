package events

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/voyago/booking-system/shared/models"
)

var (
	ErrInvalidPayload  = errors.New("invalid payload")
	ErrInvalidReceiver = errors.New("receiver should be a pointer")
)

// Booking lifecycle event types
const (
	BookingReservationRequestedEvent = "booking.reservation.requested"
	BookingReservationSucceededEvent = "booking.reservation.succeeded"
	BookingReservationFailedEvent    = "booking.reservation.failed"
)

// Metadata represents event metadata
type Metadata map[string]string

func (m Metadata) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m Metadata) Has(key string) bool {
	_, ok := m[key]
	return ok
}

func (m Metadata) Clone() Metadata {
	clone := Metadata{}
	for k, v := range m {
		clone[k] = v
	}
	return clone
}

// Event represents a domain event
type Event struct {
	ID            models.ID   `json:"id"`
	AggregateID   models.ID   `json:"aggregate_id"`
	EventType     string      `json:"event_type"`
	Version       string      `json:"version"`
	Data          interface{} `json:"data"`
	Metadata      Metadata    `json:"metadata"`
	Timestamp     time.Time   `json:"timestamp"`
	CorrelationID models.ID   `json:"correlation_id"`
}

// Publisher publishes events
type Publisher interface {
	Publish(ctx context.Context, events ...*Event) error
}

// EventHandler handles domain events
type EventHandler interface {
	Handle(ctx context.Context, event *Event) error
}

// NewEvent creates a new domain event
func NewEvent(aggregateID models.ID, eventType string, data interface{}) *Event {
	return &Event{
		ID:          models.GenerateUUID(),
		AggregateID: aggregateID,
		EventType:   eventType,
		Version:     "1.0",
		Data:        data,
		Metadata:    make(Metadata),
		Timestamp:   time.Now(),
	}
}

// WithCorrelationID sets correlation ID
func (e *Event) WithCorrelationID(correlationID models.ID) *Event {
	e.CorrelationID = correlationID
	return e
}

// WithMetadata adds metadata
func (e *Event) WithMetadata(key string, value string) *Event {
	if e.Metadata == nil {
		e.Metadata = make(Metadata)
	}
	e.Metadata[key] = value
	return e
}

// ToJSON converts event to JSON
func (e *Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// MarshalPayload marshals the event data
func (e *Event) MarshalPayload() (json.RawMessage, error) {
	if e.Data == nil {
		return json.RawMessage("null"), nil
	}
	return json.Marshal(e.Data)
}

// DecodeData unmarshals the event data into receiver, which must be a
// pointer. Events decoded off the wire carry Data as generic JSON; this
// round-trips it into a typed struct.
func (e *Event) DecodeData(receiver interface{}) error {
	if receiver == nil {
		return ErrInvalidReceiver
	}
	payload, err := e.MarshalPayload()
	if err != nil {
		return ErrInvalidPayload
	}
	return json.Unmarshal(payload, receiver)
}
