package domain

import (
	"context"

	"github.com/voyago/booking-system/shared/models"
)

// FlightsService is the flight reservation collaborator as the orchestrator
// sees it. Reserve and Confirm are durable calls; Cancel is fire-and-forget.
type FlightsService interface {
	Reserve(ctx context.Context, tripID string, details FlightDetails, fault models.Fault) (string, error)
	Confirm(ctx context.Context, tripID, bookingID string, fault models.Fault) error
	Cancel(ctx context.Context, tripID, bookingID string) error
}

// CarsService is the car rental collaborator
type CarsService interface {
	Reserve(ctx context.Context, tripID string, details CarDetails, fault models.Fault) (string, error)
	Confirm(ctx context.Context, tripID, bookingID string, fault models.Fault) error
	Cancel(ctx context.Context, tripID, bookingID string) error
}

// PaymentsService is the payment collaborator. Process charges and confirms
// in one step; the payment id is minted by the orchestrator so a replayed
// execution charges the same id.
type PaymentsService interface {
	Process(ctx context.Context, tripID, paymentID string, amount models.Money, fault models.Fault) error
	Refund(ctx context.Context, tripID, paymentID string) error
}

// Notifier delivers the final outcome message, best-effort
type Notifier interface {
	Publish(ctx context.Context, message string) error
}
