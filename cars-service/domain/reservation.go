package domain

import (
	"context"
	"time"

	"github.com/ARM-software/golang-utils/utils/commonerrors"
	"github.com/pkg/errors"

	"github.com/voyago/booking-system/shared/models"
)

// TransactionStatus of a rental record. A cancelled rental has no status:
// cancellation deletes the record entirely.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusConfirmed TransactionStatus = "confirmed"
)

// ErrReservationNotFound is returned when no record matches the booking.
// Confirming a booking that a compensation already cancelled surfaces this.
var ErrReservationNotFound = errors.Wrap(commonerrors.ErrNotFound, "car reservation not found")

// Rental is the vehicle and period being booked
type Rental struct {
	Vehicle    string    `json:"vehicle"`
	PickupCity string    `json:"pickup_city"`
	PickupTime time.Time `json:"pickup_time"`
	ReturnTime time.Time `json:"return_time"`
}

// CarReservation is one rental record, keyed by trip and booking id
type CarReservation struct {
	TripID     models.ID
	BookingID  models.ID
	Rental     Rental
	Status     TransactionStatus
	Timestamps models.Timestamps
}

// NewCarReservation creates a pending rental with a fresh booking id
func NewCarReservation(tripID models.ID, rental Rental) *CarReservation {
	return &CarReservation{
		TripID:     tripID,
		BookingID:  models.GenerateUUID(),
		Rental:     rental,
		Status:     StatusPending,
		Timestamps: models.NewTimestamps(),
	}
}

// CarRepository owns the car rental records
type CarRepository interface {
	// Insert writes a new pending rental
	Insert(ctx context.Context, reservation *CarReservation) error
	// Confirm flips the record to confirmed; ErrReservationNotFound if the
	// record does not exist (e.g. already cancelled)
	Confirm(ctx context.Context, tripID, bookingID models.ID) error
	// Delete removes the record; deleting a missing record is a no-op
	Delete(ctx context.Context, tripID, bookingID models.ID) error
	// FindByBookingID returns the record or ErrReservationNotFound
	FindByBookingID(ctx context.Context, tripID, bookingID models.ID) (*CarReservation, error)
}
