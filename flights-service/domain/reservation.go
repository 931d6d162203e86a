package domain

import (
	"context"
	"time"

	"github.com/ARM-software/golang-utils/utils/commonerrors"
	"github.com/pkg/errors"

	"github.com/voyago/booking-system/shared/models"
)

// TransactionStatus of a reservation record. A cancelled reservation has no
// status: cancellation deletes the record entirely.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusConfirmed TransactionStatus = "confirmed"
)

// ErrReservationNotFound is returned when no record matches the booking.
// Confirming a booking that a compensation already cancelled surfaces this.
var ErrReservationNotFound = errors.Wrap(commonerrors.ErrNotFound, "flight reservation not found")

// Itinerary is the flight leg being booked
type Itinerary struct {
	DepartCity string    `json:"depart_city"`
	DepartTime time.Time `json:"depart_time"`
	ArriveCity string    `json:"arrive_city"`
	ArriveTime time.Time `json:"arrive_time"`
}

// FlightReservation is one reservation record, keyed by trip and booking id
type FlightReservation struct {
	TripID     models.ID
	BookingID  models.ID
	Itinerary  Itinerary
	Status     TransactionStatus
	Timestamps models.Timestamps
}

// NewFlightReservation creates a pending reservation with a fresh booking id
func NewFlightReservation(tripID models.ID, itinerary Itinerary) *FlightReservation {
	return &FlightReservation{
		TripID:     tripID,
		BookingID:  models.GenerateUUID(),
		Itinerary:  itinerary,
		Status:     StatusPending,
		Timestamps: models.NewTimestamps(),
	}
}

// FlightRepository owns the flight reservation records
type FlightRepository interface {
	// Insert writes a new pending reservation
	Insert(ctx context.Context, reservation *FlightReservation) error
	// Confirm flips the record to confirmed; ErrReservationNotFound if the
	// record does not exist (e.g. already cancelled)
	Confirm(ctx context.Context, tripID, bookingID models.ID) error
	// Delete removes the record; deleting a missing record is a no-op
	Delete(ctx context.Context, tripID, bookingID models.ID) error
	// FindByBookingID returns the record or ErrReservationNotFound
	FindByBookingID(ctx context.Context, tripID, bookingID models.ID) (*FlightReservation, error)
}
