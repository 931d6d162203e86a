package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/voyago/booking-system/flights-service/domain"
	"github.com/voyago/booking-system/shared/models"
	"github.com/voyago/booking-system/shared/workflow"
)

// CancelFlightCommand represents the command to cancel a reservation
type CancelFlightCommand struct {
	TripID    string `json:"trip_id"`
	BookingID string `json:"booking_id"`
}

// CancelFlightResponse is intentionally empty
type CancelFlightResponse struct{}

// CancelFlight use case: removes the reservation record. Idempotent: the
// compensation path may race a confirm or be replayed, so cancelling a
// booking that is already gone is a no-op.
type CancelFlight struct {
	repository domain.FlightRepository
}

// NewCancelFlight creates a new CancelFlight use case
func NewCancelFlight(repository domain.FlightRepository) *CancelFlight {
	return &CancelFlight{repository: repository}
}

// Execute executes the cancel flight use case
func (uc *CancelFlight) Execute(ctx context.Context, cmd *CancelFlightCommand) (*CancelFlightResponse, error) {
	if cmd.TripID == "" || cmd.BookingID == "" {
		return nil, workflow.NewTerminalError(errors.New("trip ID and booking ID are required"))
	}

	if err := uc.repository.Delete(ctx, models.ID(cmd.TripID), models.ID(cmd.BookingID)); err != nil {
		return nil, errors.Wrap(err, "failed to delete flight reservation")
	}

	logrus.WithFields(logrus.Fields{
		"trip_id":    cmd.TripID,
		"booking_id": cmd.BookingID,
	}).Info("flight reservation cancelled")

	return &CancelFlightResponse{}, nil
}
