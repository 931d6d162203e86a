package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/voyago/booking-system/flights-service/domain"
	"github.com/voyago/booking-system/shared/models"
	"github.com/voyago/booking-system/shared/workflow"
)

// ConfirmFlightCommand represents the command to confirm a reservation
type ConfirmFlightCommand struct {
	TripID    string       `json:"trip_id"`
	BookingID string       `json:"booking_id"`
	Fault     models.Fault `json:"fault,omitempty"`
}

// ConfirmFlightResponse echoes the confirmed booking id
type ConfirmFlightResponse struct {
	BookingID string `json:"booking_id"`
}

// ConfirmFlight use case: flips the reservation to confirmed. Confirming a
// booking that was already cancelled fails terminally with not-found, which
// sends the saga down the compensation path.
type ConfirmFlight struct {
	repository domain.FlightRepository
}

// NewConfirmFlight creates a new ConfirmFlight use case
func NewConfirmFlight(repository domain.FlightRepository) *ConfirmFlight {
	return &ConfirmFlight{repository: repository}
}

// Execute executes the confirm flight use case
func (uc *ConfirmFlight) Execute(ctx context.Context, cmd *ConfirmFlightCommand) (*ConfirmFlightResponse, error) {
	if cmd.TripID == "" || cmd.BookingID == "" {
		return nil, workflow.NewTerminalError(errors.New("trip ID and booking ID are required"))
	}

	if cmd.Fault.Is(models.FaultFlightConfirmation) {
		return nil, workflow.NewTerminalErrorf("failed to confirm the flight")
	}

	err := uc.repository.Confirm(ctx, models.ID(cmd.TripID), models.ID(cmd.BookingID))
	if err != nil {
		if errors.Is(err, domain.ErrReservationNotFound) {
			return nil, workflow.NewTerminalError(err)
		}
		return nil, errors.Wrap(err, "failed to confirm flight reservation")
	}

	logrus.WithFields(logrus.Fields{
		"trip_id":    cmd.TripID,
		"booking_id": cmd.BookingID,
	}).Info("flight confirmed")

	return &ConfirmFlightResponse{BookingID: cmd.BookingID}, nil
}
