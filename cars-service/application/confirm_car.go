package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/voyago/booking-system/cars-service/domain"
	"github.com/voyago/booking-system/shared/models"
	"github.com/voyago/booking-system/shared/workflow"
)

// ConfirmCarCommand represents the command to confirm a rental
type ConfirmCarCommand struct {
	TripID    string       `json:"trip_id"`
	BookingID string       `json:"booking_id"`
	Fault     models.Fault `json:"fault,omitempty"`
}

// ConfirmCarResponse echoes the confirmed booking id
type ConfirmCarResponse struct {
	BookingID string `json:"booking_id"`
}

// ConfirmCar use case: flips the rental to confirmed. Confirming a booking
// that was already cancelled fails terminally with not-found, which sends
// the saga down the compensation path.
type ConfirmCar struct {
	repository domain.CarRepository
}

// NewConfirmCar creates a new ConfirmCar use case
func NewConfirmCar(repository domain.CarRepository) *ConfirmCar {
	return &ConfirmCar{repository: repository}
}

// Execute executes the confirm car use case
func (uc *ConfirmCar) Execute(ctx context.Context, cmd *ConfirmCarCommand) (*ConfirmCarResponse, error) {
	if cmd.TripID == "" || cmd.BookingID == "" {
		return nil, workflow.NewTerminalError(errors.New("trip ID and booking ID are required"))
	}

	if cmd.Fault.Is(models.FaultCarConfirmation) {
		return nil, workflow.NewTerminalErrorf("failed to confirm the car rental")
	}

	err := uc.repository.Confirm(ctx, models.ID(cmd.TripID), models.ID(cmd.BookingID))
	if err != nil {
		if errors.Is(err, domain.ErrReservationNotFound) {
			return nil, workflow.NewTerminalError(err)
		}
		return nil, errors.Wrap(err, "failed to confirm car reservation")
	}

	logrus.WithFields(logrus.Fields{
		"trip_id":    cmd.TripID,
		"booking_id": cmd.BookingID,
	}).Info("car rental confirmed")

	return &ConfirmCarResponse{BookingID: cmd.BookingID}, nil
}
