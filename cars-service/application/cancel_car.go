package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/voyago/booking-system/cars-service/domain"
	"github.com/voyago/booking-system/shared/models"
	"github.com/voyago/booking-system/shared/workflow"
)

// CancelCarCommand represents the command to cancel a rental
type CancelCarCommand struct {
	TripID    string `json:"trip_id"`
	BookingID string `json:"booking_id"`
}

// CancelCarResponse is intentionally empty
type CancelCarResponse struct{}

// CancelCar use case: removes the rental record. Idempotent: the
// compensation path may race a confirm or be replayed, so cancelling a
// booking that is already gone is a no-op.
type CancelCar struct {
	repository domain.CarRepository
}

// NewCancelCar creates a new CancelCar use case
func NewCancelCar(repository domain.CarRepository) *CancelCar {
	return &CancelCar{repository: repository}
}

// Execute executes the cancel car use case
func (uc *CancelCar) Execute(ctx context.Context, cmd *CancelCarCommand) (*CancelCarResponse, error) {
	if cmd.TripID == "" || cmd.BookingID == "" {
		return nil, workflow.NewTerminalError(errors.New("trip ID and booking ID are required"))
	}

	if err := uc.repository.Delete(ctx, models.ID(cmd.TripID), models.ID(cmd.BookingID)); err != nil {
		return nil, errors.Wrap(err, "failed to delete car reservation")
	}

	logrus.WithFields(logrus.Fields{
		"trip_id":    cmd.TripID,
		"booking_id": cmd.BookingID,
	}).Info("car rental cancelled")

	return &CancelCarResponse{}, nil
}
