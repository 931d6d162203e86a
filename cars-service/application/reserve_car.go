package application

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/voyago/booking-system/cars-service/domain"
	"github.com/voyago/booking-system/shared/models"
	"github.com/voyago/booking-system/shared/workflow"
)

// ReserveCarCommand represents the command to reserve a rental car
type ReserveCarCommand struct {
	TripID     string       `json:"trip_id"`
	Vehicle    string       `json:"vehicle"`
	PickupCity string       `json:"pickup_city"`
	PickupTime time.Time    `json:"pickup_time"`
	ReturnTime time.Time    `json:"return_time"`
	Fault      models.Fault `json:"fault,omitempty"`
}

// ReserveCarResponse carries the generated booking id
type ReserveCarResponse struct {
	BookingID string `json:"booking_id"`
}

// ReserveCar use case: writes a pending rental for the trip
type ReserveCar struct {
	repository domain.CarRepository
}

// NewReserveCar creates a new ReserveCar use case
func NewReserveCar(repository domain.CarRepository) *ReserveCar {
	return &ReserveCar{repository: repository}
}

// Execute executes the reserve car use case
func (uc *ReserveCar) Execute(ctx context.Context, cmd *ReserveCarCommand) (*ReserveCarResponse, error) {
	if cmd.TripID == "" {
		return nil, workflow.NewTerminalError(errors.New("trip ID is required"))
	}

	if cmd.Fault.Is(models.FaultCarReservation) {
		return nil, workflow.NewTerminalErrorf("failed to book the car rental")
	}

	reservation := domain.NewCarReservation(models.ID(cmd.TripID), domain.Rental{
		Vehicle:    cmd.Vehicle,
		PickupCity: cmd.PickupCity,
		PickupTime: cmd.PickupTime,
		ReturnTime: cmd.ReturnTime,
	})

	if err := uc.repository.Insert(ctx, reservation); err != nil {
		return nil, errors.Wrap(err, "failed to insert car reservation")
	}

	logrus.WithFields(logrus.Fields{
		"trip_id":    reservation.TripID,
		"booking_id": reservation.BookingID,
	}).Info("car rental reserved")

	return &ReserveCarResponse{BookingID: reservation.BookingID.String()}, nil
}
