package application

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/voyago/booking-system/flights-service/domain"
	"github.com/voyago/booking-system/shared/models"
	"github.com/voyago/booking-system/shared/workflow"
)

// ReserveFlightCommand represents the command to reserve a flight
type ReserveFlightCommand struct {
	TripID     string       `json:"trip_id"`
	DepartCity string       `json:"depart_city"`
	DepartTime time.Time    `json:"depart_time"`
	ArriveCity string       `json:"arrive_city"`
	ArriveTime time.Time    `json:"arrive_time"`
	Fault      models.Fault `json:"fault,omitempty"`
}

// ReserveFlightResponse carries the generated booking id
type ReserveFlightResponse struct {
	BookingID string `json:"booking_id"`
}

// ReserveFlight use case: writes a pending reservation for the trip
type ReserveFlight struct {
	repository domain.FlightRepository
}

// NewReserveFlight creates a new ReserveFlight use case
func NewReserveFlight(repository domain.FlightRepository) *ReserveFlight {
	return &ReserveFlight{repository: repository}
}

// Execute executes the reserve flight use case
func (uc *ReserveFlight) Execute(ctx context.Context, cmd *ReserveFlightCommand) (*ReserveFlightResponse, error) {
	if cmd.TripID == "" {
		return nil, workflow.NewTerminalError(errors.New("trip ID is required"))
	}

	if cmd.Fault.Is(models.FaultFlightReservation) {
		return nil, workflow.NewTerminalErrorf("failed to book the flight")
	}

	reservation := domain.NewFlightReservation(models.ID(cmd.TripID), domain.Itinerary{
		DepartCity: cmd.DepartCity,
		DepartTime: cmd.DepartTime,
		ArriveCity: cmd.ArriveCity,
		ArriveTime: cmd.ArriveTime,
	})

	if err := uc.repository.Insert(ctx, reservation); err != nil {
		return nil, errors.Wrap(err, "failed to insert flight reservation")
	}

	logrus.WithFields(logrus.Fields{
		"trip_id":    reservation.TripID,
		"booking_id": reservation.BookingID,
	}).Info("flight reserved")

	return &ReserveFlightResponse{BookingID: reservation.BookingID.String()}, nil
}
