package application

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/voyago/booking-system/shared/models"
	"github.com/voyago/booking-system/shared/workflow"
	"github.com/voyago/booking-system/trips-service/domain"
)

// ReserveTripCommand represents the command to book a full trip
type ReserveTripCommand struct {
	TripID string `json:"trip_id,omitempty"`

	DepartCity string    `json:"depart_city,omitempty"`
	DepartTime time.Time `json:"depart_time,omitempty"`
	ArriveCity string    `json:"arrive_city,omitempty"`
	ArriveTime time.Time `json:"arrive_time,omitempty"`

	Vehicle    string    `json:"vehicle,omitempty"`
	PickupCity string    `json:"pickup_city,omitempty"`
	PickupTime time.Time `json:"pickup_time,omitempty"`
	ReturnTime time.Time `json:"return_time,omitempty"`

	Amount   int64  `json:"amount,omitempty"`
	Currency string `json:"currency,omitempty"`

	Fault models.Fault `json:"fault,omitempty"`
}

func (cmd *ReserveTripCommand) details() domain.TripDetails {
	details := domain.TripDetails{
		Flight: domain.FlightDetails{
			DepartCity: cmd.DepartCity,
			DepartTime: cmd.DepartTime,
			ArriveCity: cmd.ArriveCity,
			ArriveTime: cmd.ArriveTime,
		},
		Car: domain.CarDetails{
			Vehicle:    cmd.Vehicle,
			PickupCity: cmd.PickupCity,
			PickupTime: cmd.PickupTime,
			ReturnTime: cmd.ReturnTime,
		},
		Amount: models.NewMoney(cmd.Amount, cmd.Currency),
	}
	details.ApplyDefaults()
	return details
}

// ReserveTripResponse is the terminal success payload
type ReserveTripResponse struct {
	Status string `json:"status"`
	TripID string `json:"trip_id"`
}

// ReserveTrip orchestrates the booking saga: reserve flight, car and payment
// in that order, pushing an undo action for each success; confirm flight then
// car; notify. Any step failure unwinds the pushed undo actions strictly in
// reverse order and reports a terminal failure. A booking therefore ends
// fully confirmed or fully compensated, never in between.
type ReserveTrip struct {
	flights  domain.FlightsService
	cars     domain.CarsService
	payments domain.PaymentsService
	notifier domain.Notifier
}

// NewReserveTrip creates a new ReserveTrip use case
func NewReserveTrip(
	flights domain.FlightsService,
	cars domain.CarsService,
	payments domain.PaymentsService,
	notifier domain.Notifier,
) *ReserveTrip {
	return &ReserveTrip{
		flights:  flights,
		cars:     cars,
		payments: payments,
		notifier: notifier,
	}
}

// Execute executes the booking saga. The context must carry the workflow
// runtime for this execution.
func (uc *ReserveTrip) Execute(ctx context.Context, cmd *ReserveTripCommand) (*ReserveTripResponse, error) {
	rt, ok := workflow.FromContext(ctx)
	if !ok {
		return nil, errors.New("workflow runtime missing from context")
	}

	tripID := cmd.TripID
	if tripID == "" {
		var err error
		tripID, err = rt.GenerateID(ctx, "generate-trip-id")
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate trip id")
		}
	}

	details := cmd.details()
	logger := logrus.WithField("trip_id", tripID)
	var stack []compensation

	fail := func(cause error) (*ReserveTripResponse, error) {
		logger.WithError(cause).WithField("reserved", len(stack)).Warn("booking failed, rolling back")

		dispatcher := &compensator{flights: uc.flights, cars: uc.cars, payments: uc.payments}
		applied := dispatcher.applyAll(ctx, tripID, stack)

		uc.notify(ctx, rt, "notify-failure", domain.FailureMessage)

		return nil, workflow.NewTerminalError(&domain.BookingFailedError{
			Cause:                cause,
			CompensationsApplied: applied,
		})
	}

	flightBookingID, err := uc.flights.Reserve(ctx, tripID, details.Flight, cmd.Fault)
	if err != nil {
		return fail(err)
	}
	stack = append(stack, compensation{kind: cancelFlight, bookingID: flightBookingID})

	carBookingID, err := uc.cars.Reserve(ctx, tripID, details.Car, cmd.Fault)
	if err != nil {
		return fail(err)
	}
	stack = append(stack, compensation{kind: cancelCar, bookingID: carBookingID})

	paymentID, err := rt.GenerateID(ctx, "generate-payment-id")
	if err != nil {
		return fail(errors.Wrap(err, "failed to generate payment id"))
	}
	if err := uc.payments.Process(ctx, tripID, paymentID, details.Amount, cmd.Fault); err != nil {
		return fail(err)
	}
	stack = append(stack, compensation{kind: refundPayment, bookingID: paymentID})

	// Confirmations run in reservation order
	if err := uc.flights.Confirm(ctx, tripID, flightBookingID, cmd.Fault); err != nil {
		return fail(err)
	}
	if err := uc.cars.Confirm(ctx, tripID, carBookingID, cmd.Fault); err != nil {
		return fail(err)
	}

	if cmd.Fault.Is(models.FaultNotification) {
		return fail(workflow.NewTerminalErrorf("failed to send the notification"))
	}

	uc.notify(ctx, rt, "notify-success", domain.SuccessMessage)

	logger.Info("trip booked")
	return &ReserveTripResponse{Status: "success", TripID: tripID}, nil
}

// notify publishes the outcome message through the runtime so a replayed
// execution does not notify twice. Delivery failures are logged, never
// propagated: the notification is outside the transactional boundary.
func (uc *ReserveTrip) notify(ctx context.Context, rt workflow.Runtime, step, message string) {
	err := rt.Run(ctx, step, func(ctx context.Context) (interface{}, error) {
		return struct{}{}, uc.notifier.Publish(ctx, message)
	}, nil)
	if err != nil {
		logrus.WithError(err).WithField("message", message).Warn("notification delivery failed")
	}
}
