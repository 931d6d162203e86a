package application

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	carsapp "github.com/voyago/booking-system/cars-service/application"
	carshandlers "github.com/voyago/booking-system/cars-service/handlers"
	carsinfra "github.com/voyago/booking-system/cars-service/infrastructure"
	flightsapp "github.com/voyago/booking-system/flights-service/application"
	flightsdomain "github.com/voyago/booking-system/flights-service/domain"
	flightshandlers "github.com/voyago/booking-system/flights-service/handlers"
	flightsinfra "github.com/voyago/booking-system/flights-service/infrastructure"
	paymentsapp "github.com/voyago/booking-system/payments-service/application"
	paymentshandlers "github.com/voyago/booking-system/payments-service/handlers"
	paymentsinfra "github.com/voyago/booking-system/payments-service/infrastructure"
	"github.com/voyago/booking-system/shared/models"
	"github.com/voyago/booking-system/shared/workflow"
	"github.com/voyago/booking-system/trips-service/domain"
	tripsinfra "github.com/voyago/booking-system/trips-service/infrastructure"
)

// recordingNotifier counts deliveries instead of talking to SNS
type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Publish(_ context.Context, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
	return nil
}

// bookingFixture wires the real use cases of every service over the
// in-process transport, with in-memory storage and journal
type bookingFixture struct {
	flights   *flightsinfra.MemoryFlightRepository
	cars      *carsinfra.MemoryCarRepository
	payments  *paymentsinfra.MemoryPaymentRepository
	notifier  *recordingNotifier
	journal   *workflow.MemoryJournal
	transport *workflow.LocalTransport
	saga      *ReserveTrip
}

func newBookingFixture() *bookingFixture {
	f := &bookingFixture{
		flights:  flightsinfra.NewMemoryFlightRepository(),
		cars:     carsinfra.NewMemoryCarRepository(),
		payments: paymentsinfra.NewMemoryPaymentRepository(),
		notifier: &recordingNotifier{},
		journal:  workflow.NewMemoryJournal(),
	}

	transport := workflow.NewLocalTransport()
	flightshandlers.NewFlightHandlers(
		flightsapp.NewReserveFlight(f.flights),
		flightsapp.NewConfirmFlight(f.flights),
		flightsapp.NewCancelFlight(f.flights),
	).RegisterLocal(transport)
	carshandlers.NewCarHandlers(
		carsapp.NewReserveCar(f.cars),
		carsapp.NewConfirmCar(f.cars),
		carsapp.NewCancelCar(f.cars),
	).RegisterLocal(transport)
	paymentshandlers.NewPaymentHandlers(
		paymentsapp.NewProcessPayment(f.payments),
		paymentsapp.NewRefundPayment(f.payments),
	).RegisterLocal(transport)

	f.saga = NewReserveTrip(
		tripsinfra.NewRuntimeFlightsClient(),
		tripsinfra.NewRuntimeCarsClient(),
		tripsinfra.NewRuntimePaymentsClient(),
		f.notifier,
	)
	f.transport = transport
	return f
}

func (f *bookingFixture) run(executionID string, cmd *ReserveTripCommand) (*ReserveTripResponse, error) {
	rt := workflow.NewExecutor(executionID, f.journal, f.transport)
	ctx := workflow.WithRuntime(context.Background(), rt)
	return f.saga.Execute(ctx, cmd)
}

func TestBookingFlow_Success(t *testing.T) {
	f := newBookingFixture()

	result, err := f.run("exec-1", &ReserveTripCommand{})

	require.NoError(t, err)
	assert.Equal(t, "success", result.Status)

	flights := f.flights.FindByTripID(context.Background(), models.ID(result.TripID))
	require.Len(t, flights, 1)
	assert.Equal(t, flightsdomain.StatusConfirmed, flights[0].Status)
	assert.Equal(t, "Detroit", flights[0].Itinerary.DepartCity)
	assert.Equal(t, "Frankfurt", flights[0].Itinerary.ArriveCity)

	cars := f.cars.FindByTripID(context.Background(), models.ID(result.TripID))
	require.Len(t, cars, 1)
	assert.Equal(t, "BMW", cars[0].Rental.Vehicle)

	assert.Equal(t, []string{domain.SuccessMessage}, f.notifier.messages)
}

func TestBookingFlow_PaymentFaultRollsBackReservations(t *testing.T) {
	f := newBookingFixture()

	result, err := f.run("exec-1", &ReserveTripCommand{
		TripID: testTripID,
		Fault:  models.FaultPayment,
	})

	assert.Nil(t, result)
	var failed *domain.BookingFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, 2, failed.CompensationsApplied)
	assert.Contains(t, failed.Cause.Error(), "failed to process payment")

	assert.Empty(t, f.flights.FindByTripID(context.Background(), models.ID(testTripID)))
	assert.Empty(t, f.cars.FindByTripID(context.Background(), models.ID(testTripID)))
	assert.Equal(t, []string{domain.FailureMessage}, f.notifier.messages)
}

func TestBookingFlow_ConfirmFaultRollsBackEverything(t *testing.T) {
	f := newBookingFixture()

	result, err := f.run("exec-1", &ReserveTripCommand{
		TripID: testTripID,
		Fault:  models.FaultCarConfirmation,
	})

	assert.Nil(t, result)
	var failed *domain.BookingFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, 3, failed.CompensationsApplied)

	assert.Empty(t, f.flights.FindByTripID(context.Background(), models.ID(testTripID)))
	assert.Empty(t, f.cars.FindByTripID(context.Background(), models.ID(testTripID)))
	assert.Equal(t, []string{domain.FailureMessage}, f.notifier.messages)
}

func TestBookingFlow_FlightFaultLeavesNothingBehind(t *testing.T) {
	f := newBookingFixture()

	_, err := f.run("exec-1", &ReserveTripCommand{
		TripID: testTripID,
		Fault:  models.FaultFlightReservation,
	})

	var failed *domain.BookingFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, 0, failed.CompensationsApplied)
	assert.Empty(t, f.flights.FindByTripID(context.Background(), models.ID(testTripID)))
}

// A resumed execution replays journaled steps: the same trip comes back, no
// duplicate records are written, and the notification is not sent again
func TestBookingFlow_ReplayIsIdempotent(t *testing.T) {
	f := newBookingFixture()

	first, err := f.run("exec-1", &ReserveTripCommand{})
	require.NoError(t, err)

	second, err := f.run("exec-1", &ReserveTripCommand{})
	require.NoError(t, err)

	assert.Equal(t, first.TripID, second.TripID)
	assert.Len(t, f.flights.FindByTripID(context.Background(), models.ID(first.TripID)), 1)
	assert.Len(t, f.cars.FindByTripID(context.Background(), models.ID(first.TripID)), 1)
	assert.Equal(t, []string{domain.SuccessMessage}, f.notifier.messages)
}
