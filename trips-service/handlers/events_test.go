package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/voyago/booking-system/shared/events"
	"github.com/voyago/booking-system/shared/models"
	"github.com/voyago/booking-system/shared/workflow"
	"github.com/voyago/booking-system/trips-service/application"
	"github.com/voyago/booking-system/trips-service/domain"
	"github.com/voyago/booking-system/trips-service/mocks"
)

func executorFactory() RuntimeFactory {
	journal := workflow.NewMemoryJournal()
	transport := workflow.NewLocalTransport()
	return func(executionID string) workflow.Runtime {
		return workflow.NewExecutor(executionID, journal, transport)
	}
}

func TestBookingRequestedHandler_Handle(t *testing.T) {
	tripID := "550e8400-e29b-41d4-a716-446655440001"

	t.Run("successful booking publishes succeeded event", func(t *testing.T) {
		flights := mocks.NewMockFlightsService(t)
		cars := mocks.NewMockCarsService(t)
		payments := mocks.NewMockPaymentsService(t)
		notifier := mocks.NewMockNotifier(t)
		publisher := mocks.NewMockPublisher(t)

		flights.EXPECT().Reserve(mock.Anything, tripID, mock.Anything, models.FaultNone).Return("fb-1", nil).Once()
		cars.EXPECT().Reserve(mock.Anything, tripID, mock.Anything, models.FaultNone).Return("cb-1", nil).Once()
		payments.EXPECT().Process(mock.Anything, tripID, mock.AnythingOfType("string"), mock.Anything, models.FaultNone).Return(nil).Once()
		flights.EXPECT().Confirm(mock.Anything, tripID, "fb-1", models.FaultNone).Return(nil).Once()
		cars.EXPECT().Confirm(mock.Anything, tripID, "cb-1", models.FaultNone).Return(nil).Once()
		notifier.EXPECT().Publish(mock.Anything, domain.SuccessMessage).Return(nil).Once()
		publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
			return evt.EventType == events.BookingReservationSucceededEvent
		})).Return(nil).Once()

		handler := NewBookingRequestedHandler(
			application.NewReserveTrip(flights, cars, payments, notifier),
			executorFactory(), publisher)

		event := events.NewEvent(models.ID(tripID), events.BookingReservationRequestedEvent,
			application.ReserveTripCommand{TripID: tripID})

		err := handler.Handle(context.Background(), event)
		require.NoError(t, err)
	})

	t.Run("compensated booking publishes failed event without redelivery", func(t *testing.T) {
		flights := mocks.NewMockFlightsService(t)
		cars := mocks.NewMockCarsService(t)
		payments := mocks.NewMockPaymentsService(t)
		notifier := mocks.NewMockNotifier(t)
		publisher := mocks.NewMockPublisher(t)

		flights.EXPECT().Reserve(mock.Anything, tripID, mock.Anything, models.FaultFlightReservation).
			Return("", workflow.NewTerminalErrorf("failed to book the flight")).Once()
		notifier.EXPECT().Publish(mock.Anything, domain.FailureMessage).Return(nil).Once()
		publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
			return evt.EventType == events.BookingReservationFailedEvent
		})).Return(nil).Once()

		handler := NewBookingRequestedHandler(
			application.NewReserveTrip(flights, cars, payments, notifier),
			executorFactory(), publisher)

		event := events.NewEvent(models.ID(tripID), events.BookingReservationRequestedEvent,
			application.ReserveTripCommand{TripID: tripID, Fault: models.FaultFlightReservation})

		// Terminal failures are final: the handler must not ask for redelivery
		err := handler.Handle(context.Background(), event)
		assert.NoError(t, err)
	})

	t.Run("ignores unrelated event types", func(t *testing.T) {
		flights := mocks.NewMockFlightsService(t)
		cars := mocks.NewMockCarsService(t)
		payments := mocks.NewMockPaymentsService(t)
		notifier := mocks.NewMockNotifier(t)
		publisher := mocks.NewMockPublisher(t)

		handler := NewBookingRequestedHandler(
			application.NewReserveTrip(flights, cars, payments, notifier),
			executorFactory(), publisher)

		event := events.NewEvent(models.ID(tripID), "wallet.movement.created", nil)

		err := handler.Handle(context.Background(), event)
		assert.NoError(t, err)
	})
}
