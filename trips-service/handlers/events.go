package handlers

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/voyago/booking-system/shared/events"
	"github.com/voyago/booking-system/shared/models"
	"github.com/voyago/booking-system/shared/workflow"
	"github.com/voyago/booking-system/trips-service/application"
	"github.com/voyago/booking-system/trips-service/domain"
)

var _ events.EventHandler = (*BookingRequestedHandler)(nil)

// BookingOutcome is the payload of the succeeded/failed lifecycle events
type BookingOutcome struct {
	TripID               string `json:"trip_id"`
	Status               string `json:"status"`
	Error                string `json:"error,omitempty"`
	CompensationsApplied int    `json:"compensations_applied,omitempty"`
}

// BookingRequestedHandler drives the booking saga from queued
// booking.reservation.requested events. The event id doubles as the
// execution id, so a redelivered event replays journaled steps instead of
// booking the trip twice.
type BookingRequestedHandler struct {
	reserveTrip *application.ReserveTrip
	runtimeFor  RuntimeFactory
	publisher   events.Publisher
}

// NewBookingRequestedHandler creates a new BookingRequestedHandler
func NewBookingRequestedHandler(
	reserveTrip *application.ReserveTrip,
	runtimeFor RuntimeFactory,
	publisher events.Publisher,
) *BookingRequestedHandler {
	return &BookingRequestedHandler{
		reserveTrip: reserveTrip,
		runtimeFor:  runtimeFor,
		publisher:   publisher,
	}
}

// Handle executes the saga for one requested booking
func (h *BookingRequestedHandler) Handle(ctx context.Context, event *events.Event) error {
	if event.EventType != events.BookingReservationRequestedEvent {
		return nil
	}

	var cmd application.ReserveTripCommand
	if err := event.DecodeData(&cmd); err != nil {
		return errors.Wrap(err, "failed to decode booking request")
	}

	ctx = workflow.WithRuntime(ctx, h.runtimeFor(event.ID.String()))

	response, err := h.reserveTrip.Execute(ctx, &cmd)
	if err != nil {
		var failed *domain.BookingFailedError
		if errors.As(err, &failed) {
			// Terminal and fully compensated: report the outcome, do not
			// ask for redelivery
			h.publishOutcome(ctx, event, events.BookingReservationFailedEvent, BookingOutcome{
				TripID:               cmd.TripID,
				Status:               "failure",
				Error:                failed.Cause.Error(),
				CompensationsApplied: failed.CompensationsApplied,
			})
			return nil
		}
		return err
	}

	h.publishOutcome(ctx, event, events.BookingReservationSucceededEvent, BookingOutcome{
		TripID: response.TripID,
		Status: response.Status,
	})
	return nil
}

func (h *BookingRequestedHandler) publishOutcome(ctx context.Context, cause *events.Event, eventType string, outcome BookingOutcome) {
	event := events.NewEvent(models.ID(outcome.TripID), eventType, outcome).
		WithCorrelationID(cause.ID)

	if err := h.publisher.Publish(ctx, event); err != nil {
		logrus.WithError(err).WithField("event_type", eventType).Warn("failed to publish booking outcome")
	}
}
