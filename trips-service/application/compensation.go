package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/voyago/booking-system/trips-service/domain"
)

// compensationKind tags the undo action a reserved resource needs
type compensationKind string

const (
	cancelFlight  compensationKind = "cancel_flight"
	cancelCar     compensationKind = "cancel_car"
	refundPayment compensationKind = "refund_payment"
)

// compensation is one deferred undo action, addressed by the booking it
// reverses. The stack is private to a single saga execution.
type compensation struct {
	kind      compensationKind
	bookingID string
}

// compensator dispatches tagged compensations to the owning service
type compensator struct {
	flights  domain.FlightsService
	cars     domain.CarsService
	payments domain.PaymentsService
}

// applyAll runs the stack strictly last-in-first-out. Each dispatch is
// best-effort: a failed compensation is logged and the rest still run.
// Returns the number of compensations dispatched.
func (c *compensator) applyAll(ctx context.Context, tripID string, stack []compensation) int {
	applied := 0
	for i := len(stack) - 1; i >= 0; i-- {
		entry := stack[i]

		var err error
		switch entry.kind {
		case cancelFlight:
			err = c.flights.Cancel(ctx, tripID, entry.bookingID)
		case cancelCar:
			err = c.cars.Cancel(ctx, tripID, entry.bookingID)
		case refundPayment:
			err = c.payments.Refund(ctx, tripID, entry.bookingID)
		}

		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"trip_id":    tripID,
				"kind":       entry.kind,
				"booking_id": entry.bookingID,
			}).Error("compensation dispatch failed")
			continue
		}
		applied++
	}
	return applied
}
