package domain

import (
	"context"

	"github.com/ARM-software/golang-utils/utils/commonerrors"
	"github.com/pkg/errors"

	"github.com/voyago/booking-system/shared/models"
)

// PaymentStatus of a payment record. Payments are charged and confirmed in
// one step, so the only live status is confirmed; a refund deletes the record.
type PaymentStatus string

const (
	StatusConfirmed PaymentStatus = "confirmed"
)

// ErrPaymentNotFound is returned when no payment matches the id
var ErrPaymentNotFound = errors.Wrap(commonerrors.ErrNotFound, "payment not found")

// Payment is one charge against a trip
type Payment struct {
	TripID     models.ID
	PaymentID  models.ID
	Amount     models.Money
	Status     PaymentStatus
	Timestamps models.Timestamps
}

// NewPayment creates a confirmed payment for the trip
func NewPayment(tripID, paymentID models.ID, amount models.Money) *Payment {
	return &Payment{
		TripID:     tripID,
		PaymentID:  paymentID,
		Amount:     amount,
		Status:     StatusConfirmed,
		Timestamps: models.NewTimestamps(),
	}
}

// PaymentRepository owns the payment records
type PaymentRepository interface {
	// Insert writes a new payment
	Insert(ctx context.Context, payment *Payment) error
	// Delete removes the payment; deleting a missing record is a no-op
	Delete(ctx context.Context, tripID, paymentID models.ID) error
	// FindByPaymentID returns the payment or ErrPaymentNotFound
	FindByPaymentID(ctx context.Context, tripID, paymentID models.ID) (*Payment, error)
}
