package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/voyago/booking-system/payments-service/domain"
	"github.com/voyago/booking-system/shared/models"
	"github.com/voyago/booking-system/shared/workflow"
)

// RefundPaymentCommand represents the command to refund a charge
type RefundPaymentCommand struct {
	TripID    string `json:"trip_id"`
	PaymentID string `json:"payment_id"`
}

// RefundPaymentResponse is intentionally empty
type RefundPaymentResponse struct{}

// RefundPayment use case: reverses the charge by removing the payment
// record. Idempotent: refunding a payment that was never processed or was
// already refunded is a no-op.
type RefundPayment struct {
	repository domain.PaymentRepository
}

// NewRefundPayment creates a new RefundPayment use case
func NewRefundPayment(repository domain.PaymentRepository) *RefundPayment {
	return &RefundPayment{repository: repository}
}

// Execute executes the refund payment use case
func (uc *RefundPayment) Execute(ctx context.Context, cmd *RefundPaymentCommand) (*RefundPaymentResponse, error) {
	if cmd.TripID == "" || cmd.PaymentID == "" {
		return nil, workflow.NewTerminalError(errors.New("trip ID and payment ID are required"))
	}

	if err := uc.repository.Delete(ctx, models.ID(cmd.TripID), models.ID(cmd.PaymentID)); err != nil {
		return nil, errors.Wrap(err, "failed to delete payment")
	}

	logrus.WithFields(logrus.Fields{
		"trip_id":    cmd.TripID,
		"payment_id": cmd.PaymentID,
	}).Info("payment refunded")

	return &RefundPaymentResponse{}, nil
}
