package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/voyago/booking-system/payments-service/domain"
	"github.com/voyago/booking-system/shared/models"
	"github.com/voyago/booking-system/shared/workflow"
)

// Default charge applied when the caller does not price the trip: 750.00 USD
const (
	DefaultAmount   = 75000
	DefaultCurrency = "USD"
)

// ProcessPaymentCommand represents the command to charge a trip. The payment
// id is minted by the caller so that retries of the same workflow charge the
// same id instead of double billing.
type ProcessPaymentCommand struct {
	TripID    string       `json:"trip_id"`
	PaymentID string       `json:"payment_id"`
	Amount    int64        `json:"amount,omitempty"`
	Currency  string       `json:"currency,omitempty"`
	Fault     models.Fault `json:"fault,omitempty"`
}

// ProcessPaymentResponse echoes the payment id
type ProcessPaymentResponse struct {
	PaymentID string `json:"payment_id"`
}

// ProcessPayment use case: charges the trip and records the payment as
// confirmed in one step
type ProcessPayment struct {
	repository domain.PaymentRepository
}

// NewProcessPayment creates a new ProcessPayment use case
func NewProcessPayment(repository domain.PaymentRepository) *ProcessPayment {
	return &ProcessPayment{repository: repository}
}

// Execute executes the process payment use case
func (uc *ProcessPayment) Execute(ctx context.Context, cmd *ProcessPaymentCommand) (*ProcessPaymentResponse, error) {
	if cmd.TripID == "" || cmd.PaymentID == "" {
		return nil, workflow.NewTerminalError(errors.New("trip ID and payment ID are required"))
	}

	if cmd.Fault.Is(models.FaultPayment) {
		return nil, workflow.NewTerminalErrorf("failed to process payment")
	}

	amount := cmd.Amount
	if amount == 0 {
		amount = DefaultAmount
	}
	currency := cmd.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	payment := domain.NewPayment(models.ID(cmd.TripID), models.ID(cmd.PaymentID),
		models.NewMoney(amount, currency))

	if err := uc.repository.Insert(ctx, payment); err != nil {
		return nil, errors.Wrap(err, "failed to insert payment")
	}

	logrus.WithFields(logrus.Fields{
		"trip_id":    cmd.TripID,
		"payment_id": cmd.PaymentID,
		"amount":     amount,
		"currency":   currency,
	}).Info("payment processed")

	return &ProcessPaymentResponse{PaymentID: cmd.PaymentID}, nil
}
