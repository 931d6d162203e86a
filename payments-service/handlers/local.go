package handlers

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/voyago/booking-system/payments-service/application"
	"github.com/voyago/booking-system/shared/workflow"
)

// RegisterLocal binds the payment operations on the in-process transport
func (h *PaymentHandlers) RegisterLocal(t *workflow.LocalTransport) {
	t.Register("payments", "process", func(ctx context.Context, key string, params json.RawMessage) (interface{}, error) {
		var cmd application.ProcessPaymentCommand
		if err := json.Unmarshal(params, &cmd); err != nil {
			return nil, errors.Wrap(err, "invalid process params")
		}
		cmd.TripID = key
		return h.processPayment.Execute(ctx, &cmd)
	})

	t.Register("payments", "refund", func(ctx context.Context, key string, params json.RawMessage) (interface{}, error) {
		var cmd application.RefundPaymentCommand
		if err := json.Unmarshal(params, &cmd); err != nil {
			return nil, errors.Wrap(err, "invalid refund params")
		}
		cmd.TripID = key
		return h.refundPayment.Execute(ctx, &cmd)
	})
}
