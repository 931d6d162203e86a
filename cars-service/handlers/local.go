package handlers

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/voyago/booking-system/cars-service/application"
	"github.com/voyago/booking-system/shared/workflow"
)

// RegisterLocal binds the car rental operations on the in-process transport
func (h *CarHandlers) RegisterLocal(t *workflow.LocalTransport) {
	t.Register("cars", "reserve", func(ctx context.Context, key string, params json.RawMessage) (interface{}, error) {
		var cmd application.ReserveCarCommand
		if err := json.Unmarshal(params, &cmd); err != nil {
			return nil, errors.Wrap(err, "invalid reserve params")
		}
		cmd.TripID = key
		return h.reserveCar.Execute(ctx, &cmd)
	})

	t.Register("cars", "confirm", func(ctx context.Context, key string, params json.RawMessage) (interface{}, error) {
		var cmd application.ConfirmCarCommand
		if err := json.Unmarshal(params, &cmd); err != nil {
			return nil, errors.Wrap(err, "invalid confirm params")
		}
		cmd.TripID = key
		return h.confirmCar.Execute(ctx, &cmd)
	})

	t.Register("cars", "cancel", func(ctx context.Context, key string, params json.RawMessage) (interface{}, error) {
		var cmd application.CancelCarCommand
		if err := json.Unmarshal(params, &cmd); err != nil {
			return nil, errors.Wrap(err, "invalid cancel params")
		}
		cmd.TripID = key
		return h.cancelCar.Execute(ctx, &cmd)
	})
}
