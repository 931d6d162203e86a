package handlers

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/voyago/booking-system/flights-service/application"
	"github.com/voyago/booking-system/shared/workflow"
)

// RegisterLocal binds the flight operations on the in-process transport
func (h *FlightHandlers) RegisterLocal(t *workflow.LocalTransport) {
	t.Register("flights", "reserve", func(ctx context.Context, key string, params json.RawMessage) (interface{}, error) {
		var cmd application.ReserveFlightCommand
		if err := json.Unmarshal(params, &cmd); err != nil {
			return nil, errors.Wrap(err, "invalid reserve params")
		}
		cmd.TripID = key
		return h.reserveFlight.Execute(ctx, &cmd)
	})

	t.Register("flights", "confirm", func(ctx context.Context, key string, params json.RawMessage) (interface{}, error) {
		var cmd application.ConfirmFlightCommand
		if err := json.Unmarshal(params, &cmd); err != nil {
			return nil, errors.Wrap(err, "invalid confirm params")
		}
		cmd.TripID = key
		return h.confirmFlight.Execute(ctx, &cmd)
	})

	t.Register("flights", "cancel", func(ctx context.Context, key string, params json.RawMessage) (interface{}, error) {
		var cmd application.CancelFlightCommand
		if err := json.Unmarshal(params, &cmd); err != nil {
			return nil, errors.Wrap(err, "invalid cancel params")
		}
		cmd.TripID = key
		return h.cancelFlight.Execute(ctx, &cmd)
	})
}
