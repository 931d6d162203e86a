package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ARM-software/golang-utils/utils/commonerrors"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"

	"github.com/voyago/booking-system/flights-service/application"
	"github.com/voyago/booking-system/shared/workflow"
)

// FlightHandlers contains flight HTTP handlers
type FlightHandlers struct {
	reserveFlight *application.ReserveFlight
	confirmFlight *application.ConfirmFlight
	cancelFlight  *application.CancelFlight
}

// NewFlightHandlers creates new flight handlers
func NewFlightHandlers(
	reserveFlight *application.ReserveFlight,
	confirmFlight *application.ConfirmFlight,
	cancelFlight *application.CancelFlight,
) *FlightHandlers {
	return &FlightHandlers{
		reserveFlight: reserveFlight,
		confirmFlight: confirmFlight,
		cancelFlight:  cancelFlight,
	}
}

// RegisterRoutes registers flight routes on the router
func (h *FlightHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/flights/{tripID}", func(r chi.Router) {
		r.Post("/reserve", h.Reserve)
		r.Post("/confirm", h.Confirm)
		r.Post("/cancel", h.Cancel)
	})
}

// Reserve handles reservation requests
func (h *FlightHandlers) Reserve(w http.ResponseWriter, r *http.Request) {
	var cmd application.ReserveFlightCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	cmd.TripID = chi.URLParam(r, "tripID")

	response, err := h.reserveFlight.Execute(r.Context(), &cmd)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// Confirm handles confirmation requests
func (h *FlightHandlers) Confirm(w http.ResponseWriter, r *http.Request) {
	var cmd application.ConfirmFlightCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	cmd.TripID = chi.URLParam(r, "tripID")

	response, err := h.confirmFlight.Execute(r.Context(), &cmd)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// Cancel handles cancellation requests
func (h *FlightHandlers) Cancel(w http.ResponseWriter, r *http.Request) {
	var cmd application.CancelFlightCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	cmd.TripID = chi.URLParam(r, "tripID")

	response, err := h.cancelFlight.Execute(r.Context(), &cmd)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// writeFailure maps terminal errors to 4xx so callers never retry them, and
// everything else to 500 so the caller's retry policy applies
func writeFailure(w http.ResponseWriter, err error) {
	switch {
	case commonerrors.Any(err, commonerrors.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	case workflow.IsTerminal(err):
		writeError(w, http.StatusUnprocessableEntity, err)
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
