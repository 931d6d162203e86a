package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ARM-software/golang-utils/utils/commonerrors"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"

	"github.com/voyago/booking-system/cars-service/application"
	"github.com/voyago/booking-system/shared/workflow"
)

// CarHandlers contains car rental HTTP handlers
type CarHandlers struct {
	reserveCar *application.ReserveCar
	confirmCar *application.ConfirmCar
	cancelCar  *application.CancelCar
}

// NewCarHandlers creates new car rental handlers
func NewCarHandlers(
	reserveCar *application.ReserveCar,
	confirmCar *application.ConfirmCar,
	cancelCar *application.CancelCar,
) *CarHandlers {
	return &CarHandlers{
		reserveCar: reserveCar,
		confirmCar: confirmCar,
		cancelCar:  cancelCar,
	}
}

// RegisterRoutes registers car rental routes on the router
func (h *CarHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/cars/{tripID}", func(r chi.Router) {
		r.Post("/reserve", h.Reserve)
		r.Post("/confirm", h.Confirm)
		r.Post("/cancel", h.Cancel)
	})
}

// Reserve handles reservation requests
func (h *CarHandlers) Reserve(w http.ResponseWriter, r *http.Request) {
	var cmd application.ReserveCarCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	cmd.TripID = chi.URLParam(r, "tripID")

	response, err := h.reserveCar.Execute(r.Context(), &cmd)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// Confirm handles confirmation requests
func (h *CarHandlers) Confirm(w http.ResponseWriter, r *http.Request) {
	var cmd application.ConfirmCarCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	cmd.TripID = chi.URLParam(r, "tripID")

	response, err := h.confirmCar.Execute(r.Context(), &cmd)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// Cancel handles cancellation requests
func (h *CarHandlers) Cancel(w http.ResponseWriter, r *http.Request) {
	var cmd application.CancelCarCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	cmd.TripID = chi.URLParam(r, "tripID")

	response, err := h.cancelCar.Execute(r.Context(), &cmd)
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
