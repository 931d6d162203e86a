package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"

	"github.com/voyago/booking-system/shared/models"
	"github.com/voyago/booking-system/shared/workflow"
	"github.com/voyago/booking-system/trips-service/application"
	"github.com/voyago/booking-system/trips-service/domain"
)

// RuntimeFactory builds a workflow runtime for one saga execution
type RuntimeFactory func(executionID string) workflow.Runtime

// TripHandlers contains trip HTTP handlers
type TripHandlers struct {
	reserveTrip *application.ReserveTrip
	runtimeFor  RuntimeFactory
}

// NewTripHandlers creates new trip handlers
func NewTripHandlers(reserveTrip *application.ReserveTrip, runtimeFor RuntimeFactory) *TripHandlers {
	return &TripHandlers{reserveTrip: reserveTrip, runtimeFor: runtimeFor}
}

// RegisterRoutes registers trip routes on the router
func (h *TripHandlers) RegisterRoutes(r chi.Router) {
	r.Post("/trips/reserve", h.Reserve)
}

// Reserve runs the booking saga. Callers that want crash-safe resumption
// supply an Idempotency-Key header; retried requests with the same key
// replay journaled steps instead of re-executing them.
func (h *TripHandlers) Reserve(w http.ResponseWriter, r *http.Request) {
	var cmd application.ReserveTripCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	executionID := r.Header.Get("Idempotency-Key")
	if executionID == "" {
		executionID = models.GenerateUUID().String()
	}

	ctx := workflow.WithRuntime(r.Context(), h.runtimeFor(executionID))

	response, err := h.reserveTrip.Execute(ctx, &cmd)
	if err != nil {
		writeBookingFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

type failurePayload struct {
	Status               string `json:"status"`
	Error                string `json:"error"`
	CompensationsApplied int    `json:"compensations_applied"`
}

func writeBookingFailure(w http.ResponseWriter, err error) {
	var failed *domain.BookingFailedError
	if errors.As(err, &failed) {
		writeJSON(w, http.StatusUnprocessableEntity, failurePayload{
			Status:               "failure",
			Error:                failed.Cause.Error(),
			CompensationsApplied: failed.CompensationsApplied,
		})
		return
	}
	if workflow.IsTerminal(err) {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeError(w, http.StatusInternalServerError, err)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
