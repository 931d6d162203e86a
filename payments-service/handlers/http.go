package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ARM-software/golang-utils/utils/commonerrors"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"

	"github.com/voyago/booking-system/payments-service/application"
	"github.com/voyago/booking-system/shared/workflow"
)

// PaymentHandlers contains payment HTTP handlers
type PaymentHandlers struct {
	processPayment *application.ProcessPayment
	refundPayment  *application.RefundPayment
}

// NewPaymentHandlers creates new payment handlers
func NewPaymentHandlers(
	processPayment *application.ProcessPayment,
	refundPayment *application.RefundPayment,
) *PaymentHandlers {
	return &PaymentHandlers{
		processPayment: processPayment,
		refundPayment:  refundPayment,
	}
}

// RegisterRoutes registers payment routes on the router
func (h *PaymentHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/payments/{tripID}", func(r chi.Router) {
		r.Post("/process", h.Process)
		r.Post("/refund", h.Refund)
	})
}

// Process handles charge requests
func (h *PaymentHandlers) Process(w http.ResponseWriter, r *http.Request) {
	var cmd application.ProcessPaymentCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	cmd.TripID = chi.URLParam(r, "tripID")

	response, err := h.processPayment.Execute(r.Context(), &cmd)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// Refund handles refund requests
func (h *PaymentHandlers) Refund(w http.ResponseWriter, r *http.Request) {
	var cmd application.RefundPaymentCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	cmd.TripID = chi.URLParam(r, "tripID")

	response, err := h.refundPayment.Execute(r.Context(), &cmd)
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
