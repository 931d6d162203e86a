package infrastructure

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/voyago/booking-system/shared/models"
	"github.com/voyago/booking-system/shared/workflow"
	"github.com/voyago/booking-system/trips-service/domain"
)

// Service names as addressed over the workflow transport
const (
	FlightsServiceName  = "flights"
	CarsServiceName     = "cars"
	PaymentsServiceName = "payments"
)

var (
	_ domain.FlightsService  = (*RuntimeFlightsClient)(nil)
	_ domain.CarsService     = (*RuntimeCarsClient)(nil)
	_ domain.PaymentsService = (*RuntimePaymentsClient)(nil)
)

func runtimeFrom(ctx context.Context) (workflow.Runtime, error) {
	rt, ok := workflow.FromContext(ctx)
	if !ok {
		return nil, errors.New("workflow runtime missing from context")
	}
	return rt, nil
}

type reserveFlightParams struct {
	DepartCity string       `json:"depart_city"`
	DepartTime time.Time    `json:"depart_time"`
	ArriveCity string       `json:"arrive_city"`
	ArriveTime time.Time    `json:"arrive_time"`
	Fault      models.Fault `json:"fault,omitempty"`
}

type confirmParams struct {
	BookingID string       `json:"booking_id"`
	Fault     models.Fault `json:"fault,omitempty"`
}

type cancelParams struct {
	BookingID string `json:"booking_id"`
}

type bookingResult struct {
	BookingID string `json:"booking_id"`
}

// RuntimeFlightsClient reaches the flights service through the workflow
// runtime: reservations and confirmations as durable calls, cancellation as
// fire-and-forget
type RuntimeFlightsClient struct{}

// NewRuntimeFlightsClient creates a new RuntimeFlightsClient
func NewRuntimeFlightsClient() *RuntimeFlightsClient {
	return &RuntimeFlightsClient{}
}

func (c *RuntimeFlightsClient) Reserve(ctx context.Context, tripID string, details domain.FlightDetails, fault models.Fault) (string, error) {
	rt, err := runtimeFrom(ctx)
	if err != nil {
		return "", err
	}

	params := reserveFlightParams{
		DepartCity: details.DepartCity,
		DepartTime: details.DepartTime,
		ArriveCity: details.ArriveCity,
		ArriveTime: details.ArriveTime,
		Fault:      fault,
	}

	var result bookingResult
	if err := rt.Call(ctx, FlightsServiceName, tripID, "reserve", params, &result); err != nil {
		return "", err
	}
	return result.BookingID, nil
}

func (c *RuntimeFlightsClient) Confirm(ctx context.Context, tripID, bookingID string, fault models.Fault) error {
	rt, err := runtimeFrom(ctx)
	if err != nil {
		return err
	}
	return rt.Call(ctx, FlightsServiceName, tripID, "confirm", confirmParams{BookingID: bookingID, Fault: fault}, nil)
}

func (c *RuntimeFlightsClient) Cancel(ctx context.Context, tripID, bookingID string) error {
	rt, err := runtimeFrom(ctx)
	if err != nil {
		return err
	}
	return rt.Send(ctx, FlightsServiceName, tripID, "cancel", cancelParams{BookingID: bookingID})
}

// RuntimeCarsClient reaches the cars service through the workflow runtime
type RuntimeCarsClient struct{}

// NewRuntimeCarsClient creates a new RuntimeCarsClient
func NewRuntimeCarsClient() *RuntimeCarsClient {
	return &RuntimeCarsClient{}
}

type reserveCarParams struct {
	Vehicle    string       `json:"vehicle"`
	PickupCity string       `json:"pickup_city"`
	PickupTime time.Time    `json:"pickup_time"`
	ReturnTime time.Time    `json:"return_time"`
	Fault      models.Fault `json:"fault,omitempty"`
}

func (c *RuntimeCarsClient) Reserve(ctx context.Context, tripID string, details domain.CarDetails, fault models.Fault) (string, error) {
	rt, err := runtimeFrom(ctx)
	if err != nil {
		return "", err
	}

	params := reserveCarParams{
		Vehicle:    details.Vehicle,
		PickupCity: details.PickupCity,
		PickupTime: details.PickupTime,
		ReturnTime: details.ReturnTime,
		Fault:      fault,
	}

	var result bookingResult
	if err := rt.Call(ctx, CarsServiceName, tripID, "reserve", params, &result); err != nil {
		return "", err
	}
	return result.BookingID, nil
}

func (c *RuntimeCarsClient) Confirm(ctx context.Context, tripID, bookingID string, fault models.Fault) error {
	rt, err := runtimeFrom(ctx)
	if err != nil {
		return err
	}
	return rt.Call(ctx, CarsServiceName, tripID, "confirm", confirmParams{BookingID: bookingID, Fault: fault}, nil)
}

func (c *RuntimeCarsClient) Cancel(ctx context.Context, tripID, bookingID string) error {
	rt, err := runtimeFrom(ctx)
	if err != nil {
		return err
	}
	return rt.Send(ctx, CarsServiceName, tripID, "cancel", cancelParams{BookingID: bookingID})
}

// RuntimePaymentsClient reaches the payments service through the workflow
// runtime
type RuntimePaymentsClient struct{}

// NewRuntimePaymentsClient creates a new RuntimePaymentsClient
func NewRuntimePaymentsClient() *RuntimePaymentsClient {
	return &RuntimePaymentsClient{}
}

type processPaymentParams struct {
	PaymentID string       `json:"payment_id"`
	Amount    int64        `json:"amount,omitempty"`
	Currency  string       `json:"currency,omitempty"`
	Fault     models.Fault `json:"fault,omitempty"`
}

type refundPaymentParams struct {
	PaymentID string `json:"payment_id"`
}

func (c *RuntimePaymentsClient) Process(ctx context.Context, tripID, paymentID string, amount models.Money, fault models.Fault) error {
	rt, err := runtimeFrom(ctx)
	if err != nil {
		return err
	}

	params := processPaymentParams{
		PaymentID: paymentID,
		Amount:    amount.Amount,
		Currency:  amount.Currency,
		Fault:     fault,
	}
	return rt.Call(ctx, PaymentsServiceName, tripID, "process", params, nil)
}

func (c *RuntimePaymentsClient) Refund(ctx context.Context, tripID, paymentID string) error {
	rt, err := runtimeFrom(ctx)
	if err != nil {
		return err
	}
	return rt.Send(ctx, PaymentsServiceName, tripID, "refund", refundPaymentParams{PaymentID: paymentID})
}
