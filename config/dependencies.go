package config

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	carsapp "github.com/voyago/booking-system/cars-service/application"
	carshandlers "github.com/voyago/booking-system/cars-service/handlers"
	carsinfra "github.com/voyago/booking-system/cars-service/infrastructure"
	flightsapp "github.com/voyago/booking-system/flights-service/application"
	flightshandlers "github.com/voyago/booking-system/flights-service/handlers"
	flightsinfra "github.com/voyago/booking-system/flights-service/infrastructure"
	paymentsapp "github.com/voyago/booking-system/payments-service/application"
	paymentshandlers "github.com/voyago/booking-system/payments-service/handlers"
	paymentsinfra "github.com/voyago/booking-system/payments-service/infrastructure"
	sharedinfra "github.com/voyago/booking-system/shared/infrastructure"
	"github.com/voyago/booking-system/shared/telemetry"
	"github.com/voyago/booking-system/shared/workflow"
	tripsapp "github.com/voyago/booking-system/trips-service/application"
	tripshandlers "github.com/voyago/booking-system/trips-service/handlers"
	tripsinfra "github.com/voyago/booking-system/trips-service/infrastructure"
)

type Dependencies struct {
	// Database
	DB *sqlx.DB

	// Workflow runtime
	Journal   workflow.Journal
	Transport workflow.Transport

	// Use cases
	ReserveTrip *tripsapp.ReserveTrip

	// HTTP handlers
	FlightHandlers  *flightshandlers.FlightHandlers
	CarHandlers     *carshandlers.CarHandlers
	PaymentHandlers *paymentshandlers.PaymentHandlers
	TripHandlers    *tripshandlers.TripHandlers

	// Event intake
	BookingRequestedHandler *tripshandlers.BookingRequestedHandler
	EventSubscriber         *sharedinfra.SQSEventSubscriber

	// Infrastructure
	Notifier       *sharedinfra.SNSNotifier
	EventPublisher *sharedinfra.SNSEventPublisher

	// Telemetry
	Telemetry         *telemetry.Telemetry
	TelemetryShutdown func()
}

// BuildDependencies wires the whole service graph. All four services run in
// one process; the orchestrator reaches the resource services over the
// configured workflow transport.
func BuildDependencies(ctx context.Context, config *Config) (*Dependencies, error) {
	deps := &Dependencies{}

	if config.Telemetry.Enabled {
		telConfig := telemetry.BookingServiceConfig.WithOTLPEndpoint(config.Telemetry.OTLPEndpoint)
		tel, telemetryShutdown, err := telemetry.InitTelemetry(ctx, telConfig)
		if err != nil {
			log.Printf("Failed to initialize telemetry: %v", err)
			// Continue without telemetry rather than failing
		} else {
			deps.Telemetry = tel
			deps.TelemetryShutdown = telemetryShutdown
		}
	}

	db, err := sqlx.Connect("postgres", config.GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	deps.DB = db

	notifier, err := sharedinfra.NewSNSNotifierFromEnv(ctx, config.AWS.NotificationTopic)
	if err != nil {
		return nil, fmt.Errorf("failed to create SNS notifier: %w", err)
	}
	deps.Notifier = notifier

	eventPublisher, err := sharedinfra.NewSNSEventPublisherFromEnv(ctx, config.AWS.EventTopicArn)
	if err != nil {
		return nil, fmt.Errorf("failed to create SNS event publisher: %w", err)
	}
	deps.EventPublisher = eventPublisher

	// Resource services
	flightRepository := flightsinfra.NewPostgresFlightRepository(db)
	deps.FlightHandlers = flightshandlers.NewFlightHandlers(
		flightsapp.NewReserveFlight(flightRepository),
		flightsapp.NewConfirmFlight(flightRepository),
		flightsapp.NewCancelFlight(flightRepository),
	)

	carRepository := carsinfra.NewPostgresCarRepository(db)
	deps.CarHandlers = carshandlers.NewCarHandlers(
		carsapp.NewReserveCar(carRepository),
		carsapp.NewConfirmCar(carRepository),
		carsapp.NewCancelCar(carRepository),
	)

	paymentRepository := paymentsinfra.NewPostgresPaymentRepository(db)
	deps.PaymentHandlers = paymentshandlers.NewPaymentHandlers(
		paymentsapp.NewProcessPayment(paymentRepository),
		paymentsapp.NewRefundPayment(paymentRepository),
	)

	// Workflow runtime: durable journal, transport per config. The local
	// transport routes calls in-process; the http transport targets the
	// resource routes of a separate deployment.
	deps.Journal = sharedinfra.NewPostgresJournal(db)
	switch config.Workflow.Transport {
	case "http":
		deps.Transport = sharedinfra.NewHTTPTransport(config.Workflow.ResourceBaseURL, nil)
	default:
		local := workflow.NewLocalTransport()
		deps.FlightHandlers.RegisterLocal(local)
		deps.CarHandlers.RegisterLocal(local)
		deps.PaymentHandlers.RegisterLocal(local)
		deps.Transport = local
	}

	runtimeFor := func(executionID string) workflow.Runtime {
		return workflow.NewExecutor(executionID, deps.Journal, deps.Transport)
	}

	// Orchestrator
	deps.ReserveTrip = tripsapp.NewReserveTrip(
		tripsinfra.NewRuntimeFlightsClient(),
		tripsinfra.NewRuntimeCarsClient(),
		tripsinfra.NewRuntimePaymentsClient(),
		notifier,
	)
	deps.TripHandlers = tripshandlers.NewTripHandlers(deps.ReserveTrip, runtimeFor)

	// Queued intake
	deps.BookingRequestedHandler = tripshandlers.NewBookingRequestedHandler(
		deps.ReserveTrip, runtimeFor, eventPublisher)
	subscriber, err := sharedinfra.NewSQSEventSubscriberFromEnv(ctx,
		config.AWS.BookingQueueURL, deps.BookingRequestedHandler)
	if err != nil {
		return nil, fmt.Errorf("failed to create SQS subscriber: %w", err)
	}
	deps.EventSubscriber = subscriber

	return deps, nil
}

// Close releases held resources
func (d *Dependencies) Close() {
	if d.TelemetryShutdown != nil {
		d.TelemetryShutdown()
	}
	if d.DB != nil {
		d.DB.Close()
	}
}
