package models

// Fault is a test-control field threaded through booking request payloads.
// Each service interprets exactly one value as an injected terminal failure
// for its own operation, which lets tests drive every compensation path
// deterministically. FaultNone (the zero value) disables injection.
type Fault string

const (
	FaultNone               Fault = ""
	FaultFlightReservation  Fault = "fail_flight_reservation"
	FaultFlightConfirmation Fault = "fail_flight_confirmation"
	FaultCarReservation     Fault = "fail_car_reservation"
	FaultCarConfirmation    Fault = "fail_car_confirmation"
	FaultPayment            Fault = "fail_payment"
	FaultNotification       Fault = "fail_notification"
)

// Is reports whether the fault matches the given target
func (f Fault) Is(target Fault) bool {
	return f == target
}
