package domain

import (
	"time"

	"github.com/voyago/booking-system/shared/models"
)

// Notification messages sent when a booking reaches a terminal state
const (
	SuccessMessage = "Your Travel Reservation is Successful"
	FailureMessage = "Your Travel Reservation Failed"
)

// FlightDetails is the flight leg requested for the trip
type FlightDetails struct {
	DepartCity string    `json:"depart_city"`
	DepartTime time.Time `json:"depart_time"`
	ArriveCity string    `json:"arrive_city"`
	ArriveTime time.Time `json:"arrive_time"`
}

// CarDetails is the rental requested for the trip
type CarDetails struct {
	Vehicle    string    `json:"vehicle"`
	PickupCity string    `json:"pickup_city"`
	PickupTime time.Time `json:"pickup_time"`
	ReturnTime time.Time `json:"return_time"`
}

// TripDetails is the full booking request. A trip has no persisted record of
// its own: it exists as the union of the resource records sharing its id.
type TripDetails struct {
	Flight FlightDetails
	Car    CarDetails
	Amount models.Money
}

// ApplyDefaults fills the fields the caller left blank
func (t *TripDetails) ApplyDefaults() {
	if t.Flight.DepartCity == "" {
		t.Flight.DepartCity = "Detroit"
	}
	if t.Flight.ArriveCity == "" {
		t.Flight.ArriveCity = "Frankfurt"
	}
	if t.Car.Vehicle == "" {
		t.Car.Vehicle = "BMW"
	}
	if t.Car.PickupCity == "" {
		t.Car.PickupCity = t.Flight.ArriveCity
	}
}
