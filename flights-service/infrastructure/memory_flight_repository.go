package infrastructure

import (
	"context"
	"sync"

	"github.com/voyago/booking-system/flights-service/domain"
	"github.com/voyago/booking-system/shared/models"
)

var _ domain.FlightRepository = (*MemoryFlightRepository)(nil)

// MemoryFlightRepository implements FlightRepository in memory, for tests
// and local development
type MemoryFlightRepository struct {
	mu      sync.RWMutex
	records map[string]*domain.FlightReservation
}

// NewMemoryFlightRepository creates an empty in-memory repository
func NewMemoryFlightRepository() *MemoryFlightRepository {
	return &MemoryFlightRepository{records: make(map[string]*domain.FlightReservation)}
}

func (r *MemoryFlightRepository) Insert(_ context.Context, reservation *domain.FlightReservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *reservation
	r.records[recordKey(reservation.TripID, reservation.BookingID)] = &clone
	return nil
}

func (r *MemoryFlightRepository) Confirm(_ context.Context, tripID, bookingID models.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[recordKey(tripID, bookingID)]
	if !ok {
		return domain.ErrReservationNotFound
	}
	record.Status = domain.StatusConfirmed
	record.Timestamps = record.Timestamps.Update()
	return nil
}

func (r *MemoryFlightRepository) Delete(_ context.Context, tripID, bookingID models.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, recordKey(tripID, bookingID))
	return nil
}

func (r *MemoryFlightRepository) FindByBookingID(_ context.Context, tripID, bookingID models.ID) (*domain.FlightReservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.records[recordKey(tripID, bookingID)]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	clone := *record
	return &clone, nil
}

// FindByTripID returns all reservations for the trip
func (r *MemoryFlightRepository) FindByTripID(_ context.Context, tripID models.ID) []*domain.FlightReservation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*domain.FlightReservation
	for _, record := range r.records {
		if record.TripID == tripID {
			clone := *record
			result = append(result, &clone)
		}
	}
	return result
}

func recordKey(tripID, bookingID models.ID) string {
	return tripID.String() + "/" + bookingID.String()
}
