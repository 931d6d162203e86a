package infrastructure

import (
	"context"
	"sync"

	"github.com/voyago/booking-system/cars-service/domain"
	"github.com/voyago/booking-system/shared/models"
)

var _ domain.CarRepository = (*MemoryCarRepository)(nil)

// MemoryCarRepository implements CarRepository in memory, for tests and
// local development
type MemoryCarRepository struct {
	mu      sync.RWMutex
	records map[string]*domain.CarReservation
}

// NewMemoryCarRepository creates an empty in-memory repository
func NewMemoryCarRepository() *MemoryCarRepository {
	return &MemoryCarRepository{records: make(map[string]*domain.CarReservation)}
}

func (r *MemoryCarRepository) Insert(_ context.Context, reservation *domain.CarReservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *reservation
	r.records[recordKey(reservation.TripID, reservation.BookingID)] = &clone
	return nil
}

func (r *MemoryCarRepository) Confirm(_ context.Context, tripID, bookingID models.ID) error {
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

func (r *MemoryCarRepository) Delete(_ context.Context, tripID, bookingID models.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, recordKey(tripID, bookingID))
	return nil
}

func (r *MemoryCarRepository) FindByBookingID(_ context.Context, tripID, bookingID models.ID) (*domain.CarReservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.records[recordKey(tripID, bookingID)]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	clone := *record
	return &clone, nil
}

// FindByTripID returns all rentals for the trip
func (r *MemoryCarRepository) FindByTripID(_ context.Context, tripID models.ID) []*domain.CarReservation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*domain.CarReservation
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
