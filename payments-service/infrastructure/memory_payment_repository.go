package infrastructure

import (
	"context"
	"sync"

	"github.com/voyago/booking-system/payments-service/domain"
	"github.com/voyago/booking-system/shared/models"
)

var _ domain.PaymentRepository = (*MemoryPaymentRepository)(nil)

// MemoryPaymentRepository implements PaymentRepository in memory, for tests
// and local development
type MemoryPaymentRepository struct {
	mu      sync.RWMutex
	records map[string]*domain.Payment
}

// NewMemoryPaymentRepository creates an empty in-memory repository
func NewMemoryPaymentRepository() *MemoryPaymentRepository {
	return &MemoryPaymentRepository{records: make(map[string]*domain.Payment)}
}

func (r *MemoryPaymentRepository) Insert(_ context.Context, payment *domain.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *payment
	r.records[recordKey(payment.TripID, payment.PaymentID)] = &clone
	return nil
}

func (r *MemoryPaymentRepository) Delete(_ context.Context, tripID, paymentID models.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, recordKey(tripID, paymentID))
	return nil
}

func (r *MemoryPaymentRepository) FindByPaymentID(_ context.Context, tripID, paymentID models.ID) (*domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.records[recordKey(tripID, paymentID)]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	clone := *record
	return &clone, nil
}

func recordKey(tripID, paymentID models.ID) string {
	return tripID.String() + "/" + paymentID.String()
}
