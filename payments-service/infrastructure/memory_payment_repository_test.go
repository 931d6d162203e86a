package infrastructure

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/booking-system/payments-service/domain"
	"github.com/voyago/booking-system/shared/models"
)

func TestMemoryPaymentRepository_Lifecycle(t *testing.T) {
	repository := NewMemoryPaymentRepository()
	ctx := context.Background()

	payment := domain.NewPayment("trip-1", "payment-1", models.Money{Amount: 75000, Currency: "USD"})
	require.NoError(t, repository.Insert(ctx, payment))

	stored, err := repository.FindByPaymentID(ctx, "trip-1", "payment-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, stored.Status)
	assert.Equal(t, int64(75000), stored.Amount.Amount)
	assert.Equal(t, "USD", stored.Amount.Currency)

	require.NoError(t, repository.Delete(ctx, "trip-1", "payment-1"))
	_, err = repository.FindByPaymentID(ctx, "trip-1", "payment-1")
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}

func TestMemoryPaymentRepository_DeleteMissingPaymentIsNoOp(t *testing.T) {
	repository := NewMemoryPaymentRepository()

	assert.NoError(t, repository.Delete(context.Background(), "trip-1", "payment-1"))
}
