package infrastructure

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/booking-system/cars-service/domain"
	"github.com/voyago/booking-system/shared/models"
)

func TestMemoryCarRepository_Lifecycle(t *testing.T) {
	repository := NewMemoryCarRepository()
	ctx := context.Background()

	reservation := domain.NewCarReservation("trip-1", domain.Rental{
		Vehicle:    "BMW",
		PickupCity: "Frankfurt",
	})
	require.NoError(t, repository.Insert(ctx, reservation))

	stored, err := repository.FindByBookingID(ctx, "trip-1", reservation.BookingID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
	assert.Equal(t, "BMW", stored.Rental.Vehicle)

	require.NoError(t, repository.Confirm(ctx, "trip-1", reservation.BookingID))
	stored, err = repository.FindByBookingID(ctx, "trip-1", reservation.BookingID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, stored.Status)

	require.NoError(t, repository.Delete(ctx, "trip-1", reservation.BookingID))
	_, err = repository.FindByBookingID(ctx, "trip-1", reservation.BookingID)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestMemoryCarRepository_ConfirmMissingReservation(t *testing.T) {
	repository := NewMemoryCarRepository()

	err := repository.Confirm(context.Background(), "trip-1", models.GenerateUUID())
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestMemoryCarRepository_DeleteMissingReservationIsNoOp(t *testing.T) {
	repository := NewMemoryCarRepository()

	assert.NoError(t, repository.Delete(context.Background(), "trip-1", models.GenerateUUID()))
}
