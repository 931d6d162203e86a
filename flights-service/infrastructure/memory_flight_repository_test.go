package infrastructure

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/booking-system/flights-service/domain"
	"github.com/voyago/booking-system/shared/models"
)

func TestMemoryFlightRepository_Lifecycle(t *testing.T) {
	repository := NewMemoryFlightRepository()
	ctx := context.Background()

	reservation := domain.NewFlightReservation("trip-1", domain.Itinerary{
		DepartCity: "Detroit",
		ArriveCity: "Frankfurt",
	})
	require.NoError(t, repository.Insert(ctx, reservation))

	stored, err := repository.FindByBookingID(ctx, "trip-1", reservation.BookingID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
	assert.Equal(t, "Detroit", stored.Itinerary.DepartCity)

	require.NoError(t, repository.Confirm(ctx, "trip-1", reservation.BookingID))
	stored, err = repository.FindByBookingID(ctx, "trip-1", reservation.BookingID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, stored.Status)

	require.NoError(t, repository.Delete(ctx, "trip-1", reservation.BookingID))
	_, err = repository.FindByBookingID(ctx, "trip-1", reservation.BookingID)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestMemoryFlightRepository_ConfirmMissingReservation(t *testing.T) {
	repository := NewMemoryFlightRepository()

	err := repository.Confirm(context.Background(), "trip-1", models.GenerateUUID())
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestMemoryFlightRepository_DeleteMissingReservationIsNoOp(t *testing.T) {
	repository := NewMemoryFlightRepository()

	assert.NoError(t, repository.Delete(context.Background(), "trip-1", models.GenerateUUID()))
}
