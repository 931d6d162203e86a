package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/voyago/booking-system/cars-service/domain"
	"github.com/voyago/booking-system/shared/models"
)

var _ domain.CarRepository = (*PostgresCarRepository)(nil)

// PostgresCarRepository implements CarRepository using PostgreSQL
type PostgresCarRepository struct {
	db *sqlx.DB
}

// NewPostgresCarRepository creates a new PostgresCarRepository
func NewPostgresCarRepository(db *sqlx.DB) *PostgresCarRepository {
	return &PostgresCarRepository{db: db}
}

// postgresCarReservation represents a rental row
type postgresCarReservation struct {
	TripID     string    `db:"trip_id"`
	BookingID  string    `db:"booking_id"`
	Vehicle    string    `db:"vehicle"`
	PickupCity string    `db:"pickup_city"`
	PickupTime time.Time `db:"pickup_time"`
	ReturnTime time.Time `db:"return_time"`
	Status     string    `db:"transaction_status"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// Insert writes a new rental row
func (r *PostgresCarRepository) Insert(ctx context.Context, reservation *domain.CarReservation) error {
	query := `
		INSERT INTO car_reservations (
			trip_id, booking_id, vehicle, pickup_city,
			pickup_time, return_time, transaction_status,
			created_at, updated_at
		) VALUES (
			:trip_id, :booking_id, :vehicle, :pickup_city,
			:pickup_time, :return_time, :transaction_status,
			:created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, toPostgresCar(reservation))
	if err != nil {
		return errors.Wrap(err, "failed to insert car reservation")
	}

	return nil
}

// Confirm updates the rental status to confirmed
func (r *PostgresCarRepository) Confirm(ctx context.Context, tripID, bookingID models.ID) error {
	query := `
		UPDATE car_reservations
		SET transaction_status = $1, updated_at = $2
		WHERE trip_id = $3 AND booking_id = $4`

	result, err := r.db.ExecContext(ctx, query,
		string(domain.StatusConfirmed), time.Now(), tripID.String(), bookingID.String())
	if err != nil {
		return errors.Wrap(err, "failed to confirm car reservation")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read rows affected")
	}
	if affected == 0 {
		return domain.ErrReservationNotFound
	}

	return nil
}

// Delete removes the rental row; missing rows are not an error
func (r *PostgresCarRepository) Delete(ctx context.Context, tripID, bookingID models.ID) error {
	query := `DELETE FROM car_reservations WHERE trip_id = $1 AND booking_id = $2`

	_, err := r.db.ExecContext(ctx, query, tripID.String(), bookingID.String())
	if err != nil {
		return errors.Wrap(err, "failed to delete car reservation")
	}

	return nil
}

// FindByBookingID returns the rental or ErrReservationNotFound
func (r *PostgresCarRepository) FindByBookingID(ctx context.Context, tripID, bookingID models.ID) (*domain.CarReservation, error) {
	query := `
		SELECT trip_id, booking_id, vehicle, pickup_city,
		       pickup_time, return_time, transaction_status,
		       created_at, updated_at
		FROM car_reservations
		WHERE trip_id = $1 AND booking_id = $2`

	var row postgresCarReservation
	err := r.db.GetContext(ctx, &row, query, tripID.String(), bookingID.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrReservationNotFound
		}
		return nil, errors.Wrap(err, "failed to find car reservation")
	}

	return toDomainCar(&row), nil
}

func toPostgresCar(reservation *domain.CarReservation) *postgresCarReservation {
	return &postgresCarReservation{
		TripID:     reservation.TripID.String(),
		BookingID:  reservation.BookingID.String(),
		Vehicle:    reservation.Rental.Vehicle,
		PickupCity: reservation.Rental.PickupCity,
		PickupTime: reservation.Rental.PickupTime,
		ReturnTime: reservation.Rental.ReturnTime,
		Status:     string(reservation.Status),
		CreatedAt:  reservation.Timestamps.CreatedAt,
		UpdatedAt:  reservation.Timestamps.UpdatedAt,
	}
}

func toDomainCar(row *postgresCarReservation) *domain.CarReservation {
	return &domain.CarReservation{
		TripID:    models.ID(row.TripID),
		BookingID: models.ID(row.BookingID),
		Rental: domain.Rental{
			Vehicle:    row.Vehicle,
			PickupCity: row.PickupCity,
			PickupTime: row.PickupTime,
			ReturnTime: row.ReturnTime,
		},
		Status: domain.TransactionStatus(row.Status),
		Timestamps: models.Timestamps{
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		},
	}
}
