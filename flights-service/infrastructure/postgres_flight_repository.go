package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/voyago/booking-system/flights-service/domain"
	"github.com/voyago/booking-system/shared/models"
)

var _ domain.FlightRepository = (*PostgresFlightRepository)(nil)

// PostgresFlightRepository implements FlightRepository using PostgreSQL
type PostgresFlightRepository struct {
	db *sqlx.DB
}

// NewPostgresFlightRepository creates a new PostgresFlightRepository
func NewPostgresFlightRepository(db *sqlx.DB) *PostgresFlightRepository {
	return &PostgresFlightRepository{db: db}
}

// postgresFlightReservation represents a reservation row
type postgresFlightReservation struct {
	TripID     string    `db:"trip_id"`
	BookingID  string    `db:"booking_id"`
	DepartCity string    `db:"depart_city"`
	DepartTime time.Time `db:"depart_time"`
	ArriveCity string    `db:"arrive_city"`
	ArriveTime time.Time `db:"arrive_time"`
	Status     string    `db:"transaction_status"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// Insert writes a new reservation row
func (r *PostgresFlightRepository) Insert(ctx context.Context, reservation *domain.FlightReservation) error {
	query := `
		INSERT INTO flight_reservations (
			trip_id, booking_id, depart_city, depart_time,
			arrive_city, arrive_time, transaction_status,
			created_at, updated_at
		) VALUES (
			:trip_id, :booking_id, :depart_city, :depart_time,
			:arrive_city, :arrive_time, :transaction_status,
			:created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, toPostgresFlight(reservation))
	if err != nil {
		return errors.Wrap(err, "failed to insert flight reservation")
	}

	return nil
}

// Confirm updates the reservation status to confirmed
func (r *PostgresFlightRepository) Confirm(ctx context.Context, tripID, bookingID models.ID) error {
	query := `
		UPDATE flight_reservations
		SET transaction_status = $1, updated_at = $2
		WHERE trip_id = $3 AND booking_id = $4`

	result, err := r.db.ExecContext(ctx, query,
		string(domain.StatusConfirmed), time.Now(), tripID.String(), bookingID.String())
	if err != nil {
		return errors.Wrap(err, "failed to confirm flight reservation")
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

// Delete removes the reservation row; missing rows are not an error
func (r *PostgresFlightRepository) Delete(ctx context.Context, tripID, bookingID models.ID) error {
	query := `DELETE FROM flight_reservations WHERE trip_id = $1 AND booking_id = $2`

	_, err := r.db.ExecContext(ctx, query, tripID.String(), bookingID.String())
	if err != nil {
		return errors.Wrap(err, "failed to delete flight reservation")
	}

	return nil
}

// FindByBookingID returns the reservation or ErrReservationNotFound
func (r *PostgresFlightRepository) FindByBookingID(ctx context.Context, tripID, bookingID models.ID) (*domain.FlightReservation, error) {
	query := `
		SELECT trip_id, booking_id, depart_city, depart_time,
		       arrive_city, arrive_time, transaction_status,
		       created_at, updated_at
		FROM flight_reservations
		WHERE trip_id = $1 AND booking_id = $2`

	var row postgresFlightReservation
	err := r.db.GetContext(ctx, &row, query, tripID.String(), bookingID.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrReservationNotFound
		}
		return nil, errors.Wrap(err, "failed to find flight reservation")
	}

	return toDomainFlight(&row), nil
}

func toPostgresFlight(reservation *domain.FlightReservation) *postgresFlightReservation {
	return &postgresFlightReservation{
		TripID:     reservation.TripID.String(),
		BookingID:  reservation.BookingID.String(),
		DepartCity: reservation.Itinerary.DepartCity,
		DepartTime: reservation.Itinerary.DepartTime,
		ArriveCity: reservation.Itinerary.ArriveCity,
		ArriveTime: reservation.Itinerary.ArriveTime,
		Status:     string(reservation.Status),
		CreatedAt:  reservation.Timestamps.CreatedAt,
		UpdatedAt:  reservation.Timestamps.UpdatedAt,
	}
}

func toDomainFlight(row *postgresFlightReservation) *domain.FlightReservation {
	return &domain.FlightReservation{
		TripID:    models.ID(row.TripID),
		BookingID: models.ID(row.BookingID),
		Itinerary: domain.Itinerary{
			DepartCity: row.DepartCity,
			DepartTime: row.DepartTime,
			ArriveCity: row.ArriveCity,
			ArriveTime: row.ArriveTime,
		},
		Status: domain.TransactionStatus(row.Status),
		Timestamps: models.Timestamps{
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		},
	}
}
