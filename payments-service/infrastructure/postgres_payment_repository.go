package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/voyago/booking-system/payments-service/domain"
	"github.com/voyago/booking-system/shared/models"
)

var _ domain.PaymentRepository = (*PostgresPaymentRepository)(nil)

// PostgresPaymentRepository implements PaymentRepository using PostgreSQL
type PostgresPaymentRepository struct {
	db *sqlx.DB
}

// NewPostgresPaymentRepository creates a new PostgresPaymentRepository
func NewPostgresPaymentRepository(db *sqlx.DB) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{db: db}
}

// postgresPayment represents a payment row
type postgresPayment struct {
	TripID    string    `db:"trip_id"`
	PaymentID string    `db:"payment_id"`
	Amount    int64     `db:"amount"`
	Currency  string    `db:"currency"`
	Status    string    `db:"payment_status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Insert writes a new payment row
func (r *PostgresPaymentRepository) Insert(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (
			trip_id, payment_id, amount, currency, payment_status,
			created_at, updated_at
		) VALUES (
			:trip_id, :payment_id, :amount, :currency, :payment_status,
			:created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, toPostgresPayment(payment))
	if err != nil {
		return errors.Wrap(err, "failed to insert payment")
	}

	return nil
}

// Delete removes the payment row; missing rows are not an error
func (r *PostgresPaymentRepository) Delete(ctx context.Context, tripID, paymentID models.ID) error {
	query := `DELETE FROM payments WHERE trip_id = $1 AND payment_id = $2`

	_, err := r.db.ExecContext(ctx, query, tripID.String(), paymentID.String())
	if err != nil {
		return errors.Wrap(err, "failed to delete payment")
	}

	return nil
}

// FindByPaymentID returns the payment or ErrPaymentNotFound
func (r *PostgresPaymentRepository) FindByPaymentID(ctx context.Context, tripID, paymentID models.ID) (*domain.Payment, error) {
	query := `
		SELECT trip_id, payment_id, amount, currency, payment_status,
		       created_at, updated_at
		FROM payments
		WHERE trip_id = $1 AND payment_id = $2`

	var row postgresPayment
	err := r.db.GetContext(ctx, &row, query, tripID.String(), paymentID.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, errors.Wrap(err, "failed to find payment")
	}

	return toDomainPayment(&row), nil
}

func toPostgresPayment(payment *domain.Payment) *postgresPayment {
	return &postgresPayment{
		TripID:    payment.TripID.String(),
		PaymentID: payment.PaymentID.String(),
		Amount:    payment.Amount.Amount,
		Currency:  payment.Amount.Currency,
		Status:    string(payment.Status),
		CreatedAt: payment.Timestamps.CreatedAt,
		UpdatedAt: payment.Timestamps.UpdatedAt,
	}
}

func toDomainPayment(row *postgresPayment) *domain.Payment {
	return &domain.Payment{
		TripID:    models.ID(row.TripID),
		PaymentID: models.ID(row.PaymentID),
		Amount:    models.NewMoney(row.Amount, row.Currency),
		Status:    domain.PaymentStatus(row.Status),
		Timestamps: models.Timestamps{
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		},
	}
}
