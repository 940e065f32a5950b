package repository

import (
	"context"
	"errors"

	"github.com/Gags-1/movie-booking-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresPaymentRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPaymentRepository(db *pgxpool.Pool) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{
		db: db,
	}
}

func (p *PostgresPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `INSERT INTO payments (booking_id, amount, status, provider_ref)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	return p.db.QueryRow(
		ctx,
		query,
		payment.BookingID,
		payment.Amount,
		payment.Status,
		payment.ProviderRef,
	).Scan(&payment.ID, &payment.CreatedAt)
}

func (p *PostgresPaymentRepository) GetById(ctx context.Context, id int) (*domain.Payment, error) {
	query := `SELECT id, booking_id, amount, status, provider_ref, created_at
		FROM payments
		WHERE id = $1`

	return p.scanPayment(p.db.QueryRow(ctx, query, id))
}

func (p *PostgresPaymentRepository) GetByBookingId(ctx context.Context, bookingId int) (*domain.Payment, error) {
	query := `SELECT id, booking_id, amount, status, provider_ref, created_at
		FROM payments
		WHERE booking_id = $1`

	return p.scanPayment(p.db.QueryRow(ctx, query, bookingId))
}

func (p *PostgresPaymentRepository) scanPayment(row pgx.Row) (*domain.Payment, error) {
	var payment domain.Payment

	err := row.Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.Amount,
		&payment.Status,
		&payment.ProviderRef,
		&payment.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &payment, nil
}

// Confirm flips the payment to success and its booking to confirmed in one
// transaction. The booking row is locked first so a concurrent cancellation
// cannot interleave between the two updates.
func (p *PostgresPaymentRepository) Confirm(ctx context.Context, payment *domain.Payment) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var bookingStatus domain.BookingStatus

		err := tx.QueryRow(
			ctx,
			`SELECT status FROM bookings WHERE id = $1 FOR UPDATE`,
			payment.BookingID,
		).Scan(&bookingStatus)

		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		if bookingStatus == domain.BookingStatusCancelled {
			return domain.ErrBookingCancelled
		}

		_, err = tx.Exec(
			ctx,
			`UPDATE payments SET status = $1 WHERE id = $2`,
			domain.PaymentStatusSuccess,
			payment.ID,
		)
		if err != nil {
			return err
		}

		_, err = tx.Exec(
			ctx,
			`UPDATE bookings SET status = $1 WHERE id = $2`,
			domain.BookingStatusConfirmed,
			payment.BookingID,
		)

		return err
	})

	if err != nil {
		return err
	}

	payment.Status = domain.PaymentStatusSuccess

	return nil
}
