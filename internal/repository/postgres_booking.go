package repository

import (
	"context"
	"errors"

	"github.com/Gags-1/movie-booking-backend/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

// Create inserts the booking and one seat row per requested seat in a single
// transaction. The unique index on booking_seats (showtime_id, seat_label) is
// the serialization point for concurrent bookings: if another transaction
// already holds any of the seats, the insert fails and the whole booking
// rolls back.
func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking, seats domain.SeatSet) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `INSERT INTO bookings (user_id, showtime_id, seats_booked, total_price, status)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at`

		err := tx.QueryRow(
			ctx,
			query,
			booking.UserID,
			booking.ShowtimeID,
			booking.SeatsBooked,
			booking.TotalPrice,
			booking.Status,
		).Scan(&booking.ID, &booking.CreatedAt)

		if err != nil {
			return err
		}

		rows := make([][]any, 0, len(seats))
		for _, seat := range seats {
			rows = append(rows, []any{booking.ID, booking.ShowtimeID, seat})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"booking_seats"},
			[]string{"booking_id", "showtime_id", "seat_label"},
			pgx.CopyFromRows(rows),
		)

		return err
	})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrSeatAlreadyReserved
		}

		return err
	}

	return nil
}

func (p *PostgresBookingRepository) GetById(ctx context.Context, id int) (*domain.Booking, error) {
	query := `SELECT id, user_id, showtime_id, seats_booked, total_price, status, created_at
		FROM bookings
		WHERE id = $1`

	var booking domain.Booking

	err := p.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.ShowtimeID,
		&booking.SeatsBooked,
		&booking.TotalPrice,
		&booking.Status,
		&booking.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &booking, nil
}

const bookingDetailColumns = `
	b.id, b.user_id, b.showtime_id, b.seats_booked, b.total_price, b.status, b.created_at,` +
	showtimeDetailColumns

const bookingDetailJoins = `
	FROM bookings b
	JOIN showtimes s ON b.showtime_id = s.id
	JOIN movies m ON s.movie_id = m.id
	JOIN screens sc ON s.screen_id = sc.id
	JOIN theaters t ON sc.theater_id = t.id`

func scanBookingDetail(row pgx.Row) (*domain.BookingDetail, error) {
	var detail domain.BookingDetail

	err := row.Scan(
		&detail.ID,
		&detail.UserID,
		&detail.ShowtimeID,
		&detail.SeatsBooked,
		&detail.TotalPrice,
		&detail.Status,
		&detail.CreatedAt,
		&detail.Showtime.ID,
		&detail.Showtime.MovieID,
		&detail.Showtime.ScreenID,
		&detail.Showtime.StartTime,
		&detail.Showtime.PricePerSeat,
		&detail.Showtime.Movie.ID,
		&detail.Showtime.Movie.Title,
		&detail.Showtime.Movie.Genre,
		&detail.Showtime.Movie.Language,
		&detail.Showtime.Movie.Duration,
		&detail.Showtime.Movie.Rating,
		&detail.Showtime.Movie.PosterUrl,
		&detail.Showtime.Screen.ID,
		&detail.Showtime.Screen.TheaterID,
		&detail.Showtime.Screen.ScreenNumber,
		&detail.Showtime.Screen.SeatLayout,
		&detail.Showtime.Theater.ID,
		&detail.Showtime.Theater.Name,
		&detail.Showtime.Theater.Location,
	)
	if err != nil {
		return nil, err
	}

	return &detail, nil
}

func (p *PostgresBookingRepository) GetByIdAndUser(ctx context.Context, id, userId int) (*domain.BookingDetail, error) {
	query := `SELECT` + bookingDetailColumns + bookingDetailJoins + `
		WHERE b.id = $1 AND b.user_id = $2`

	detail, err := scanBookingDetail(p.db.QueryRow(ctx, query, id, userId))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return detail, nil
}

func (p *PostgresBookingRepository) GetAllByUser(
	ctx context.Context,
	userId int,
	filters domain.BookingFilters) ([]*domain.BookingDetail, error) {

	query := `SELECT` + bookingDetailColumns + bookingDetailJoins + `
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := p.db.Query(ctx, query, userId, filters.Limit, filters.Skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []*domain.BookingDetail{}

	for rows.Next() {
		detail, err := scanBookingDetail(rows)
		if err != nil {
			return nil, err
		}

		bookings = append(bookings, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (p *PostgresBookingRepository) GetActiveByShowtime(ctx context.Context, showtimeId int) ([]*domain.Booking, error) {
	query := `SELECT id, user_id, showtime_id, seats_booked, total_price, status, created_at
		FROM bookings
		WHERE showtime_id = $1 AND status <> 'cancelled'`

	rows, err := p.db.Query(ctx, query, showtimeId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []*domain.Booking{}

	for rows.Next() {
		var booking domain.Booking

		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.ShowtimeID,
			&booking.SeatsBooked,
			&booking.TotalPrice,
			&booking.Status,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		bookings = append(bookings, &booking)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

// Cancel applies the cancellation side effects atomically: a successful
// payment reverts to pending as a refund marker, the booking is marked
// cancelled, and its seat rows are released for rebooking.
func (p *PostgresBookingRepository) Cancel(ctx context.Context, booking *domain.Booking) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(
			ctx,
			`UPDATE payments SET status = $1 WHERE booking_id = $2 AND status = $3`,
			domain.PaymentStatusPending,
			booking.ID,
			domain.PaymentStatusSuccess,
		)
		if err != nil {
			return err
		}

		ct, err := tx.Exec(
			ctx,
			`UPDATE bookings SET status = $1 WHERE id = $2`,
			domain.BookingStatusCancelled,
			booking.ID,
		)
		if err != nil {
			return err
		}

		if ct.RowsAffected() == 0 {
			return domain.ErrRecordNotFound
		}

		_, err = tx.Exec(ctx, `DELETE FROM booking_seats WHERE booking_id = $1`, booking.ID)

		return err
	})

	if err != nil {
		return err
	}

	booking.Status = domain.BookingStatusCancelled

	return nil
}
