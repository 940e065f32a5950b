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

type PostgresShowtimeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowtimeRepository(db *pgxpool.Pool) *PostgresShowtimeRepository {
	return &PostgresShowtimeRepository{
		db: db,
	}
}

const showtimeDetailColumns = `
	s.id, s.movie_id, s.screen_id, s.start_time, s.price_per_seat,
	m.id, m.title, m.genre, m.language, m.duration, m.rating, m.poster_url,
	sc.id, sc.theater_id, sc.screen_number, sc.seat_layout,
	t.id, t.name, t.location`

func scanShowtimeDetail(row pgx.Row) (*domain.ShowtimeDetail, error) {
	var detail domain.ShowtimeDetail

	err := row.Scan(
		&detail.ID,
		&detail.MovieID,
		&detail.ScreenID,
		&detail.StartTime,
		&detail.PricePerSeat,
		&detail.Movie.ID,
		&detail.Movie.Title,
		&detail.Movie.Genre,
		&detail.Movie.Language,
		&detail.Movie.Duration,
		&detail.Movie.Rating,
		&detail.Movie.PosterUrl,
		&detail.Screen.ID,
		&detail.Screen.TheaterID,
		&detail.Screen.ScreenNumber,
		&detail.Screen.SeatLayout,
		&detail.Theater.ID,
		&detail.Theater.Name,
		&detail.Theater.Location,
	)
	if err != nil {
		return nil, err
	}

	return &detail, nil
}

func (p *PostgresShowtimeRepository) GetAll(ctx context.Context, filters domain.ShowtimeFilters) ([]*domain.ShowtimeDetail, error) {
	query := `SELECT` + showtimeDetailColumns + `
		FROM showtimes s
		JOIN movies m ON s.movie_id = m.id
		JOIN screens sc ON s.screen_id = sc.id
		JOIN theaters t ON sc.theater_id = t.id
		WHERE ($1 = 0 OR s.movie_id = $1)
			AND ($2 = 0 OR sc.theater_id = $2)
			AND ($3::date IS NULL OR s.start_time::date = $3::date)
		ORDER BY s.start_time
		LIMIT $4 OFFSET $5`

	rows, err := p.db.Query(
		ctx,
		query,
		filters.MovieID,
		filters.TheaterID,
		filters.Date,
		filters.Limit,
		filters.Skip,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	showtimes := []*domain.ShowtimeDetail{}

	for rows.Next() {
		detail, err := scanShowtimeDetail(rows)
		if err != nil {
			return nil, err
		}

		showtimes = append(showtimes, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return showtimes, nil
}

func (p *PostgresShowtimeRepository) GetById(ctx context.Context, id int) (*domain.ShowtimeDetail, error) {
	query := `SELECT` + showtimeDetailColumns + `
		FROM showtimes s
		JOIN movies m ON s.movie_id = m.id
		JOIN screens sc ON s.screen_id = sc.id
		JOIN theaters t ON sc.theater_id = t.id
		WHERE s.id = $1`

	detail, err := scanShowtimeDetail(p.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return detail, nil
}

func (p *PostgresShowtimeRepository) Create(ctx context.Context, showtime *domain.Showtime) error {
	query := `INSERT INTO showtimes (movie_id, screen_id, start_time, price_per_seat)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := p.db.QueryRow(
		ctx,
		query,
		showtime.MovieID,
		showtime.ScreenID,
		showtime.StartTime,
		showtime.PricePerSeat,
	).Scan(&showtime.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrShowtimeConflict
		}

		return err
	}

	return nil
}

func (p *PostgresShowtimeRepository) Update(ctx context.Context, showtime *domain.Showtime) error {
	query := `UPDATE showtimes
		SET movie_id = $1, screen_id = $2, start_time = $3, price_per_seat = $4
		WHERE id = $5`

	ct, err := p.db.Exec(
		ctx,
		query,
		showtime.MovieID,
		showtime.ScreenID,
		showtime.StartTime,
		showtime.PricePerSeat,
		showtime.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrShowtimeConflict
		}

		return err
	}

	if ct.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresShowtimeRepository) Delete(ctx context.Context, id int) error {
	ct, err := p.db.Exec(ctx, `DELETE FROM showtimes WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if ct.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
