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

type PostgresTheaterRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTheaterRepository(db *pgxpool.Pool) *PostgresTheaterRepository {
	return &PostgresTheaterRepository{
		db: db,
	}
}

func (p *PostgresTheaterRepository) GetAll(ctx context.Context, filters domain.TheaterFilters) ([]*domain.Theater, error) {
	query := `SELECT id, name, location
		FROM theaters
		WHERE ($1 = '' OR location ILIKE '%' || $1 || '%')
		ORDER BY id
		LIMIT $2 OFFSET $3`

	rows, err := p.db.Query(ctx, query, filters.Location, filters.Limit, filters.Skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	theaters := []*domain.Theater{}

	for rows.Next() {
		var theater domain.Theater

		err := rows.Scan(&theater.ID, &theater.Name, &theater.Location)
		if err != nil {
			return nil, err
		}

		theaters = append(theaters, &theater)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return theaters, nil
}

func (p *PostgresTheaterRepository) GetById(ctx context.Context, id int) (*domain.Theater, error) {
	query := `SELECT id, name, location FROM theaters WHERE id = $1`

	var theater domain.Theater

	err := p.db.QueryRow(ctx, query, id).Scan(&theater.ID, &theater.Name, &theater.Location)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &theater, nil
}

func (p *PostgresTheaterRepository) Create(ctx context.Context, theater *domain.Theater) error {
	query := `INSERT INTO theaters (name, location)
		VALUES ($1, $2)
		RETURNING id`

	return p.db.QueryRow(ctx, query, theater.Name, theater.Location).Scan(&theater.ID)
}

func (p *PostgresTheaterRepository) Update(ctx context.Context, theater *domain.Theater) error {
	query := `UPDATE theaters SET name = $1, location = $2 WHERE id = $3`

	ct, err := p.db.Exec(ctx, query, theater.Name, theater.Location, theater.ID)
	if err != nil {
		return err
	}

	if ct.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresTheaterRepository) Delete(ctx context.Context, id int) error {
	ct, err := p.db.Exec(ctx, `DELETE FROM theaters WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if ct.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresTheaterRepository) GetScreens(ctx context.Context, theaterId int) ([]*domain.Screen, error) {
	query := `SELECT id, theater_id, screen_number, seat_layout
		FROM screens
		WHERE theater_id = $1
		ORDER BY screen_number`

	rows, err := p.db.Query(ctx, query, theaterId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	screens := []*domain.Screen{}

	for rows.Next() {
		var screen domain.Screen

		err := rows.Scan(&screen.ID, &screen.TheaterID, &screen.ScreenNumber, &screen.SeatLayout)
		if err != nil {
			return nil, err
		}

		screens = append(screens, &screen)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return screens, nil
}

func (p *PostgresTheaterRepository) GetScreenById(ctx context.Context, id int) (*domain.Screen, error) {
	query := `SELECT id, theater_id, screen_number, seat_layout FROM screens WHERE id = $1`

	var screen domain.Screen

	err := p.db.QueryRow(ctx, query, id).Scan(
		&screen.ID,
		&screen.TheaterID,
		&screen.ScreenNumber,
		&screen.SeatLayout,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &screen, nil
}

func (p *PostgresTheaterRepository) CreateScreen(ctx context.Context, screen *domain.Screen) error {
	query := `INSERT INTO screens (theater_id, screen_number, seat_layout)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := p.db.QueryRow(
		ctx,
		query,
		screen.TheaterID,
		screen.ScreenNumber,
		screen.SeatLayout,
	).Scan(&screen.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrScreenNumberTaken
		}

		return err
	}

	return nil
}
