package repository

import (
	"context"
	"errors"

	"github.com/Gags-1/movie-booking-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) GetAll(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, error) {
	query := `SELECT id, title, genre, language, duration, rating, poster_url
		FROM movies
		WHERE ($1 = '' OR genre ILIKE '%' || $1 || '%')
		ORDER BY id
		LIMIT $2 OFFSET $3`

	rows, err := p.db.Query(ctx, query, filters.Genre, filters.Limit, filters.Skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []*domain.Movie{}

	for rows.Next() {
		var movie domain.Movie

		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Genre,
			&movie.Language,
			&movie.Duration,
			&movie.Rating,
			&movie.PosterUrl,
		)
		if err != nil {
			return nil, err
		}

		movies = append(movies, &movie)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

func (p *PostgresMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	query := `SELECT id, title, genre, language, duration, rating, poster_url
		FROM movies
		WHERE id = $1`

	var movie domain.Movie

	err := p.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Genre,
		&movie.Language,
		&movie.Duration,
		&movie.Rating,
		&movie.PosterUrl,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &movie, nil
}

func (p *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `INSERT INTO movies (title, genre, language, duration, rating, poster_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	return p.db.QueryRow(
		ctx,
		query,
		movie.Title,
		movie.Genre,
		movie.Language,
		movie.Duration,
		movie.Rating,
		movie.PosterUrl,
	).Scan(&movie.ID)
}

func (p *PostgresMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	query := `UPDATE movies
		SET title = $1, genre = $2, language = $3, duration = $4, rating = $5, poster_url = $6
		WHERE id = $7`

	ct, err := p.db.Exec(
		ctx,
		query,
		movie.Title,
		movie.Genre,
		movie.Language,
		movie.Duration,
		movie.Rating,
		movie.PosterUrl,
		movie.ID,
	)
	if err != nil {
		return err
	}

	if ct.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresMovieRepository) Delete(ctx context.Context, id int) error {
	ct, err := p.db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if ct.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
