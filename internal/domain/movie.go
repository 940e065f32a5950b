package domain

import "context"

type Movie struct {
	ID        int
	Title     string
	Genre     string
	Language  string
	Duration  int
	Rating    *float64
	PosterUrl *string
}

type MovieFilters struct {
	Skip  int
	Limit int
	Genre string
}

type MovieRepository interface {
	GetAll(ctx context.Context, filters MovieFilters) ([]*Movie, error)
	GetById(ctx context.Context, id int) (*Movie, error)
	Create(ctx context.Context, movie *Movie) error
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, id int) error
}
