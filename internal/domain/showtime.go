package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Showtime struct {
	ID           int
	MovieID      int
	ScreenID     int
	StartTime    time.Time
	PricePerSeat decimal.Decimal
}

// ShowtimeDetail is a showtime joined with its movie, screen and theater.
// Relations are materialized one way only; there are no back-references.
type ShowtimeDetail struct {
	Showtime
	Movie   Movie
	Screen  Screen
	Theater Theater
}

type ShowtimeFilters struct {
	Skip      int
	Limit     int
	MovieID   int
	TheaterID int
	Date      *time.Time
}

type ShowtimeRepository interface {
	GetAll(ctx context.Context, filters ShowtimeFilters) ([]*ShowtimeDetail, error)
	GetById(ctx context.Context, id int) (*ShowtimeDetail, error)
	Create(ctx context.Context, showtime *Showtime) error
	Update(ctx context.Context, showtime *Showtime) error
	Delete(ctx context.Context, id int) error
}
