package domain

import "context"

type Theater struct {
	ID       int
	Name     string
	Location string
}

// Screen belongs to a theater and owns a fixed seat layout: the ordered set
// of seat identifiers available in the room, stored in serialized form.
// The layout is treated as immutable once bookings exist against it.
type Screen struct {
	ID           int
	TheaterID    int
	ScreenNumber int
	SeatLayout   string
}

type TheaterFilters struct {
	Skip     int
	Limit    int
	Location string
}

type TheaterRepository interface {
	GetAll(ctx context.Context, filters TheaterFilters) ([]*Theater, error)
	GetById(ctx context.Context, id int) (*Theater, error)
	Create(ctx context.Context, theater *Theater) error
	Update(ctx context.Context, theater *Theater) error
	Delete(ctx context.Context, id int) error

	GetScreens(ctx context.Context, theaterId int) ([]*Screen, error)
	GetScreenById(ctx context.Context, id int) (*Screen, error)
	CreateScreen(ctx context.Context, screen *Screen) error
}
