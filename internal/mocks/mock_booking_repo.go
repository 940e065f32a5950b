package mocks

import (
	"context"

	"github.com/Gags-1/movie-booking-backend/internal/domain"
)

type MockBookingRepo struct {
	domain.BookingRepository
	CreateFunc              func(ctx context.Context, booking *domain.Booking, seats domain.SeatSet) error
	GetByIdFunc             func(ctx context.Context, id int) (*domain.Booking, error)
	GetByIdAndUserFunc      func(ctx context.Context, id, userId int) (*domain.BookingDetail, error)
	GetAllByUserFunc        func(ctx context.Context, userId int, filters domain.BookingFilters) ([]*domain.BookingDetail, error)
	GetActiveByShowtimeFunc func(ctx context.Context, showtimeId int) ([]*domain.Booking, error)
	CancelFunc              func(ctx context.Context, booking *domain.Booking) error
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking, seats domain.SeatSet) error {
	return m.CreateFunc(ctx, booking, seats)
}

func (m *MockBookingRepo) GetById(ctx context.Context, id int) (*domain.Booking, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockBookingRepo) GetByIdAndUser(ctx context.Context, id, userId int) (*domain.BookingDetail, error) {
	return m.GetByIdAndUserFunc(ctx, id, userId)
}

func (m *MockBookingRepo) GetAllByUser(ctx context.Context, userId int, filters domain.BookingFilters) ([]*domain.BookingDetail, error) {
	return m.GetAllByUserFunc(ctx, userId, filters)
}

func (m *MockBookingRepo) GetActiveByShowtime(ctx context.Context, showtimeId int) ([]*domain.Booking, error) {
	return m.GetActiveByShowtimeFunc(ctx, showtimeId)
}

func (m *MockBookingRepo) Cancel(ctx context.Context, booking *domain.Booking) error {
	return m.CancelFunc(ctx, booking)
}
