package mocks

import (
	"context"

	"github.com/Gags-1/movie-booking-backend/internal/domain"
)

type MockShowtimeRepo struct {
	domain.ShowtimeRepository
	GetAllFunc  func(ctx context.Context, filters domain.ShowtimeFilters) ([]*domain.ShowtimeDetail, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.ShowtimeDetail, error)
	CreateFunc  func(ctx context.Context, showtime *domain.Showtime) error
	UpdateFunc  func(ctx context.Context, showtime *domain.Showtime) error
	DeleteFunc  func(ctx context.Context, id int) error
}

func (m *MockShowtimeRepo) GetAll(ctx context.Context, filters domain.ShowtimeFilters) ([]*domain.ShowtimeDetail, error) {
	return m.GetAllFunc(ctx, filters)
}

func (m *MockShowtimeRepo) GetById(ctx context.Context, id int) (*domain.ShowtimeDetail, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockShowtimeRepo) Create(ctx context.Context, showtime *domain.Showtime) error {
	return m.CreateFunc(ctx, showtime)
}

func (m *MockShowtimeRepo) Update(ctx context.Context, showtime *domain.Showtime) error {
	return m.UpdateFunc(ctx, showtime)
}

func (m *MockShowtimeRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
