package mocks

import (
	"context"

	"github.com/Gags-1/movie-booking-backend/internal/domain"
)

type MockTheaterRepo struct {
	domain.TheaterRepository
	GetAllFunc        func(ctx context.Context, filters domain.TheaterFilters) ([]*domain.Theater, error)
	GetByIdFunc       func(ctx context.Context, id int) (*domain.Theater, error)
	CreateFunc        func(ctx context.Context, theater *domain.Theater) error
	UpdateFunc        func(ctx context.Context, theater *domain.Theater) error
	DeleteFunc        func(ctx context.Context, id int) error
	GetScreensFunc    func(ctx context.Context, theaterId int) ([]*domain.Screen, error)
	GetScreenByIdFunc func(ctx context.Context, id int) (*domain.Screen, error)
	CreateScreenFunc  func(ctx context.Context, screen *domain.Screen) error
}

func (m *MockTheaterRepo) GetAll(ctx context.Context, filters domain.TheaterFilters) ([]*domain.Theater, error) {
	return m.GetAllFunc(ctx, filters)
}

func (m *MockTheaterRepo) GetById(ctx context.Context, id int) (*domain.Theater, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockTheaterRepo) Create(ctx context.Context, theater *domain.Theater) error {
	return m.CreateFunc(ctx, theater)
}

func (m *MockTheaterRepo) Update(ctx context.Context, theater *domain.Theater) error {
	return m.UpdateFunc(ctx, theater)
}

func (m *MockTheaterRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}

func (m *MockTheaterRepo) GetScreens(ctx context.Context, theaterId int) ([]*domain.Screen, error) {
	return m.GetScreensFunc(ctx, theaterId)
}

func (m *MockTheaterRepo) GetScreenById(ctx context.Context, id int) (*domain.Screen, error) {
	return m.GetScreenByIdFunc(ctx, id)
}

func (m *MockTheaterRepo) CreateScreen(ctx context.Context, screen *domain.Screen) error {
	return m.CreateScreenFunc(ctx, screen)
}
