package mocks

import (
	"context"

	"github.com/Gags-1/movie-booking-backend/internal/domain"
)

type MockPaymentRepo struct {
	domain.PaymentRepository
	CreateFunc         func(ctx context.Context, payment *domain.Payment) error
	GetByIdFunc        func(ctx context.Context, id int) (*domain.Payment, error)
	GetByBookingIdFunc func(ctx context.Context, bookingId int) (*domain.Payment, error)
	ConfirmFunc        func(ctx context.Context, payment *domain.Payment) error
}

func (m *MockPaymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	return m.CreateFunc(ctx, payment)
}

func (m *MockPaymentRepo) GetById(ctx context.Context, id int) (*domain.Payment, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockPaymentRepo) GetByBookingId(ctx context.Context, bookingId int) (*domain.Payment, error) {
	return m.GetByBookingIdFunc(ctx, bookingId)
}

func (m *MockPaymentRepo) Confirm(ctx context.Context, payment *domain.Payment) error {
	return m.ConfirmFunc(ctx, payment)
}
