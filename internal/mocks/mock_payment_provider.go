package mocks

import (
	"github.com/Gags-1/movie-booking-backend/internal/domain"
)

type MockPaymentProvider struct {
	domain.PaymentProvider
	InitiatePaymentFunc func(booking *domain.Booking) (string, error)
}

func (m *MockPaymentProvider) InitiatePayment(booking *domain.Booking) (string, error) {
	return m.InitiatePaymentFunc(booking)
}
