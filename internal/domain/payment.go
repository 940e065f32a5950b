package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

// PaymentStatusFailed exists for wire compatibility but is never set by any
// operation; failed charges simply leave the payment pending.
const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Payment is the monetary-settlement record attached to a booking. At most
// one payment exists per booking; the amount is copied from the booking total
// at creation.
type Payment struct {
	ID          int
	BookingID   int
	Amount      decimal.Decimal
	Status      PaymentStatus
	ProviderRef string
	CreatedAt   time.Time
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	GetById(ctx context.Context, id int) (*Payment, error)
	GetByBookingId(ctx context.Context, bookingId int) (*Payment, error)
	// Confirm marks the payment successful and its booking confirmed in a
	// single transaction. Confirming a payment whose booking is cancelled
	// fails with ErrBookingCancelled.
	Confirm(ctx context.Context, payment *Payment) error
}

// PaymentProvider is the opaque gateway boundary. Confirmation is trusted
// unconditionally once ownership passes; no external verification happens.
type PaymentProvider interface {
	InitiatePayment(booking *Booking) (reference string, err error)
}
