package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is a user's reservation of a seat set for a showtime. The total
// price is computed once at creation time and frozen thereafter. Status moves
// pending -> confirmed via successful payment, and pending/confirmed ->
// cancelled; cancelled is terminal.
type Booking struct {
	ID          int
	UserID      int
	ShowtimeID  int
	SeatsBooked string
	TotalPrice  decimal.Decimal
	Status      BookingStatus
	CreatedAt   time.Time
}

// NewBooking builds a pending booking for the given seats. The raw seat
// payload is stored verbatim so it round-trips exactly.
func NewBooking(userId int, showtime *Showtime, seats SeatSet, rawSeats string) Booking {
	total := showtime.PricePerSeat.Mul(decimal.NewFromInt(int64(len(seats))))

	return Booking{
		UserID:      userId,
		ShowtimeID:  showtime.ID,
		SeatsBooked: rawSeats,
		TotalPrice:  total,
		Status:      BookingStatusPending,
	}
}

// Cancel transitions the booking to cancelled. A booking that is already
// cancelled stays untouched and the call fails with ErrAlreadyCancelled.
func (b *Booking) Cancel() error {
	if b.Status == BookingStatusCancelled {
		return ErrAlreadyCancelled
	}

	b.Status = BookingStatusCancelled

	return nil
}

// BookingDetail is a booking joined with its showtime details.
type BookingDetail struct {
	Booking
	Showtime ShowtimeDetail
}

type BookingFilters struct {
	Skip  int
	Limit int
}

type BookingRepository interface {
	// Create persists a pending booking together with one row per seat.
	// A concurrent booking holding any of the seats surfaces as
	// ErrSeatAlreadyReserved.
	Create(ctx context.Context, booking *Booking, seats SeatSet) error
	GetById(ctx context.Context, id int) (*Booking, error)
	GetByIdAndUser(ctx context.Context, id, userId int) (*BookingDetail, error)
	GetAllByUser(ctx context.Context, userId int, filters BookingFilters) ([]*BookingDetail, error)
	GetActiveByShowtime(ctx context.Context, showtimeId int) ([]*Booking, error)
	// Cancel marks the booking cancelled, releases its seat rows and reverts
	// a successful payment to pending as a refund marker, atomically.
	Cancel(ctx context.Context, booking *Booking) error
}
