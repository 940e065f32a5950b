package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrScreenNumberTaken   = errors.New("screen number already exists in this theater")
	ErrShowtimeConflict    = errors.New("another showtime is already scheduled for this screen at the same time")
	ErrSeatAlreadyReserved = errors.New("seat(s) are already reserved")
	ErrAlreadyCancelled    = errors.New("booking is already cancelled")
	ErrBookingCancelled    = errors.New("cannot pay for a cancelled booking")
	ErrPaymentCompleted    = errors.New("payment already completed")
	ErrForbidden           = errors.New("not authorized to access this resource")
)

// SeatConflictError reports the first requested seat that is already taken.
type SeatConflictError struct {
	Seat string
}

func (e SeatConflictError) Error() string {
	return fmt.Sprintf("seat %s is not available", e.Seat)
}

// SeatUnknownError reports a requested seat that does not exist in the
// screen's seat layout.
type SeatUnknownError struct {
	Seat string
}

func (e SeatUnknownError) Error() string {
	return fmt.Sprintf("seat %s does not exist on this screen", e.Seat)
}

// InvalidSeatsError reports a seat payload that could not be decoded or
// decoded to an empty list.
type InvalidSeatsError struct {
	Reason string
}

func (e InvalidSeatsError) Error() string {
	return fmt.Sprintf("invalid seats format: %s", e.Reason)
}
