package domain

import "encoding/json"

// SeatSet is an ordered set of seat identifiers. On the wire and in the
// database it is serialized as a JSON array of strings, e.g. ["A1","A2"].
type SeatSet []string

// DecodeSeatSet parses a serialized seat set, preserving order.
func DecodeSeatSet(raw string) (SeatSet, error) {
	var seats SeatSet

	err := json.Unmarshal([]byte(raw), &seats)
	if err != nil {
		return nil, err
	}

	return seats, nil
}

// DecodeSeatSetLenient parses a serialized seat set and returns an empty set
// on malformed input. Stored layouts and seat sets that fail to decode are
// deliberately treated as empty rather than surfacing an error.
func DecodeSeatSetLenient(raw string) SeatSet {
	seats, err := DecodeSeatSet(raw)
	if err != nil {
		return SeatSet{}
	}

	return seats
}

// Encode serializes the seat set back to its wire form.
func (s SeatSet) Encode() string {
	data, err := json.Marshal(s)
	if err != nil {
		// A []string cannot fail to marshal.
		panic(err)
	}

	return string(data)
}

func (s SeatSet) Contains(seat string) bool {
	for _, v := range s {
		if v == seat {
			return true
		}
	}

	return false
}

// ParseSeatRequest decodes a requested seat set and rejects payloads that are
// malformed or decode to an empty list.
func ParseSeatRequest(raw string) (SeatSet, error) {
	seats, err := DecodeSeatSet(raw)
	if err != nil {
		return nil, InvalidSeatsError{Reason: err.Error()}
	}

	if len(seats) == 0 {
		return nil, InvalidSeatsError{Reason: "seats must be a non-empty list"}
	}

	return seats, nil
}

// SeatAvailability is a point-in-time partition of a showtime's seat layout
// into booked and available seats. It is computed fresh from the current
// booking state on every call and never cached.
type SeatAvailability struct {
	All       SeatSet
	Booked    SeatSet
	Available SeatSet
}

// NewSeatAvailability computes the availability partition for a screen layout
// against all non-cancelled bookings of the showtime. Booked seats are the
// union of the bookings' seat sets in first-appearance order; available seats
// keep the layout's order. Undecodable layouts and seat sets count as empty.
func NewSeatAvailability(seatLayout string, bookings []*Booking) SeatAvailability {
	all := DecodeSeatSetLenient(seatLayout)

	booked := SeatSet{}
	seen := make(map[string]bool)

	for _, booking := range bookings {
		if booking.Status == BookingStatusCancelled {
			continue
		}

		for _, seat := range DecodeSeatSetLenient(booking.SeatsBooked) {
			if !seen[seat] {
				seen[seat] = true
				booked = append(booked, seat)
			}
		}
	}

	available := SeatSet{}
	for _, seat := range all {
		if !seen[seat] {
			available = append(available, seat)
		}
	}

	return SeatAvailability{
		All:       all,
		Booked:    booked,
		Available: available,
	}
}

// Validate checks a requested seat set against the availability partition in
// request order. The first seat already booked wins and is reported as a
// SeatConflictError; a seat absent from the layout is a SeatUnknownError.
func (a SeatAvailability) Validate(requested SeatSet) error {
	for _, seat := range requested {
		if a.Booked.Contains(seat) {
			return SeatConflictError{Seat: seat}
		}

		if !a.All.Contains(seat) {
			return SeatUnknownError{Seat: seat}
		}
	}

	return nil
}
