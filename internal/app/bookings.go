package app

import (
	"errors"
	"net/http"

	"github.com/Gags-1/movie-booking-backend/api"
	"github.com/Gags-1/movie-booking-backend/internal/domain"
)

func toBookingResponse(booking *domain.Booking) api.BookingResponse {
	return api.BookingResponse{
		Id:          booking.ID,
		UserId:      booking.UserID,
		ShowtimeId:  booking.ShowtimeID,
		SeatsBooked: booking.SeatsBooked,
		TotalPrice:  booking.TotalPrice,
		Status:      string(booking.Status),
	}
}

func toBookingDetailResponse(detail *domain.BookingDetail) api.BookingDetailResponse {
	return api.BookingDetailResponse{
		BookingResponse: toBookingResponse(&detail.Booking),
		Showtime:        toShowtimeDetailResponse(&detail.Showtime),
	}
}

// CreateBooking reserves a seat set for the authenticated user. Requested
// seats are validated against the current availability partition, then the
// insert relies on the seat-level unique constraint to settle races between
// concurrent requests for the same seats.
func (app *application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	user := app.contextGetUser(r)

	var input api.BookingRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	seats, err := domain.ParseSeatRequest(input.SeatsBooked)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	detail, err := app.showtimeRepo.GetById(r.Context(), input.ShowtimeId)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponseWithMsg(w, r, "Showtime not found")
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	bookings, err := app.bookingRepo.GetActiveByShowtime(r.Context(), input.ShowtimeId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	availability := domain.NewSeatAvailability(detail.Screen.SeatLayout, bookings)

	err = availability.Validate(seats)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	booking := domain.NewBooking(user.ID, &detail.Showtime, seats, input.SeatsBooked)

	err = app.bookingRepo.Create(r.Context(), &booking, seats)
	if err != nil {
		if errors.Is(err, domain.ErrSeatAlreadyReserved) {
			app.badRequestResponse(w, r, err)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toBookingResponse(&booking), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	user := app.contextGetUser(r)
	qs := r.URL.Query()

	filters := domain.BookingFilters{
		Skip:  app.readIntQuery(qs, "skip", defaultSkip),
		Limit: app.readIntQuery(qs, "limit", defaultLimit),
	}

	bookings, err := app.bookingRepo.GetAllByUser(r.Context(), user.ID, filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.BookingDetailResponse, 0, len(bookings))
	for _, detail := range bookings {
		resp = append(resp, toBookingDetailResponse(detail))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetBooking(w http.ResponseWriter, r *http.Request) {
	user := app.contextGetUser(r)

	id, err := app.readIDParam(r, "bookingId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	detail, err := app.bookingRepo.GetByIdAndUser(r.Context(), id, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponseWithMsg(w, r, "Booking not found")
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toBookingDetailResponse(detail), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CancelBooking(w http.ResponseWriter, r *http.Request) {
	user := app.contextGetUser(r)

	id, err := app.readIDParam(r, "bookingId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	detail, err := app.bookingRepo.GetByIdAndUser(r.Context(), id, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponseWithMsg(w, r, "Booking not found")
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	err = detail.Booking.Cancel()
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyCancelled) {
			app.badRequestResponse(w, r, err)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.bookingRepo.Cancel(r.Context(), &detail.Booking)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponseWithMsg(w, r, "Booking not found")
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MessageResponse{Message: "Booking cancelled successfully"}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
