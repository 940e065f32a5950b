package app

import (
	"errors"
	"net/http"

	"github.com/Gags-1/movie-booking-backend/api"
	"github.com/Gags-1/movie-booking-backend/internal/domain"
)

// GetAvailableSeats reports the availability partition of a showtime's seat
// layout, computed fresh from the current non-cancelled bookings.
func (app *application) GetAvailableSeats(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "showtimeId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	detail, err := app.showtimeRepo.GetById(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponseWithMsg(w, r, "Showtime not found")
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	bookings, err := app.bookingRepo.GetActiveByShowtime(r.Context(), id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	availability := domain.NewSeatAvailability(detail.Screen.SeatLayout, bookings)

	resp := api.AvailableSeatsResponse{
		ShowtimeId:     detail.ID,
		TotalSeats:     len(availability.All),
		BookedSeats:    availability.Booked,
		AvailableSeats: availability.Available,
		AvailableCount: len(availability.Available),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
