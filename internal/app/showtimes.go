package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/Gags-1/movie-booking-backend/api"
	"github.com/Gags-1/movie-booking-backend/internal/domain"
)

func toShowtimeResponse(showtime *domain.Showtime) api.ShowtimeResponse {
	return api.ShowtimeResponse{
		Id:           showtime.ID,
		MovieId:      showtime.MovieID,
		ScreenId:     showtime.ScreenID,
		StartTime:    showtime.StartTime,
		PricePerSeat: showtime.PricePerSeat,
	}
}

func toShowtimeDetailResponse(detail *domain.ShowtimeDetail) api.ShowtimeDetailResponse {
	theater := toTheaterResponse(&detail.Theater)

	return api.ShowtimeDetailResponse{
		ShowtimeResponse: toShowtimeResponse(&detail.Showtime),
		Movie:            toMovieResponse(&detail.Movie),
		Screen:           toScreenResponse(&detail.Screen),
		Theater:          &theater,
	}
}

func (app *application) GetShowtimes(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	filters := domain.ShowtimeFilters{
		Skip:      app.readIntQuery(qs, "skip", defaultSkip),
		Limit:     app.readIntQuery(qs, "limit", defaultLimit),
		MovieID:   app.readIntQuery(qs, "movie_id", 0),
		TheaterID: app.readIntQuery(qs, "theater_id", 0),
	}

	if dateStr := qs.Get("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			app.errorResponse(w, r, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
			return
		}

		filters.Date = &date
	}

	showtimes, err := app.showtimeRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.ShowtimeDetailResponse, 0, len(showtimes))
	for _, detail := range showtimes {
		resp = append(resp, toShowtimeDetailResponse(detail))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetShowtime(w http.ResponseWriter, r *http.Request) {
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

	err = app.writeJSON(w, http.StatusOK, toShowtimeDetailResponse(detail), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreateShowtime(w http.ResponseWriter, r *http.Request) {
	var input api.ShowtimeRequest

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

	_, err = app.movieRepo.GetById(r.Context(), input.MovieId)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponseWithMsg(w, r, "Movie not found")
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	_, err = app.theaterRepo.GetScreenById(r.Context(), input.ScreenId)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponseWithMsg(w, r, "Screen not found")
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	showtime := domain.Showtime{
		MovieID:      input.MovieId,
		ScreenID:     input.ScreenId,
		StartTime:    input.StartTime,
		PricePerSeat: input.PricePerSeat,
	}

	err = app.showtimeRepo.Create(r.Context(), &showtime)
	if err != nil {
		if errors.Is(err, domain.ErrShowtimeConflict) {
			app.badRequestResponse(w, r, err)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toShowtimeResponse(&showtime), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) UpdateShowtime(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "showtimeId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var input api.ShowtimeRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	showtime := domain.Showtime{
		ID:           id,
		MovieID:      input.MovieId,
		ScreenID:     input.ScreenId,
		StartTime:    input.StartTime,
		PricePerSeat: input.PricePerSeat,
	}

	err = app.showtimeRepo.Update(r.Context(), &showtime)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithMsg(w, r, "Showtime not found")
		case errors.Is(err, domain.ErrShowtimeConflict):
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toShowtimeResponse(&showtime), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeleteShowtime(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "showtimeId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.showtimeRepo.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponseWithMsg(w, r, "Showtime not found")
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MessageResponse{Message: "Showtime deleted successfully"}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
