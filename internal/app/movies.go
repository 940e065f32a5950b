package app

import (
	"errors"
	"net/http"

	"github.com/Gags-1/movie-booking-backend/api"
	"github.com/Gags-1/movie-booking-backend/internal/domain"
)

const (
	defaultSkip  = 0
	defaultLimit = 100
)

func toMovieResponse(movie *domain.Movie) api.MovieResponse {
	return api.MovieResponse{
		Id:        movie.ID,
		Title:     movie.Title,
		Genre:     movie.Genre,
		Language:  movie.Language,
		Duration:  movie.Duration,
		Rating:    movie.Rating,
		PosterUrl: movie.PosterUrl,
	}
}

func (app *application) GetMovies(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	filters := domain.MovieFilters{
		Skip:  app.readIntQuery(qs, "skip", defaultSkip),
		Limit: app.readIntQuery(qs, "limit", defaultLimit),
		Genre: app.readStringQuery(qs, "genre", ""),
	}

	movies, err := app.movieRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.MovieResponse, 0, len(movies))
	for _, movie := range movies {
		resp = append(resp, toMovieResponse(movie))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponseWithMsg(w, r, "Movie not found")
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var input api.MovieRequest

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

	movie := domain.Movie{
		Title:     input.Title,
		Genre:     input.Genre,
		Language:  input.Language,
		Duration:  input.Duration,
		Rating:    input.Rating,
		PosterUrl: input.PosterUrl,
	}

	err = app.movieRepo.Create(r.Context(), &movie)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toMovieResponse(&movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var input api.MovieRequest

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

	movie := domain.Movie{
		ID:        id,
		Title:     input.Title,
		Genre:     input.Genre,
		Language:  input.Language,
		Duration:  input.Duration,
		Rating:    input.Rating,
		PosterUrl: input.PosterUrl,
	}

	err = app.movieRepo.Update(r.Context(), &movie)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponseWithMsg(w, r, "Movie not found")
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieResponse(&movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.movieRepo.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponseWithMsg(w, r, "Movie not found")
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MessageResponse{Message: "Movie deleted successfully"}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
