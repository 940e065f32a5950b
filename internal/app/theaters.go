package app

import (
	"errors"
	"net/http"

	"github.com/Gags-1/movie-booking-backend/api"
	"github.com/Gags-1/movie-booking-backend/internal/domain"
)

func toTheaterResponse(theater *domain.Theater) api.TheaterResponse {
	return api.TheaterResponse{
		Id:       theater.ID,
		Name:     theater.Name,
		Location: theater.Location,
	}
}

func toScreenResponse(screen *domain.Screen) api.ScreenResponse {
	return api.ScreenResponse{
		Id:           screen.ID,
		TheaterId:    screen.TheaterID,
		ScreenNumber: screen.ScreenNumber,
		SeatLayout:   screen.SeatLayout,
	}
}

func (app *application) GetTheaters(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	filters := domain.TheaterFilters{
		Skip:     app.readIntQuery(qs, "skip", defaultSkip),
		Limit:    app.readIntQuery(qs, "limit", defaultLimit),
		Location: app.readStringQuery(qs, "location", ""),
	}

	theaters, err := app.theaterRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.TheaterResponse, 0, len(theaters))
	for _, theater := range theaters {
		resp = append(resp, toTheaterResponse(theater))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetTheater(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "theaterId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	theater, err := app.theaterRepo.GetById(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponseWithMsg(w, r, "Theater not found")
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toTheaterResponse(theater), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreateTheater(w http.ResponseWriter, r *http.Request) {
	var input api.TheaterRequest

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

	theater := domain.Theater{
		Name:     input.Name,
		Location: input.Location,
	}

	err = app.theaterRepo.Create(r.Context(), &theater)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toTheaterResponse(&theater), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) UpdateTheater(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "theaterId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var input api.TheaterRequest

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

	theater := domain.Theater{
		ID:       id,
		Name:     input.Name,
		Location: input.Location,
	}

	err = app.theaterRepo.Update(r.Context(), &theater)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponseWithMsg(w, r, "Theater not found")
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toTheaterResponse(&theater), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeleteTheater(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "theaterId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.theaterRepo.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponseWithMsg(w, r, "Theater not found")
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MessageResponse{Message: "Theater deleted successfully"}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetTheaterScreens(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "theaterId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	_, err = app.theaterRepo.GetById(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponseWithMsg(w, r, "Theater not found")
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	screens, err := app.theaterRepo.GetScreens(r.Context(), id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.ScreenResponse, 0, len(screens))
	for _, screen := range screens {
		resp = append(resp, toScreenResponse(screen))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreateScreen(w http.ResponseWriter, r *http.Request) {
	theaterId, err := app.readIDParam(r, "theaterId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var input api.ScreenRequest

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

	// The layout must be a decodable seat set up front; availability
	// computations downstream treat undecodable layouts as empty rooms.
	_, err = domain.DecodeSeatSet(input.SeatLayout)
	if err != nil {
		app.badRequestResponse(w, r, domain.InvalidSeatsError{Reason: err.Error()})
		return
	}

	_, err = app.theaterRepo.GetById(r.Context(), theaterId)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponseWithMsg(w, r, "Theater not found")
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	screen := domain.Screen{
		TheaterID:    theaterId,
		ScreenNumber: input.ScreenNumber,
		SeatLayout:   input.SeatLayout,
	}

	err = app.theaterRepo.CreateScreen(r.Context(), &screen)
	if err != nil {
		if errors.Is(err, domain.ErrScreenNumberTaken) {
			app.badRequestResponse(w, r, err)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toScreenResponse(&screen), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
