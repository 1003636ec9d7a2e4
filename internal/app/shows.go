package app

import (
	"errors"
	"net/http"

	"github.com/gnaneshwar04/Movie-Ticket-Booking/api"
	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/domain"
)

func (app *Application) GetShows(w http.ResponseWriter, r *http.Request, params api.ListParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	shows, metadata, err := app.showRepo.GetAll(r.Context(), toPagination(params))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ShowListResponse{
		Shows:    make([]api.Show, len(shows)),
		Metadata: toApiMetadata(metadata),
	}

	for i, show := range shows {
		resp.Shows[i] = toApiShow(show)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateShow(w http.ResponseWriter, r *http.Request) {
	var input api.CreateShowRequest

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

	if input.Price.IsNegative() {
		app.validationErrorResponse(w, r, []api.ValidationError{
			{Field: "Price", Issue: domain.ErrNegativePrice.Error()},
		})
		return
	}

	show := domain.Show{
		MovieID:  input.MovieId,
		HallID:   input.HallId,
		ShowTime: input.ShowTime.UTC(),
		Price:    input.Price,
	}

	err = app.showRepo.Create(r.Context(), &show)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponseWithErr(w, r, errors.New("movie or hall not found"))
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiShow(show), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiShow(show domain.Show) api.Show {
	return api.Show{
		Id:       show.ID,
		ShowTime: show.ShowTime,
		Price:    show.Price,
		MovieId:  show.MovieID,
		HallId:   show.HallID,
	}
}
