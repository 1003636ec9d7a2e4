package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gnaneshwar04/Movie-Ticket-Booking/api"
	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/domain"
)

func (app *Application) GetVenues(w http.ResponseWriter, r *http.Request, params api.ListParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	venues, metadata, err := app.venueRepo.GetAll(r.Context(), toPagination(params))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.VenueListResponse{
		Venues:   make([]api.Venue, len(venues)),
		Metadata: toApiMetadata(metadata),
	}

	for i, venue := range venues {
		resp.Venues[i] = toApiVenue(venue)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateVenue(w http.ResponseWriter, r *http.Request) {
	var input api.CreateVenueRequest

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

	venue := domain.Venue{
		Name:     input.Name,
		Location: input.Location,
	}

	err = app.venueRepo.Create(r.Context(), &venue)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiVenue(venue), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateHall(w http.ResponseWriter, r *http.Request, venueId int) {
	if venueId < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("venue ID must be greater than zero"))
		return
	}

	var input api.CreateHallRequest

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

	hall := domain.Hall{
		VenueID: venueId,
		Name:    input.Name,
	}

	err = app.venueRepo.CreateHall(r.Context(), &hall)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponseWithErr(w, r, fmt.Errorf("venue %d not found", venueId))
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiHall(hall), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetHalls(w http.ResponseWriter, r *http.Request, params api.ListParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	halls, metadata, err := app.venueRepo.GetAllHalls(r.Context(), toPagination(params))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.HallListResponse{
		Halls:    make([]api.Hall, len(halls)),
		Metadata: toApiMetadata(metadata),
	}

	for i, hall := range halls {
		resp.Halls[i] = toApiHall(hall)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiVenue(venue domain.Venue) api.Venue {
	return api.Venue{
		Id:       venue.ID,
		Name:     venue.Name,
		Location: venue.Location,
	}
}

func toApiHall(hall domain.Hall) api.Hall {
	return api.Hall{
		Id:      hall.ID,
		Name:    hall.Name,
		VenueId: hall.VenueID,
	}
}
