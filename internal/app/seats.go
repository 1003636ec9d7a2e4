package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gnaneshwar04/Movie-Ticket-Booking/api"
	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/domain"
)

func (app *Application) CreateHallLayout(w http.ResponseWriter, r *http.Request, hallId int) {
	if hallId < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("hall ID must be greater than zero"))
		return
	}

	var input api.CreateHallLayoutRequest

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

	created, err := app.seatRepo.CreateLayout(r.Context(), hallId, domain.Layout(input.Rows))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponseWithErr(w, r, fmt.Errorf("hall %d not found", hallId))
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).InfoContext(r.Context(), "hall layout created", "hallId", hallId, "seatsCreated", created)

	resp := api.HallLayoutResponse{
		Message:      fmt.Sprintf("Created %d seats for hall %d", created, hallId),
		HallId:       hallId,
		SeatsCreated: created,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetHallSeats(w http.ResponseWriter, r *http.Request, hallId int) {
	if hallId < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("hall ID must be greater than zero"))
		return
	}

	seats, err := app.seatRepo.GetSeatsByHall(r.Context(), hallId)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponseWithErr(w, r, fmt.Errorf("hall %d not found", hallId))
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.SeatListResponse{
		Seats: make([]api.Seat, len(seats)),
	}

	for i, seat := range seats {
		resp.Seats[i] = api.Seat{
			Id:     seat.ID,
			Row:    seat.Row,
			Number: seat.Number,
			HallId: seat.HallID,
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
