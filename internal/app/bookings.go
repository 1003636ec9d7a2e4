package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gnaneshwar04/Movie-Ticket-Booking/api"
	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/domain"
)

func (app *Application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var input api.CreateBookingRequest

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

	booking, err := app.bookingManager.Book(r.Context(), input.ShowId, input.SeatIds)
	if err != nil {
		var (
			invalidSeat *domain.InvalidSeatError
			conflict    *domain.SeatConflictError
		)

		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, fmt.Errorf("show %d not found", input.ShowId))
		case errors.As(err, &invalidSeat):
			app.errorResponse(w, r, http.StatusBadRequest, invalidSeatMessage(invalidSeat))
		case errors.Is(err, domain.ErrNoSeatsRequested):
			app.badRequestResponse(w, r, err)
		case errors.As(err, &conflict):
			app.seatConflictResponse(w, r, conflict)
		case errors.Is(err, domain.ErrStorageFailure):
			app.storageFailureResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/bookings/%d", booking.ID))

	err = app.writeJSON(w, http.StatusCreated, toApiBooking(booking), headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBookingById(w http.ResponseWriter, r *http.Request, bookingId int) {
	if bookingId < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("booking ID must be greater than zero"))
		return
	}

	booking, err := app.bookingRepo.GetById(r.Context(), bookingId)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiBooking(booking), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBookedSeats(w http.ResponseWriter, r *http.Request, bookingId int) {
	if bookingId < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("booking ID must be greater than zero"))
		return
	}

	_, err := app.bookingRepo.GetById(r.Context(), bookingId)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	seats, err := app.bookingRepo.GetBookedSeats(r.Context(), bookingId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.BookedSeatListResponse{
		Seats: make([]api.BookedSeat, len(seats)),
	}

	for i, seat := range seats {
		resp.Seats[i] = api.BookedSeat{
			Id:        seat.ID,
			BookingId: seat.BookingID,
			SeatId:    seat.SeatID,
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func invalidSeatMessage(err *domain.InvalidSeatError) string {
	if err.Reason == "" {
		return fmt.Sprintf("Seat ID %d is not valid for this show's hall.", err.SeatID)
	}

	return fmt.Sprintf("Seat ID %d %s.", err.SeatID, err.Reason)
}

func toApiBooking(booking *domain.Booking) api.Booking {
	return api.Booking{
		Id:          booking.ID,
		BookingTime: booking.BookingTime,
		ShowId:      booking.ShowID,
	}
}
