package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gnaneshwar04/Movie-Ticket-Booking/api"
	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/domain"
	appmiddleware "github.com/gnaneshwar04/Movie-Ticket-Booking/internal/middleware"
	appvalidator "github.com/gnaneshwar04/Movie-Ticket-Booking/internal/validator"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

const (
	ErrInternalServer   = appmiddleware.ErrInternalServer
	ErrNotFound         = appmiddleware.ErrNotFound
	ErrFailedValidation = "One or more fields have invalid values"
	ErrSeatConflict     = "One or more selected seats are already booked."
	ErrStorageFailure   = "The booking could not be stored, please try again"
)

func (app *Application) logError(r *http.Request, err error) {
	app.contextGetLogger(r).ErrorContext(r.Context(), err.Error())
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.ErrorResponse{
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *Application) storageFailureResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.errorResponse(w, r, http.StatusInternalServerError, ErrStorageFailure)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, ErrNotFound)
}

func (app *Application) notFoundResponseWithErr(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusNotFound, err.Error())
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.contextGetLogger(r).WarnContext(r.Context(), "bad request", "error", err)
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *Application) invalidParamResponse(w http.ResponseWriter, r *http.Request, err error) {
	var paramErr *api.InvalidParamFormatError
	if errors.As(err, &paramErr) {
		app.badRequestResponse(w, r, fmt.Errorf("invalid value for parameter %s", paramErr.ParamName))
		return
	}

	app.badRequestResponse(w, r, err)
}

func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		app.serverErrorResponse(w, r, err)
		return
	}

	apiErrors := make([]api.ValidationError, len(validationErrors))
	for i, e := range validationErrors {
		apiErrors[i] = api.ValidationError{
			Field: e.Field(),
			Issue: appvalidator.ValidationMessage(e),
		}
	}

	app.validationErrorResponse(w, r, apiErrors)
}

func (app *Application) validationErrorResponse(w http.ResponseWriter, r *http.Request, errs []api.ValidationError) {
	resp := api.ValidationErrorResponse{
		Message:          ErrFailedValidation,
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
		ValidationErrors: errs,
	}

	err := app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) seatConflictResponse(w http.ResponseWriter, r *http.Request, conflict *domain.SeatConflictError) {
	suggestions := make([]api.ShowSuggestion, len(conflict.Suggestions))
	for i, s := range conflict.Suggestions {
		suggestions[i] = api.ShowSuggestion{
			ShowId:   s.ShowID,
			ShowTime: s.ShowTime,
		}
	}

	resp := api.SeatConflictResponse{
		Message:     ErrSeatConflict,
		Suggestions: suggestions,
		RequestId:   middleware.GetReqID(r.Context()),
		Timestamp:   time.Now(),
	}

	err := app.writeJSON(w, http.StatusConflict, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
