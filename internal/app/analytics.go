package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gnaneshwar04/Movie-Ticket-Booking/api"
	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/domain"
)

func (app *Application) GetMovieAnalytics(
	w http.ResponseWriter,
	r *http.Request,
	movieId int,
	params api.GetMovieAnalyticsParams) {

	if movieId < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("movie ID must be greater than zero"))
		return
	}

	result, err := app.analytics.MovieAnalytics(r.Context(), movieId, params.StartDate.Time, params.EndDate.Time)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDateRange) {
			app.badRequestResponse(w, r, err)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieAnalyticsResponse{
		MovieId:      movieId,
		TotalTickets: result.TotalTickets,
		TotalGmv:     result.TotalGmv.InexactFloat64(),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
