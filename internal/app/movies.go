package app

import (
	"net/http"

	"github.com/gnaneshwar04/Movie-Ticket-Booking/api"
	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/domain"
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request, params api.ListParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movies, metadata, err := app.movieRepo.GetAll(r.Context(), toPagination(params))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies:   make([]api.Movie, len(movies)),
		Metadata: toApiMetadata(metadata),
	}

	for i, movie := range movies {
		resp.Movies[i] = toApiMovie(movie)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var input api.CreateMovieRequest

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
		Title:           input.Title,
		DurationMinutes: input.DurationMinutes,
	}

	err = app.movieRepo.Create(r.Context(), &movie)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiMovie(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiMovie(movie domain.Movie) api.Movie {
	return api.Movie{
		Id:              movie.ID,
		Title:           movie.Title,
		DurationMinutes: movie.DurationMinutes,
	}
}
