package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Report service status and build information
	// (GET /healthcheck)
	GetHealth(w http.ResponseWriter, r *http.Request)
	// List movies
	// (GET /movies)
	GetMovies(w http.ResponseWriter, r *http.Request, params ListParams)
	// Create a movie
	// (POST /movies)
	CreateMovie(w http.ResponseWriter, r *http.Request)
	// List venues
	// (GET /venues)
	GetVenues(w http.ResponseWriter, r *http.Request, params ListParams)
	// Create a venue
	// (POST /venues)
	CreateVenue(w http.ResponseWriter, r *http.Request)
	// Create a hall inside a venue
	// (POST /venues/{venueId}/halls)
	CreateHall(w http.ResponseWriter, r *http.Request, venueId int)
	// List halls
	// (GET /halls)
	GetHalls(w http.ResponseWriter, r *http.Request, params ListParams)
	// Create the seat layout of a hall
	// (POST /halls/{hallId}/layout)
	CreateHallLayout(w http.ResponseWriter, r *http.Request, hallId int)
	// List the seats of a hall
	// (GET /halls/{hallId}/seats)
	GetHallSeats(w http.ResponseWriter, r *http.Request, hallId int)
	// List shows
	// (GET /shows)
	GetShows(w http.ResponseWriter, r *http.Request, params ListParams)
	// Create a show
	// (POST /shows)
	CreateShow(w http.ResponseWriter, r *http.Request)
	// Book seats for a show
	// (POST /bookings)
	CreateBooking(w http.ResponseWriter, r *http.Request)
	// Get a booking
	// (GET /bookings/{bookingId})
	GetBookingById(w http.ResponseWriter, r *http.Request, bookingId int)
	// List the seats held by a booking
	// (GET /bookings/{bookingId}/seats)
	GetBookedSeats(w http.ResponseWriter, r *http.Request, bookingId int)
	// Ticket and revenue totals of a movie
	// (GET /analytics/movies/{movieId})
	GetMovieAnalytics(w http.ResponseWriter, r *http.Request, movieId int, params GetMovieAnalyticsParams)
}

type MiddlewareFunc func(http.Handler) http.Handler

// ServerInterfaceWrapper converts request parameters into typed handler arguments.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

func (siw *ServerInterfaceWrapper) serve(w http.ResponseWriter, r *http.Request, handler http.Handler) {
	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

func (siw *ServerInterfaceWrapper) pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	var value int

	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: name, Err: err})
		return 0, false
	}

	return value, true
}

func (siw *ServerInterfaceWrapper) listParams(w http.ResponseWriter, r *http.Request) (ListParams, bool) {
	var params ListParams

	if err := runtime.BindQueryParameter("form", true, false, "page", r.URL.Query(), &params.Page); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "page", Err: err})
		return params, false
	}

	if err := runtime.BindQueryParameter("form", true, false, "pageSize", r.URL.Query(), &params.PageSize); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "pageSize", Err: err})
		return params, false
	}

	return params, true
}

func (siw *ServerInterfaceWrapper) GetHealth(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.GetHealth))
}

func (siw *ServerInterfaceWrapper) GetMovies(w http.ResponseWriter, r *http.Request) {
	params, ok := siw.listParams(w, r)
	if !ok {
		return
	}

	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetMovies(w, r, params)
	}))
}

func (siw *ServerInterfaceWrapper) CreateMovie(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.CreateMovie))
}

func (siw *ServerInterfaceWrapper) GetVenues(w http.ResponseWriter, r *http.Request) {
	params, ok := siw.listParams(w, r)
	if !ok {
		return
	}

	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetVenues(w, r, params)
	}))
}

func (siw *ServerInterfaceWrapper) CreateVenue(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.CreateVenue))
}

func (siw *ServerInterfaceWrapper) CreateHall(w http.ResponseWriter, r *http.Request) {
	venueId, ok := siw.pathInt(w, r, "venueId")
	if !ok {
		return
	}

	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CreateHall(w, r, venueId)
	}))
}

func (siw *ServerInterfaceWrapper) GetHalls(w http.ResponseWriter, r *http.Request) {
	params, ok := siw.listParams(w, r)
	if !ok {
		return
	}

	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetHalls(w, r, params)
	}))
}

func (siw *ServerInterfaceWrapper) CreateHallLayout(w http.ResponseWriter, r *http.Request) {
	hallId, ok := siw.pathInt(w, r, "hallId")
	if !ok {
		return
	}

	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CreateHallLayout(w, r, hallId)
	}))
}

func (siw *ServerInterfaceWrapper) GetHallSeats(w http.ResponseWriter, r *http.Request) {
	hallId, ok := siw.pathInt(w, r, "hallId")
	if !ok {
		return
	}

	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetHallSeats(w, r, hallId)
	}))
}

func (siw *ServerInterfaceWrapper) GetShows(w http.ResponseWriter, r *http.Request) {
	params, ok := siw.listParams(w, r)
	if !ok {
		return
	}

	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetShows(w, r, params)
	}))
}

func (siw *ServerInterfaceWrapper) CreateShow(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.CreateShow))
}

func (siw *ServerInterfaceWrapper) CreateBooking(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.CreateBooking))
}

func (siw *ServerInterfaceWrapper) GetBookingById(w http.ResponseWriter, r *http.Request) {
	bookingId, ok := siw.pathInt(w, r, "bookingId")
	if !ok {
		return
	}

	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetBookingById(w, r, bookingId)
	}))
}

func (siw *ServerInterfaceWrapper) GetBookedSeats(w http.ResponseWriter, r *http.Request) {
	bookingId, ok := siw.pathInt(w, r, "bookingId")
	if !ok {
		return
	}

	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetBookedSeats(w, r, bookingId)
	}))
}

func (siw *ServerInterfaceWrapper) GetMovieAnalytics(w http.ResponseWriter, r *http.Request) {
	movieId, ok := siw.pathInt(w, r, "movieId")
	if !ok {
		return
	}

	var params GetMovieAnalyticsParams

	if err := runtime.BindQueryParameter("form", true, true, "startDate", r.URL.Query(), &params.StartDate); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "startDate", Err: err})
		return
	}

	if err := runtime.BindQueryParameter("form", true, true, "endDate", r.URL.Query(), &params.EndDate); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "endDate", Err: err})
		return
	}

	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetMovieAnalytics(w, r, movieId, params)
	}))
}

// Handler creates http.Handler with routing matching OpenAPI spec.
func Handler(si ServerInterface) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{})
}

type ChiServerOptions struct {
	BaseURL          string
	BaseRouter       chi.Router
	Middlewares      []MiddlewareFunc
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// HandlerFromMux creates http.Handler with routing matching OpenAPI spec based on the provided mux.
func HandlerFromMux(si ServerInterface, r chi.Router) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{
		BaseRouter: r,
	})
}

// HandlerWithOptions creates http.Handler with additional options
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter

	if r == nil {
		r = chi.NewRouter()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}
	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}

	base := options.BaseURL

	r.Get(base+"/healthcheck", wrapper.GetHealth)
	r.Get(base+"/movies", wrapper.GetMovies)
	r.Post(base+"/movies", wrapper.CreateMovie)
	r.Get(base+"/venues", wrapper.GetVenues)
	r.Post(base+"/venues", wrapper.CreateVenue)
	r.Post(base+"/venues/{venueId}/halls", wrapper.CreateHall)
	r.Get(base+"/halls", wrapper.GetHalls)
	r.Post(base+"/halls/{hallId}/layout", wrapper.CreateHallLayout)
	r.Get(base+"/halls/{hallId}/seats", wrapper.GetHallSeats)
	r.Get(base+"/shows", wrapper.GetShows)
	r.Post(base+"/shows", wrapper.CreateShow)
	r.Post(base+"/bookings", wrapper.CreateBooking)
	r.Get(base+"/bookings/{bookingId}", wrapper.GetBookingById)
	r.Get(base+"/bookings/{bookingId}/seats", wrapper.GetBookedSeats)
	r.Get(base+"/analytics/movies/{movieId}", wrapper.GetMovieAnalytics)

	return r
}
