package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

// ListParams defines parameters shared by the listing endpoints.
type ListParams struct {
	Page     *int `json:"page,omitempty" validate:"omitnil,min=1"`
	PageSize *int `json:"pageSize,omitempty" validate:"omitnil,min=1,max=100"`
}

type CreateMovieRequest struct {
	Title           string `json:"title" validate:"required,max=255"`
	DurationMinutes int    `json:"durationMinutes" validate:"required,min=1,max=1000"`
}

type Movie struct {
	Id              int    `json:"id"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"durationMinutes"`
}

type MovieListResponse struct {
	Movies   []Movie  `json:"movies"`
	Metadata Metadata `json:"metadata"`
}

type CreateVenueRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Location string `json:"location" validate:"required,max=255"`
}

type Venue struct {
	Id       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type VenueListResponse struct {
	Venues   []Venue  `json:"venues"`
	Metadata Metadata `json:"metadata"`
}

type CreateHallRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type Hall struct {
	Id      int    `json:"id"`
	Name    string `json:"name"`
	VenueId int    `json:"venueId"`
}

type HallListResponse struct {
	Halls    []Hall   `json:"halls"`
	Metadata Metadata `json:"metadata"`
}

// CreateHallLayoutRequest maps a row label to the number of seats in that row.
type CreateHallLayoutRequest struct {
	Rows map[string]int `json:"rows" validate:"required,min=1,max=100,dive,keys,row_label,endkeys,min=1,max=100"`
}

type HallLayoutResponse struct {
	Message      string `json:"message"`
	HallId       int    `json:"hallId"`
	SeatsCreated int    `json:"seatsCreated"`
}

type Seat struct {
	Id     int    `json:"id"`
	Row    string `json:"row"`
	Number int    `json:"number"`
	HallId int    `json:"hallId"`
}

type SeatListResponse struct {
	Seats []Seat `json:"seats"`
}

type CreateShowRequest struct {
	ShowTime time.Time       `json:"showTime" validate:"required"`
	Price    decimal.Decimal `json:"price"`
	MovieId  int             `json:"movieId" validate:"required,min=1"`
	HallId   int             `json:"hallId" validate:"required,min=1"`
}

type Show struct {
	Id       int             `json:"id"`
	ShowTime time.Time       `json:"showTime"`
	Price    decimal.Decimal `json:"price"`
	MovieId  int             `json:"movieId"`
	HallId   int             `json:"hallId"`
}

type ShowListResponse struct {
	Shows    []Show   `json:"shows"`
	Metadata Metadata `json:"metadata"`
}

type CreateBookingRequest struct {
	ShowId  int   `json:"showId" validate:"required,min=1"`
	SeatIds []int `json:"seatIds" validate:"required,min=1,max=100,unique,dive,min=1"`
}

type Booking struct {
	Id          int       `json:"id"`
	BookingTime time.Time `json:"bookingTime"`
	ShowId      int       `json:"showId"`
}

type BookedSeat struct {
	Id        int `json:"id"`
	BookingId int `json:"bookingId"`
	SeatId    int `json:"seatId"`
}

type BookedSeatListResponse struct {
	Seats []BookedSeat `json:"seats"`
}

type ShowSuggestion struct {
	ShowId   int       `json:"showId"`
	ShowTime time.Time `json:"showTime"`
}

type SeatConflictResponse struct {
	Message     string           `json:"message"`
	Suggestions []ShowSuggestion `json:"suggestions"`
	RequestId   string           `json:"requestId"`
	Timestamp   time.Time        `json:"timestamp"`
}

type GetMovieAnalyticsParams struct {
	StartDate openapi_types.Date `json:"startDate" validate:"required"`
	EndDate   openapi_types.Date `json:"endDate" validate:"required"`
}

type MovieAnalyticsResponse struct {
	MovieId      int     `json:"movieId"`
	TotalTickets int     `json:"totalTickets"`
	TotalGmv     float64 `json:"totalGmv"`
}
