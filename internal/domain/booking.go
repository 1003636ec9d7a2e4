package domain

import (
	"context"
	"time"
)

type Booking struct {
	ID          int
	ShowID      int
	BookingTime time.Time
	Seats       []BookedSeat
}

type BookedSeat struct {
	ID        int
	BookingID int
	SeatID    int
}

func NewBooking(showID int, seatIDs []int, now time.Time) Booking {
	seats := make([]BookedSeat, len(seatIDs))
	for i, seatID := range seatIDs {
		seats[i] = BookedSeat{SeatID: seatID}
	}

	return Booking{
		ShowID:      showID,
		BookingTime: now.UTC(),
		Seats:       seats,
	}
}

func (b Booking) SeatIDs() []int {
	ids := make([]int, len(b.Seats))
	for i, seat := range b.Seats {
		ids[i] = seat.SeatID
	}

	return ids
}

// Suggestion is another show of the same movie with enough free seats.
type Suggestion struct {
	ShowID   int
	ShowTime time.Time
}

// AvailabilityIndex answers which seats are already committed for a show.
type AvailabilityIndex interface {
	BookedSeatIDsForShow(ctx context.Context, showID int) (SeatSet, error)
}

// BookingTx is the unit of work a booking runs in. Every read and write made
// through it belongs to the same storage transaction.
type BookingTx interface {
	SeatCatalog
	AvailabilityIndex

	// LockShow loads the show and holds its write lock until the transaction
	// ends, serialising bookings of the same show.
	LockShow(ctx context.Context, showID int) (*Show, error)
	ShowsForMovie(ctx context.Context, movieID int) ([]Show, error)
	CountSeatsForHall(ctx context.Context, hallID int) (int, error)
	CreateBooking(ctx context.Context, booking *Booking) error
}

type BookingStore interface {
	// Transact runs fn in one transaction, committing when fn returns nil and
	// rolling back otherwise.
	Transact(ctx context.Context, fn func(tx BookingTx) error) error
	GetById(ctx context.Context, id int) (*Booking, error)
	GetBookedSeats(ctx context.Context, bookingID int) ([]BookedSeat, error)
}
