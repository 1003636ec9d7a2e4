package booking

import (
	"context"

	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/domain"
)

// Detect returns the requested seats that are already booked for the show, in
// request order. An empty result means the seats may be booked.
func Detect(ctx context.Context, index domain.AvailabilityIndex, showID int, requested []int) ([]int, error) {
	booked, err := index.BookedSeatIDsForShow(ctx, showID)
	if err != nil {
		return nil, err
	}

	return conflicting(booked, requested), nil
}

func conflicting(booked domain.SeatSet, requested []int) []int {
	conflicts := make([]int, 0)
	for _, seatID := range requested {
		if booked.Contains(seatID) {
			conflicts = append(conflicts, seatID)
		}
	}

	return conflicts
}

// firstInvalidSeat returns the first requested seat that does not belong to the
// hall or that appears more than once in the request.
func firstInvalidSeat(hallSeats domain.SeatSet, requested []int) *domain.InvalidSeatError {
	seen := make(domain.SeatSet, len(requested))

	for _, seatID := range requested {
		if !hallSeats.Contains(seatID) {
			return &domain.InvalidSeatError{SeatID: seatID}
		}

		if seen.Contains(seatID) {
			return &domain.InvalidSeatError{SeatID: seatID, Reason: "is requested more than once"}
		}
		seen[seatID] = struct{}{}
	}

	return nil
}
